package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"nhooyr.io/websocket"
)

// Handler upgrades HTTP requests to WebSocket connections and runs the
// per-connection state machine: connected, joined after a join_room
// envelope, disconnected. Everything that is not a first-time
// join_room is ignored.
type Handler struct {
	hub    *Hub
	logger *slog.Logger
}

func NewHandler(hub *Hub, logger *slog.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // same-origin policy handled by the frontend proxy
	})
	if err != nil {
		h.logger.Error("websocket accept failed", "error", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	client := &Client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		id:   uuid.NewString(),
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go client.writePump(ctx, h.logger)

	defer h.hub.remove(client)
	h.readLoop(ctx, client)
}

func (h *Handler) readLoop(ctx context.Context, client *Client) {
	for {
		_, data, err := client.conn.Read(ctx)
		if err != nil {
			// Normal close or cancelled context.
			return
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			continue
		}

		if env.Type != "join_room" || client.room != "" {
			continue
		}

		var payload JoinPayload
		if err := json.Unmarshal(env.Payload, &payload); err != nil || payload.UserID == "" {
			continue
		}

		client.room = UserRoom(payload.UserID)
		h.hub.join(client, client.room)
		h.logger.Info("client joined room", "conn", client.id, "room", client.room)

		h.sendJoined(client)
	}
}

func (h *Handler) sendJoined(client *Client) {
	data, err := json.Marshal(JoinedPayload{ConnectionID: client.id, Room: client.room})
	if err != nil {
		return
	}
	env, err := json.Marshal(Envelope{Type: "joined", Payload: data})
	if err != nil {
		return
	}
	client.enqueue(env, h.logger)
}
