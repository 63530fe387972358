package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Envelope is the JSON structure exchanged over the WebSocket.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// JoinPayload is sent by the client to join its private room.
type JoinPayload struct {
	UserID string `json:"userId"`
}

// JoinedPayload acknowledges a successful join.
type JoinedPayload struct {
	ConnectionID string `json:"connectionId"`
	Room         string `json:"room"`
}

// UserRoom is the room key for a user's private channel.
func UserRoom(userID string) string {
	return "user_" + userID
}

// Hub routes notifications to per-user rooms. Membership is
// per-connection and commutative, guarded by a single mutex. Delivery
// is at-most-once: nobody in the room means the message is dropped.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Client]struct{}
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Client]struct{}),
		logger: logger,
	}
}

func (h *Hub) join(c *Client, room string) {
	h.mu.Lock()
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) remove(c *Client) {
	if c.room == "" {
		return
	}
	h.mu.Lock()
	if clients, ok := h.rooms[c.room]; ok {
		delete(clients, c)
		if len(clients) == 0 {
			delete(h.rooms, c.room)
		}
	}
	h.mu.Unlock()
}

// Notify delivers payload to every connection joined to the user's
// room, wrapped in an envelope of the given event type.
func (h *Hub) Notify(userID, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to marshal notification payload", "error", err)
		return
	}
	env, err := json.Marshal(Envelope{Type: event, Payload: data})
	if err != nil {
		h.logger.Error("failed to marshal notification envelope", "error", err)
		return
	}

	h.mu.RLock()
	clients := h.rooms[UserRoom(userID)]
	// Copy the set so the lock is released before sending.
	targets := make([]*Client, 0, len(clients))
	for c := range clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		c.enqueue(env, h.logger)
	}
}

// RoomCount returns the number of live connections in a user's room.
func (h *Hub) RoomCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[UserRoom(userID)])
}
