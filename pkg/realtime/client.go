package realtime

import (
	"context"
	"log/slog"
	"time"

	"nhooyr.io/websocket"
)

const (
	// sendBufferSize is the number of messages queued per connection
	// before a slow consumer starts losing them.
	sendBufferSize = 16

	writeTimeout = 5 * time.Second
)

// Client is one live WebSocket connection. A connection belongs to at
// most one room for its whole lifetime; there is no leave or switch.
type Client struct {
	conn *websocket.Conn
	send chan []byte
	id   string
	room string
}

// enqueue hands a message to the write pump without blocking. Messages
// for a full buffer are dropped; delivery is best-effort.
func (c *Client) enqueue(data []byte, logger *slog.Logger) {
	select {
	case c.send <- data:
	default:
		logger.Warn("send buffer full, dropping message", "conn", c.id)
	}
}

// writePump drains the send channel onto the connection. It exits when
// ctx is cancelled or a write fails.
func (c *Client) writePump(ctx context.Context, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := c.conn.Write(writeCtx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				logger.Error("websocket write failed", "conn", c.id, "error", err)
				return
			}
		}
	}
}
