package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	sendBufferSize    = 16
	idlePingInterval  = 30 * time.Second
	writeWait         = 10 * time.Second
	maxMessageSize    = 64 << 10
	disconnectedGrace = time.Minute
)

// client - one websocket connection. Writes go through send so only writePump touches the conn.
type client struct {
	conn *websocket.Conn
	send chan []byte

	mu       sync.Mutex
	playerID string
	closed   bool
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

func (that *client) setPlayer(id string) {
	that.mu.Lock()
	that.playerID = id
	that.mu.Unlock()
}

func (that *client) player() string {
	that.mu.Lock()
	defer that.mu.Unlock()
	return that.playerID
}

// sendMessage - queues a message, dropping it when the client is gone or too slow.
func (that *client) sendMessage(action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	frame, err := json.Marshal(Message{Action: action, Payload: body})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return nil
	}

	select {
	case that.send <- frame:
		return nil
	default:
		return fmt.Errorf("send buffer of player %s is full", that.playerID)
	}
}

func (that *client) close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.closed {
		that.closed = true
		close(that.send)
	}
}

// writePump - drains send and pings the peer when the connection has been idle.
func (that *client) writePump() error {
	ticker := time.NewTicker(idlePingInterval)
	defer ticker.Stop()

	lastWrite := time.Now()
	for {
		select {
		case frame, ok := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = that.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return nil
			}

			if err := that.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return fmt.Errorf("failed to write message: %w", err)
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < idlePingInterval {
				continue
			}

			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return fmt.Errorf("failed to ping: %w", err)
			}
			lastWrite = time.Now()
		}
	}
}
