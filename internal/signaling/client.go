package signaling

import (
	"encoding/json"
	"log"
)

// sendBufferSize bounds the per-client outbound queue. A client that cannot
// drain this many frames is dropped instead of blocking the hub.
const sendBufferSize = 64

// conn is the subset of the websocket connection the hub writes to,
// narrowed so tests can run without a live socket.
type conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client is one connected signaling participant.
type Client struct {
	hub    *Hub
	conn   conn
	send   chan []byte
	userID string
	// roomKey is set once the client joins; owned by the hub.
	roomKey string
}

// newClient wraps a connection for hub bookkeeping.
func newClient(hub *Hub, c conn) *Client {
	return &Client{
		hub:  hub,
		conn: c,
		send: make(chan []byte, sendBufferSize),
	}
}

// writePump drains the send queue onto the socket. It exits when the hub
// closes the channel, closing the connection with it.
func (c *Client) writePump() {
	defer c.conn.Close()
	for data := range c.send {
		if err := c.conn.WriteMessage(textMessage, data); err != nil {
			log.Printf("signaling: write to %s failed: %v", c.userID, err)
			return
		}
	}
}

// enqueue tries to queue a frame for the client. Reports false when the
// client's buffer is full.
func (c *Client) enqueue(msg Message) bool {
	data, err := json.Marshal(msg)
	if err != nil {
		return true
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// textMessage matches websocket.TextMessage without importing the transport
// package here.
const textMessage = 1
