package signaling

import (
	"encoding/json"
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// UpgradeRequired rejects plain HTTP requests on the websocket route.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler returns the websocket handler serving the signaling protocol.
// The socket carries join-room frames and offer/answer/ice-candidate frames;
// everything else is ignored.
func Handler(hub *Hub) fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		client := newClient(hub, c)
		hub.Register(client)
		go client.writePump()
		defer hub.Unregister(client)

		for {
			_, data, err := c.ReadMessage()
			if err != nil {
				// Abrupt disconnects land here and are handled like a leave.
				return
			}

			var msg Message
			if err := json.Unmarshal(data, &msg); err != nil {
				client.enqueue(Message{Type: TypeError, Reason: "malformed message"})
				continue
			}

			switch msg.Type {
			case TypeJoinRoom:
				if msg.ProjectID == "" || msg.UserID == "" {
					client.enqueue(Message{Type: TypeError, Reason: "projectId and userId are required"})
					continue
				}
				hub.JoinRoom(client, msg.ProjectID, msg.UserID)
			case TypeOffer, TypeAnswer, TypeIceCandidate:
				hub.Relay(client, msg)
			default:
				log.Printf("signaling: ignoring unknown message type %q", msg.Type)
			}
		}
	})
}
