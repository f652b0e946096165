package signaling

import (
	"log"
	"sync"

	"projectmatch-service/internal/metrics"
)

// Hub owns all room membership state. Rooms are keyed "project-{id}",
// created on the first join and evicted when the last member leaves.
// All signaling traffic is scoped to the sender's room; nothing is ever
// broadcast across rooms.
type Hub struct {
	mu      sync.Mutex
	rooms   map[string]map[*Client]bool
	clients int
	metrics *metrics.Collector
}

// NewHub creates an empty Hub. collector may be nil.
func NewHub(collector *metrics.Collector) *Hub {
	return &Hub{
		rooms:   make(map[string]map[*Client]bool),
		metrics: collector,
	}
}

func roomKey(projectID string) string {
	return "project-" + projectID
}

// Register adds a connection to the hub before it has joined a room.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	h.clients++
	h.updateGauges()
	h.mu.Unlock()
}

// JoinRoom moves the client into the room for the project, leaving any room
// it was in before, and tells the other members someone arrived.
func (h *Hub) JoinRoom(client *Client, projectID, userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client.roomKey != "" {
		h.leaveLocked(client, true)
	}

	key := roomKey(projectID)
	room, ok := h.rooms[key]
	if !ok {
		room = make(map[*Client]bool)
		h.rooms[key] = room
	}
	client.userID = userID
	client.roomKey = key
	room[client] = true

	h.broadcastLocked(key, client, Message{Type: TypeUserConnected, UserID: userID})
	h.updateGauges()
	log.Printf("signaling: %s joined %s (%d members)", userID, key, len(room))
}

// Relay forwards an offer, answer or ICE candidate to the other members of
// the sender's room, stamping the sender as the origin.
func (h *Hub) Relay(client *Client, msg Message) {
	if !isRelayType(msg.Type) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if client.roomKey == "" {
		// Signaling before join-room has no scope to deliver into.
		client.enqueue(Message{Type: TypeError, Reason: "join a room first"})
		return
	}

	msg.From = client.userID
	msg.To = ""
	h.broadcastLocked(client.roomKey, client, msg)

	if h.metrics != nil {
		h.metrics.RecordSignalingMessage(msg.Type)
	}
}

// Unregister removes the client. An abrupt disconnect takes the same path
// as an orderly leave: remaining members are notified and an emptied room
// is dropped from the index.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leaveLocked(client, true)
	h.clients--
	close(client.send)
	h.updateGauges()
}

// RoomSize reports the current member count of a project's room.
func (h *Hub) RoomSize(projectID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[roomKey(projectID)])
}

func (h *Hub) leaveLocked(client *Client, notify bool) {
	key := client.roomKey
	if key == "" {
		return
	}
	room, ok := h.rooms[key]
	if !ok {
		return
	}
	delete(room, client)
	client.roomKey = ""

	if len(room) == 0 {
		delete(h.rooms, key)
		log.Printf("signaling: room %s closed", key)
		return
	}
	if notify {
		h.broadcastLocked(key, client, Message{Type: TypeUserDisconnected, UserID: client.userID})
	}
}

// broadcastLocked sends the message to every member of the room except the
// origin. Members that cannot keep up are removed.
func (h *Hub) broadcastLocked(key string, origin *Client, msg Message) {
	room := h.rooms[key]
	for member := range room {
		if member == origin {
			continue
		}
		if !member.enqueue(msg) {
			log.Printf("signaling: dropping slow client %s from %s", member.userID, key)
			h.leaveLocked(member, false)
		}
	}
}

func (h *Hub) updateGauges() {
	if h.metrics == nil {
		return
	}
	h.metrics.SetSignalingRooms(len(h.rooms))
	h.metrics.SetSignalingClients(h.clients)
}
