package signaling

import "encoding/json"

// Message types exchanged over the signaling socket.
const (
	TypeJoinRoom         = "join-room"
	TypeOffer            = "offer"
	TypeAnswer           = "answer"
	TypeIceCandidate     = "ice-candidate"
	TypeUserConnected    = "user-connected"
	TypeUserDisconnected = "user-disconnected"
	TypeError            = "error"
)

// Message is one signaling frame. SDP and ICE payloads are opaque to the
// relay and passed through untouched.
type Message struct {
	Type      string          `json:"type"`
	ProjectID string          `json:"projectId,omitempty"`
	UserID    string          `json:"userId,omitempty"`
	From      string          `json:"from,omitempty"`
	To        string          `json:"to,omitempty"`
	Offer     json.RawMessage `json:"offer,omitempty"`
	Answer    json.RawMessage `json:"answer,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
	Reason    string          `json:"reason,omitempty"`
}

func isRelayType(messageType string) bool {
	return messageType == TypeOffer || messageType == TypeAnswer || messageType == TypeIceCandidate
}
