package websocket

import "github.com/campuslink/campuslink-backend/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionSend Action = "send"
	ActionPing Action = "ping"
)

// RequestPayload is the single client message shape; Body is only read for
// ActionSend.
type RequestPayload struct {
	Action Action `json:"action"`
	Body   string `json:"body,omitempty"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventError   Event = "error"
	EventMessage Event = "message"
	EventSent    Event = "sent"
	EventPong    Event = "pong"
)

// MessageEvent fans a persisted chat message out to every listener.
type MessageEvent struct {
	Event   Event              `json:"event"`
	Message *model.ChatMessage `json:"message"`
}

// SentEvent acknowledges the sender's own message.
type SentEvent struct {
	Event     Event  `json:"event"`
	MessageID string `json:"message_id"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
