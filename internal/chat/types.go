package chat

import (
	"time"

	"emergency-triage/internal/model"
	"emergency-triage/internal/router"
)

// --- Session Domain Model ---

// Session is a server-held conversation. State is replaced wholesale on
// every turn.
type Session struct {
	ID        string                  `json:"id"`
	State     model.ConversationState `json:"state"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// --- UseCase Inputs ---

type ClassifyInput struct {
	Message string
	State   model.ConversationState
}

type StartSessionInput struct {
	ID   string // optional, a caller-chosen key such as a Telegram chat
	City string // optional, e.g. from IP geolocation
}

type SendMessageInput struct {
	SessionID string
	Message   string
}

// --- UseCase Outputs ---

type ClassifyOutput struct {
	State   model.ConversationState
	Reply   model.ChatMessage
	Outcome router.Outcome
}

type StartSessionOutput struct {
	Session Session
}

type SendMessageOutput struct {
	Session Session
	Reply   model.ChatMessage
	Outcome router.Outcome
}

type GetSessionOutput struct {
	Session Session
}
