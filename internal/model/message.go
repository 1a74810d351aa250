package model

import "time"

// Role is the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Action is an optional instruction attached to an assistant message.
type Action string

const (
	ActionNone     Action = ""
	ActionNavigate Action = "navigate"
)

// ChatMessage is one conversation turn. It is never modified after creation.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Action    Action    `json:"action,omitempty"`
	Target    string    `json:"target,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsNavigation reports whether the message asks the caller to change page.
func (m ChatMessage) IsNavigation() bool {
	return m.Action == ActionNavigate && m.Target != ""
}
