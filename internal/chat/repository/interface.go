package repository

import (
	"context"

	"emergency-triage/internal/chat"
)

// Repository is the composed interface for the chat domain data store.
type Repository interface {
	SessionRepository
}

// SessionRepository stores conversation sessions by ID.
type SessionRepository interface {
	// GetSession returns ErrNotFound when the session is missing or expired.
	GetSession(ctx context.Context, id string) (chat.Session, error)
	SaveSession(ctx context.Context, session chat.Session) error
	DeleteSession(ctx context.Context, id string) error
}
