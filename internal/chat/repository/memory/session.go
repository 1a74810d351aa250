package memory

import (
	"context"

	"emergency-triage/internal/chat"
	"emergency-triage/internal/chat/repository"
)

func (r *implRepository) GetSession(ctx context.Context, id string) (chat.Session, error) {
	s, ok := r.cache.Get(id)
	if !ok {
		return chat.Session{}, repository.ErrNotFound
	}
	return s, nil
}

func (r *implRepository) SaveSession(ctx context.Context, session chat.Session) error {
	// Add refreshes the expiry of an existing key.
	r.cache.Add(session.ID, session)
	return nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	if !r.cache.Remove(id) {
		return repository.ErrNotFound
	}
	return nil
}
