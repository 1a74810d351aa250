package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"emergency-triage/internal/chat"
	"emergency-triage/internal/chat/repository"
)

func (r *implRepository) GetSession(ctx context.Context, id string) (chat.Session, error) {
	b, err := r.rdb.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return chat.Session{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return chat.Session{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}

	var s chat.Session
	if err := json.Unmarshal(b, &s); err != nil {
		r.l.Errorf(ctx, "%s: decode %s: %v", r.dsn("GetSession"), id, err)
		return chat.Session{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return s, nil
}

func (r *implRepository) SaveSession(ctx context.Context, session chat.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	if err := r.rdb.Set(ctx, r.key(session.ID), b, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveSession"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	return nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	n, err := r.rdb.Del(ctx, r.key(id)).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSession"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
