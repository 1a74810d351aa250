package redis

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"emergency-triage/internal/chat/repository"
	"emergency-triage/pkg/log"
)

// KeyPrefix namespaces session keys.
const KeyPrefix = "triage:session:"

type implRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
	l   log.Logger
}

// New creates a Redis-backed session store. Every save resets the key's TTL.
func New(rdb redis.Cmdable, ttl time.Duration, l log.Logger) repository.Repository {
	if rdb == nil {
		panic("chat/repository/redis: client is required")
	}
	return &implRepository{rdb: rdb, ttl: ttl, l: l}
}

func (r *implRepository) key(id string) string {
	return KeyPrefix + id
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chat/repository/redis.%s", method)
}
