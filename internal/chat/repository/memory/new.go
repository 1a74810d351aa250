package memory

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"emergency-triage/internal/chat"
	"emergency-triage/internal/chat/repository"
)

const (
	DefaultMaxSessions = 10000
	DefaultTTL         = 30 * time.Minute
)

type implRepository struct {
	cache *expirable.LRU[string, chat.Session]
}

// New creates an in-process session store. Sessions expire ttl after their
// last save and the least recently used are evicted beyond maxSessions.
func New(maxSessions int, ttl time.Duration) repository.Repository {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{
		cache: expirable.NewLRU[string, chat.Session](maxSessions, nil, ttl),
	}
}
