package middleware

import (
	"emergency-triage/pkg/log"
)

// Config holds the tunables for the shared HTTP middleware.
type Config struct {
	// RateLimitPerMin is the sustained number of requests allowed per client
	// IP. Zero disables rate limiting.
	RateLimitPerMin int
	// RateLimitBurst is how many requests a client may send at once.
	// Defaults to a tenth of RateLimitPerMin.
	RateLimitBurst int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin, cfg.RateLimitBurst)
	}
	return mw
}
