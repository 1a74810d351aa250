package http

import (
	"emergency-triage/internal/knowledge"
	"emergency-triage/pkg/log"
)

type handler struct {
	l  log.Logger
	uc knowledge.UseCase
}

// New creates a new HTTP handler for the knowledge domain.
func New(l log.Logger, uc knowledge.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
