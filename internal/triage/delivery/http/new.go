package http

import (
	"emergency-triage/internal/triage"
	"emergency-triage/pkg/log"
)

type handler struct {
	l  log.Logger
	uc triage.UseCase
}

// New creates a new HTTP handler for the triage domain.
func New(l log.Logger, uc triage.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
