package usecase

import (
	"emergency-triage/internal/knowledge"
	"emergency-triage/pkg/log"
)

// implUseCase is the private implementation of knowledge.UseCase.
type implUseCase struct {
	kb *knowledge.Base
	l  log.Logger
}

// New creates a new knowledge UseCase over kb.
func New(kb *knowledge.Base, l log.Logger) *implUseCase {
	return &implUseCase{
		kb: kb,
		l:  l,
	}
}
