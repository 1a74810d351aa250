package usecase

import (
	"emergency-triage/internal/triage"
	"emergency-triage/pkg/log"
)

// implUseCase is the private implementation of triage.UseCase.
type implUseCase struct {
	est *triage.Estimator
	l   log.Logger
}

// Ensure implUseCase implements triage.UseCase
var _ triage.UseCase = (*implUseCase)(nil)

// New creates a new triage UseCase backed by est.
func New(est *triage.Estimator, l log.Logger) *implUseCase {
	return &implUseCase{
		est: est,
		l:   l,
	}
}
