package usecase

import (
	"time"

	"github.com/google/uuid"

	"emergency-triage/internal/chat/repository"
	"emergency-triage/internal/model"
	"emergency-triage/internal/router"
	"emergency-triage/pkg/log"
)

// Classifier is the part of the keyword router the chat flow needs.
type Classifier interface {
	Decide(message string, state model.ConversationState) router.Decision
	MatchCity(name string) (string, bool)
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	repo   repository.Repository
	router Classifier
	l      log.Logger
	newID  func() string
	now    func() time.Time
}

// New creates a new chat UseCase.
func New(repo repository.Repository, r Classifier, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		router: r,
		l:      l,
		newID:  uuid.NewString,
		now:    time.Now,
	}
}
