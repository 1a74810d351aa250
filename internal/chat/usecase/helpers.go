package usecase

import (
	"strings"
	"unicode/utf8"

	"emergency-triage/internal/chat"
	"emergency-triage/internal/model"
	"emergency-triage/internal/router"
)

// validateMessage rejects input the router should never see.
func (uc *implUseCase) validateMessage(msg string) error {
	if strings.TrimSpace(msg) == "" {
		return chat.ErrEmptyMessage
	}
	if utf8.RuneCountInString(msg) > chat.MaxMessageRunes {
		return chat.ErrMessageTooLong
	}
	return nil
}

// decide runs one turn through the router and records the outcome.
func (uc *implUseCase) decide(msg string, state model.ConversationState) router.Decision {
	d := uc.router.Decide(msg, state)
	classificationsTotal.WithLabelValues(string(d.Outcome)).Inc()
	return d
}
