package usecase

import (
	"context"
	"errors"
	"strings"

	"emergency-triage/internal/chat"
	"emergency-triage/internal/chat/repository"
	"emergency-triage/internal/model"
	"emergency-triage/internal/router"
	"emergency-triage/pkg/log"
)

// StartSession opens a conversation. A city supplied up front (for example
// from geolocation) pre-fills the city slot.
func (uc *implUseCase) StartSession(ctx context.Context, input chat.StartSessionInput) (chat.StartSessionOutput, error) {
	state := model.NewConversationState()

	if city := strings.TrimSpace(input.City); city != "" {
		canonical, ok := uc.router.MatchCity(city)
		if !ok {
			return chat.StartSessionOutput{}, chat.ErrUnknownCity
		}
		state = state.WithCity(canonical).Advance()
	}

	id := input.ID
	if id == "" {
		id = uc.newID()
	}

	now := uc.now()
	s := chat.Session{
		ID:        id,
		State:     state,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.SaveSession(ctx, s); err != nil {
		uc.l.Errorf(ctx, "uc.StartSession SaveSession: %v", err)
		return chat.StartSessionOutput{}, err
	}

	sessionsStartedTotal.Inc()
	uc.l.Infof(log.WithSessionID(ctx, s.ID), "uc.StartSession: city=%q", state.DetectedCity)

	return chat.StartSessionOutput{Session: s}, nil
}

// SendMessage runs one turn of a stored conversation and saves the result.
func (uc *implUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	ctx = log.WithSessionID(ctx, input.SessionID)

	if err := uc.validateMessage(input.Message); err != nil {
		return chat.SendMessageOutput{}, err
	}

	s, err := uc.load(ctx, input.SessionID)
	if err != nil {
		return chat.SendMessageOutput{}, err
	}

	d := uc.decide(input.Message, s.State)
	s.State = d.State
	s.UpdatedAt = uc.now()

	if err := uc.repo.SaveSession(ctx, s); err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage SaveSession: %v", err)
		return chat.SendMessageOutput{}, err
	}

	if d.Outcome == router.OutcomeDanger {
		uc.l.Warnf(ctx, "uc.SendMessage: danger keyword %q", d.Trigger)
	} else {
		uc.l.Infof(ctx, "uc.SendMessage: outcome=%s step=%s trade=%s city=%q",
			d.Outcome, s.State.Step, s.State.DetectedTrade, s.State.DetectedCity)
	}

	return chat.SendMessageOutput{
		Session: s,
		Reply:   d.Reply,
		Outcome: d.Outcome,
	}, nil
}

// GetSession returns a stored conversation.
func (uc *implUseCase) GetSession(ctx context.Context, id string) (chat.GetSessionOutput, error) {
	s, err := uc.load(log.WithSessionID(ctx, id), id)
	if err != nil {
		return chat.GetSessionOutput{}, err
	}
	return chat.GetSessionOutput{Session: s}, nil
}

// EndSession discards a conversation.
func (uc *implUseCase) EndSession(ctx context.Context, id string) error {
	ctx = log.WithSessionID(ctx, id)
	if err := uc.repo.DeleteSession(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return chat.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "uc.EndSession DeleteSession: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) load(ctx context.Context, id string) (chat.Session, error) {
	s, err := uc.repo.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return chat.Session{}, chat.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "uc.load GetSession: %v", err)
		return chat.Session{}, err
	}
	return s, nil
}
