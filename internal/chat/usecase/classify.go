package usecase

import (
	"context"

	"emergency-triage/internal/chat"
)

// Classify runs one turn against a caller-held state.
func (uc *implUseCase) Classify(ctx context.Context, input chat.ClassifyInput) (chat.ClassifyOutput, error) {
	if err := uc.validateMessage(input.Message); err != nil {
		return chat.ClassifyOutput{}, err
	}

	d := uc.decide(input.Message, input.State)
	uc.l.Debugf(ctx, "uc.Classify: outcome=%s reason=%s trigger=%q", d.Outcome, d.Reason, d.Trigger)

	return chat.ClassifyOutput{
		State:   d.State,
		Reply:   d.Reply,
		Outcome: d.Outcome,
	}, nil
}
