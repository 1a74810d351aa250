package usecase

import (
	"context"

	"emergency-triage/internal/model"
	"emergency-triage/internal/triage"
)

// Assess prices a structured selection. Selections that cannot be looked
// up get the neutral default result, never an error.
func (uc *implUseCase) Assess(ctx context.Context, input triage.AssessInput) (triage.AssessOutput, error) {
	result, ok := uc.est.Assess(input.TradeID, input.ProblemID, input.Urgency)
	if !ok {
		assessmentsTotal.WithLabelValues(resultDefault).Inc()
		uc.l.Warnf(ctx, "uc.Assess: no match for trade=%q problem=%q urgency=%q, using default",
			input.TradeID, input.ProblemID, input.Urgency)
		return triage.AssessOutput{Result: result}, nil
	}

	assessmentsTotal.WithLabelValues(resultFound).Inc()
	uc.l.Debugf(ctx, "uc.Assess: trade=%s problem=%s urgency=%s score=%d",
		input.TradeID, input.ProblemID, input.Urgency, result.PriorityScore)

	return triage.AssessOutput{Result: result, Matched: true}, nil
}

// ListTrades returns the catalog in menu order.
func (uc *implUseCase) ListTrades(ctx context.Context) (triage.ListTradesOutput, error) {
	return triage.ListTradesOutput{Trades: uc.est.Trades()}, nil
}

// GetTrade returns one trade with its problem archetypes.
func (uc *implUseCase) GetTrade(ctx context.Context, id string) (triage.GetTradeOutput, error) {
	t, ok := uc.est.Trade(model.Trade(id))
	if !ok {
		return triage.GetTradeOutput{}, triage.ErrTradeNotFound
	}
	return triage.GetTradeOutput{Trade: t}, nil
}
