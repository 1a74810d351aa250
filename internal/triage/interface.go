package triage

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Assess prices a structured trade/problem/urgency selection.
	Assess(ctx context.Context, input AssessInput) (AssessOutput, error)
	// ListTrades returns the catalog for the selection menu.
	ListTrades(ctx context.Context) (ListTradesOutput, error)
	// GetTrade returns a single trade with its problems.
	GetTrade(ctx context.Context, id string) (GetTradeOutput, error)
}
