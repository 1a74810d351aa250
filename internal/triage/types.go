package triage

import "emergency-triage/internal/model"

// Problem is a problem archetype within a trade.
type Problem struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	UrgencyHint    model.Urgency `json:"urgency_hint"`
	CostMultiplier float64       `json:"cost_multiplier"`
}

// TradeEntry is one trade in the catalog with its problem archetypes in
// menu order.
type TradeEntry struct {
	ID       model.Trade `json:"id"`
	Name     string      `json:"name"`
	Problems []Problem   `json:"problems"`
}

// Catalog is the static triage configuration.
type Catalog struct {
	Trades   []TradeEntry
	BaseCost map[model.Trade]float64
}

// CostRange is an estimated price band in whole pounds.
type CostRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Result is a freshly computed assessment. It is never stored.
type Result struct {
	PriorityScore     int       `json:"priority_score"`
	EstimatedCost     CostRange `json:"estimated_cost"`
	EstimatedWaitTime string    `json:"estimated_wait_time"`
	RecommendedAction string    `json:"recommended_action"`
}

// --- UseCase Inputs ---

type AssessInput struct {
	TradeID   string
	ProblemID string
	Urgency   model.Urgency
}

// --- UseCase Outputs ---

type AssessOutput struct {
	Result  Result
	Matched bool // false when the neutral default was returned
}

type ListTradesOutput struct {
	Trades []TradeEntry
}

type GetTradeOutput struct {
	Trade TradeEntry
}
