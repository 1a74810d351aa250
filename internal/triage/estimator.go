package triage

import (
	"math"

	"emergency-triage/internal/model"
	"emergency-triage/pkg/datemath"
)

// Estimator prices structured selections against a read-only catalog.
// The only non-determinism is the clock used for the time-of-day band.
type Estimator struct {
	trades   []TradeEntry
	byTrade  map[model.Trade]int
	baseCost map[model.Trade]float64
	clock    *datemath.Clock
}

// NewEstimator builds an Estimator. The catalog is copied.
func NewEstimator(catalog Catalog, clock *datemath.Clock) *Estimator {
	e := &Estimator{
		trades:   make([]TradeEntry, len(catalog.Trades)),
		byTrade:  make(map[model.Trade]int, len(catalog.Trades)),
		baseCost: make(map[model.Trade]float64, len(catalog.BaseCost)),
		clock:    clock,
	}
	for i, t := range catalog.Trades {
		e.trades[i] = TradeEntry{ID: t.ID, Name: t.Name, Problems: append([]Problem(nil), t.Problems...)}
		e.byTrade[t.ID] = i
	}
	for k, v := range catalog.BaseCost {
		e.baseCost[k] = v
	}
	return e
}

// DefaultResult is the neutral assessment for selections that cannot be
// looked up.
func DefaultResult() Result {
	return Result{
		PriorityScore:     DefaultPriority,
		EstimatedCost:     CostRange{Min: DefaultCostMin, Max: DefaultCostMax},
		EstimatedWaitTime: DefaultWait,
		RecommendedAction: DefaultAction,
	}
}

// Assess prices a selection. It never fails: unknown trades, problems or
// urgency levels yield DefaultResult and ok=false.
func (e *Estimator) Assess(tradeID, problemID string, urgency model.Urgency) (Result, bool) {
	trade, ok := e.Trade(model.Trade(tradeID))
	if !ok {
		return DefaultResult(), false
	}
	problem, ok := findProblem(trade, problemID)
	if !ok {
		return DefaultResult(), false
	}
	base, ok := e.baseCost[trade.ID]
	if !ok || !urgency.Valid() {
		return DefaultResult(), false
	}

	estimated := base *
		urgencyMultiplier[urgency] *
		bandMultiplier[e.clock.CurrentBand()] *
		problem.CostMultiplier

	score := priorityScore(urgency, problem.UrgencyHint)

	return Result{
		PriorityScore: score,
		EstimatedCost: CostRange{
			Min: int(math.Round(estimated * CostMinFactor)),
			Max: int(math.Round(estimated * CostMaxFactor)),
		},
		EstimatedWaitTime: waitTime[urgency],
		RecommendedAction: recommendedAction(score),
	}, true
}

// Trades returns a copy of the catalog in menu order.
func (e *Estimator) Trades() []TradeEntry {
	out := make([]TradeEntry, len(e.trades))
	for i, t := range e.trades {
		out[i] = TradeEntry{ID: t.ID, Name: t.Name, Problems: append([]Problem(nil), t.Problems...)}
	}
	return out
}

// Trade returns a copy of one catalog entry.
func (e *Estimator) Trade(id model.Trade) (TradeEntry, bool) {
	i, ok := e.byTrade[id]
	if !ok {
		return TradeEntry{}, false
	}
	t := e.trades[i]
	return TradeEntry{ID: t.ID, Name: t.Name, Problems: append([]Problem(nil), t.Problems...)}, true
}

func findProblem(t TradeEntry, id string) (Problem, bool) {
	for _, p := range t.Problems {
		if p.ID == id {
			return p, true
		}
	}
	return Problem{}, false
}

// priorityScore combines the declared urgency with the archetype's own
// severity. Severity can only raise the score.
func priorityScore(declared, hint model.Urgency) int {
	score := basePriority[declared]
	if hint == model.UrgencyEmergency {
		score = min(score+InherentSeverityBump, MaxPriority)
	}
	return score
}

func recommendedAction(score int) string {
	switch {
	case score >= HighPriority:
		return ActionHigh
	case score >= MediumPriority:
		return ActionMedium
	default:
		return ActionLow
	}
}
