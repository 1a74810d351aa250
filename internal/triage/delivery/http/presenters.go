package http

import (
	"emergency-triage/internal/model"
	"emergency-triage/internal/triage"
)

// --- Request DTOs ---

type assessReq struct {
	TradeID   string `json:"trade_id"   binding:"required,max=64"`
	ProblemID string `json:"problem_id" binding:"required,max=64"`
	Urgency   string `json:"urgency"    binding:"required,oneof=emergency same-day next-day scheduled"`
}

func (r assessReq) validate() error { return nil }

func (r assessReq) toInput() triage.AssessInput {
	return triage.AssessInput{
		TradeID:   r.TradeID,
		ProblemID: r.ProblemID,
		Urgency:   model.Urgency(r.Urgency),
	}
}

// --- Response DTOs ---

type costResp struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type assessResp struct {
	PriorityScore     int      `json:"priority_score"`
	EstimatedCost     costResp `json:"estimated_cost"`
	EstimatedWaitTime string   `json:"estimated_wait_time"`
	RecommendedAction string   `json:"recommended_action"`
	Matched           bool     `json:"matched"`
}

func (h *handler) newAssessResp(out triage.AssessOutput) assessResp {
	return assessResp{
		PriorityScore:     out.Result.PriorityScore,
		EstimatedCost:     costResp{Min: out.Result.EstimatedCost.Min, Max: out.Result.EstimatedCost.Max},
		EstimatedWaitTime: out.Result.EstimatedWaitTime,
		RecommendedAction: out.Result.RecommendedAction,
		Matched:           out.Matched,
	}
}

type problemResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	UrgencyHint string `json:"urgency_hint"`
}

type tradeResp struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Problems []problemResp `json:"problems"`
}

func newTradeResp(t triage.TradeEntry) tradeResp {
	problems := make([]problemResp, len(t.Problems))
	for i, p := range t.Problems {
		problems[i] = problemResp{
			ID:          p.ID,
			Name:        p.Name,
			UrgencyHint: string(p.UrgencyHint),
		}
	}
	return tradeResp{
		ID:       string(t.ID),
		Name:     t.Name,
		Problems: problems,
	}
}

type listTradesResp struct {
	Trades []tradeResp `json:"trades"`
}

func (h *handler) newListTradesResp(out triage.ListTradesOutput) listTradesResp {
	trades := make([]tradeResp, len(out.Trades))
	for i, t := range out.Trades {
		trades[i] = newTradeResp(t)
	}
	return listTradesResp{Trades: trades}
}

type tradeDetailResp struct {
	Trade tradeResp `json:"trade"`
}

func (h *handler) newTradeDetailResp(out triage.GetTradeOutput) tradeDetailResp {
	return tradeDetailResp{Trade: newTradeResp(out.Trade)}
}
