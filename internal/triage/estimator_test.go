package triage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emergency-triage/internal/model"
	"emergency-triage/internal/triage"
	"emergency-triage/pkg/datemath"
)

func estimatorAt(h int) *triage.Estimator {
	clock := datemath.NewFixedClock(time.Date(2024, 5, 1, h, 0, 0, 0, time.UTC))
	return triage.NewEstimator(triage.DefaultCatalog(), clock)
}

func TestAssessBurstPipeEmergency(t *testing.T) {
	for _, h := range []int{3, 7, 12, 19} {
		res, ok := estimatorAt(h).Assess("plumber", "burst-pipe", model.UrgencyEmergency)
		require.True(t, ok)
		assert.Equal(t, 10, res.PriorityScore)
		assert.Positive(t, res.EstimatedCost.Min)
		assert.Less(t, res.EstimatedCost.Min, res.EstimatedCost.Max)
		assert.Equal(t, triage.ActionHigh, res.RecommendedAction)
		assert.Equal(t, "30-60 minutes", res.EstimatedWaitTime)
	}
}

func TestAssessCostDaytime(t *testing.T) {
	// 85 * 1.5 * 1.0 * 1.4 = 178.5
	res, ok := estimatorAt(12).Assess("plumber", "burst-pipe", model.UrgencyEmergency)
	require.True(t, ok)
	assert.Equal(t, triage.CostRange{Min: 143, Max: 250}, res.EstimatedCost)
}

func TestAssessCostNight(t *testing.T) {
	// 80 * 1.5 * 1.5 * 1.0 = 180
	res, ok := estimatorAt(23).Assess("locksmith", "locked-out", model.UrgencyEmergency)
	require.True(t, ok)
	assert.Equal(t, triage.CostRange{Min: 144, Max: 252}, res.EstimatedCost)
}

func TestAssessCostShoulder(t *testing.T) {
	// 100 * 1.0 * 1.25 * 1.0 = 125
	res, ok := estimatorAt(19).Assess("drain-specialist", "blocked-drain", model.UrgencyNextDay)
	require.True(t, ok)
	assert.Equal(t, triage.CostRange{Min: 100, Max: 175}, res.EstimatedCost)
}

func TestAssessUnknownSelection(t *testing.T) {
	e := estimatorAt(12)

	cases := []struct {
		name    string
		trade   string
		problem string
		urgency model.Urgency
	}{
		{"unknown trade and problem", "unknown-trade", "unknown-problem", model.UrgencyScheduled},
		{"unknown problem", "plumber", "roof-leak", model.UrgencyEmergency},
		{"problem from another trade", "plumber", "locked-out", model.UrgencyEmergency},
		{"unknown urgency", "plumber", "burst-pipe", model.Urgency("whenever")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, ok := e.Assess(tc.trade, tc.problem, tc.urgency)
			assert.False(t, ok)
			assert.Equal(t, triage.DefaultResult(), res)
			assert.Equal(t, 5, res.PriorityScore)
			assert.Equal(t, triage.CostRange{Min: 80, Max: 200}, res.EstimatedCost)
			assert.Equal(t, "2-4 hours", res.EstimatedWaitTime)
			assert.Equal(t, "Call for assessment", res.RecommendedAction)
		})
	}
}

func TestAssessPriorityScoring(t *testing.T) {
	e := estimatorAt(12)

	cases := []struct {
		name       string
		trade      string
		problem    string
		urgency    model.Urgency
		wantScore  int
		wantAction string
	}{
		{"severe archetype raises next-day", "plumber", "burst-pipe", model.UrgencyNextDay, 6, triage.ActionMedium},
		{"severe archetype raises same-day", "electrician", "sparking-socket", model.UrgencySameDay, 9, triage.ActionHigh},
		{"severe archetype raises scheduled", "glazier", "smashed-window", model.UrgencyScheduled, 4, triage.ActionLow},
		{"mild archetype keeps same-day", "plumber", "no-hot-water", model.UrgencySameDay, 7, triage.ActionMedium},
		{"mild archetype never lowers emergency", "plumber", "dripping-tap", model.UrgencyEmergency, 10, triage.ActionHigh},
		{"mild archetype scheduled", "plumber", "dripping-tap", model.UrgencyScheduled, 2, triage.ActionLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, ok := e.Assess(tc.trade, tc.problem, tc.urgency)
			require.True(t, ok)
			assert.Equal(t, tc.wantScore, res.PriorityScore)
			assert.Equal(t, tc.wantAction, res.RecommendedAction)
		})
	}
}

func TestAssessWaitTimes(t *testing.T) {
	e := estimatorAt(12)
	want := map[model.Urgency]string{
		model.UrgencyEmergency: "30-60 minutes",
		model.UrgencySameDay:   "2-4 hours",
		model.UrgencyNextDay:   "Next working day",
		model.UrgencyScheduled: "3-5 working days",
	}
	for u, w := range want {
		res, ok := e.Assess("glazier", "cracked-pane", u)
		require.True(t, ok)
		assert.Equal(t, w, res.EstimatedWaitTime, string(u))
	}
}

func TestCatalogCoversEveryTrade(t *testing.T) {
	e := estimatorAt(12)
	for _, tr := range model.TradePriority {
		entry, ok := e.Trade(tr)
		require.True(t, ok, "missing trade %s", tr)
		assert.NotEmpty(t, entry.Problems)
	}
	assert.Len(t, e.Trades(), len(model.TradePriority))
}

func TestTradesReturnsCopy(t *testing.T) {
	e := estimatorAt(12)
	trades := e.Trades()
	trades[0].Problems[0].CostMultiplier = 100

	again, _ := e.Trade(trades[0].ID)
	assert.NotEqual(t, 100.0, again.Problems[0].CostMultiplier)
}
