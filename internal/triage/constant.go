package triage

import (
	"emergency-triage/internal/model"
	"emergency-triage/pkg/datemath"
)

// Neutral assessment returned when a selection cannot be looked up.
const (
	DefaultPriority = 5
	DefaultCostMin  = 80
	DefaultCostMax  = 200
	DefaultWait     = "2-4 hours"
	DefaultAction   = "Call for assessment"
)

// Cost band spread around the base estimate.
const (
	CostMinFactor = 0.8
	CostMaxFactor = 1.4
)

// Priority scoring.
const (
	MaxPriority          = 10
	InherentSeverityBump = 2
	HighPriority         = 8
	MediumPriority       = 6
)

// Recommended actions by priority threshold.
const (
	ActionHigh   = "Call now for an emergency callout"
	ActionMedium = "Book a same-day visit"
	ActionLow    = "Schedule a convenient appointment"
)

var urgencyMultiplier = map[model.Urgency]float64{
	model.UrgencyEmergency: 1.5,
	model.UrgencySameDay:   1.25,
	model.UrgencyNextDay:   1.0,
	model.UrgencyScheduled: 0.9,
}

var bandMultiplier = map[datemath.Band]float64{
	datemath.BandNight:    1.5,
	datemath.BandShoulder: 1.25,
	datemath.BandDay:      1.0,
}

var basePriority = map[model.Urgency]int{
	model.UrgencyEmergency: 10,
	model.UrgencySameDay:   7,
	model.UrgencyNextDay:   4,
	model.UrgencyScheduled: 2,
}

var waitTime = map[model.Urgency]string{
	model.UrgencyEmergency: "30-60 minutes",
	model.UrgencySameDay:   "2-4 hours",
	model.UrgencyNextDay:   "Next working day",
	model.UrgencyScheduled: "3-5 working days",
}
