package model

// Step is the informational stage of a conversation. It never gates which
// classification rules run; it only records what the engine asked for last.
type Step string

const (
	StepInitial       Step = "INITIAL"
	StepDangerCheck   Step = "DANGER_CHECK"
	StepLocationCheck Step = "LOCATION_CHECK"
	StepTradeCheck    Step = "TRADE_CHECK"
	StepRouting       Step = "ROUTING"
)

// Steps lists every step.
var Steps = []Step{StepInitial, StepDangerCheck, StepLocationCheck, StepTradeCheck, StepRouting}

// Slots records which of the set-once conversation slots are filled.
type Slots struct {
	Trade bool
	City  bool
}

type transition func(Slots) Step

var transitions = map[Step]transition{
	StepInitial:       fromOpen,
	StepDangerCheck:   fromOpen,
	StepLocationCheck: fromLocationCheck,
	StepTradeCheck:    fromTradeCheck,
	StepRouting:       fromRouting,
}

// Valid reports whether s is a known step.
func (s Step) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Next returns the step that follows s once the slots are filled as given.
// A step whose preconditions do not hold for slots (for example ROUTING
// without a city) is treated as if the conversation were still open.
func (s Step) Next(slots Slots) Step {
	t, ok := transitions[s]
	if !ok || !s.consistentWith(slots) {
		return fromOpen(slots)
	}
	return t(slots)
}

// consistentWith reports whether slots satisfy the preconditions of s.
func (s Step) consistentWith(slots Slots) bool {
	switch s {
	case StepLocationCheck:
		return slots.Trade
	case StepTradeCheck:
		return slots.City
	case StepRouting:
		return slots.Trade && slots.City
	default:
		return true
	}
}

func fromOpen(slots Slots) Step {
	switch {
	case slots.Trade && slots.City:
		return StepRouting
	case slots.Trade:
		return StepLocationCheck
	case slots.City:
		return StepTradeCheck
	default:
		return StepInitial
	}
}

// The trade is locked in, so only the city can still change.
func fromLocationCheck(slots Slots) Step {
	if slots.City {
		return StepRouting
	}
	return StepLocationCheck
}

// The city is locked in, so only the trade can still change.
func fromTradeCheck(slots Slots) Step {
	if slots.Trade {
		return StepRouting
	}
	return StepTradeCheck
}

func fromRouting(Slots) Step {
	return StepRouting
}
