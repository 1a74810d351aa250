package model

// Urgency is how soon the user needs a tradesperson.
type Urgency string

const (
	UrgencyEmergency Urgency = "emergency"
	UrgencySameDay   Urgency = "same-day"
	UrgencyNextDay   Urgency = "next-day"
	UrgencyScheduled Urgency = "scheduled"
)

// Urgencies lists every urgency level, most urgent first.
var Urgencies = []Urgency{UrgencyEmergency, UrgencySameDay, UrgencyNextDay, UrgencyScheduled}

// Valid reports whether u is a known urgency level.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyEmergency, UrgencySameDay, UrgencyNextDay, UrgencyScheduled:
		return true
	}
	return false
}
