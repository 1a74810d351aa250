package datemath

import (
	"fmt"
	"time"
)

// Clock reads wall-clock time in a fixed time zone.
type Clock struct {
	location *time.Location
	now      func() time.Time
}

// NewClock creates a Clock for the given IANA timezone string,
// e.g. "Europe/London".
func NewClock(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Clock{location: loc, now: time.Now}, nil
}

// NewFixedClock returns a Clock that always reports t. Used by tests and
// by callers that want a reproducible quote.
func NewFixedClock(t time.Time) *Clock {
	return &Clock{location: t.Location(), now: func() time.Time { return t }}
}

// Now returns the current time in the clock's zone.
func (c *Clock) Now() time.Time {
	return c.now().In(c.location)
}

// Location returns the clock's zone.
func (c *Clock) Location() *time.Location {
	return c.location
}

// CurrentBand returns the band the clock is in right now.
func (c *Clock) CurrentBand() Band {
	return BandAt(c.Now())
}

// BandAt classifies t by its local hour. The night window wins over the
// shoulder window it sits inside.
func BandAt(t time.Time) Band {
	h := t.Hour()
	switch {
	case h >= NightStartHour || h < NightEndHour:
		return BandNight
	case h >= ShoulderStartHour || h < ShoulderEndHour:
		return BandShoulder
	default:
		return BandDay
	}
}
