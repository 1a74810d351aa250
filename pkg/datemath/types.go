package datemath

// Band is a named slice of the day used for out-of-hours pricing.
type Band string

const (
	// BandNight covers 22:00 up to 06:00.
	BandNight Band = "night"
	// BandShoulder covers 18:00 up to 22:00 and 06:00 up to 08:00.
	BandShoulder Band = "shoulder"
	// BandDay is every other hour.
	BandDay Band = "day"
)

// Band boundaries, as hours on a 24h clock.
const (
	NightStartHour    = 22
	NightEndHour      = 6
	ShoulderStartHour = 18
	ShoulderEndHour   = 8
)
