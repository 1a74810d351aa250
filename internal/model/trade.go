package model

// Trade identifies a category of emergency tradesperson.
type Trade string

const (
	TradeGasEngineer     Trade = "gas-engineer"
	TradeElectrician     Trade = "electrician"
	TradePlumber         Trade = "plumber"
	TradeDrainSpecialist Trade = "drain-specialist"
	TradeGlazier         Trade = "glazier"
	TradeLocksmith       Trade = "locksmith"
	TradeBreakdown       Trade = "breakdown-recovery"
)

// TradePriority is the fixed order in which trades are evaluated.
// Earlier entries win when a message matches more than one trade.
var TradePriority = []Trade{
	TradeGasEngineer,
	TradeElectrician,
	TradePlumber,
	TradeDrainSpecialist,
	TradeGlazier,
	TradeLocksmith,
	TradeBreakdown,
}

var tradeLabels = map[Trade]string{
	TradeGasEngineer:     "Gas Engineer",
	TradeElectrician:     "Electrician",
	TradePlumber:         "Plumber",
	TradeDrainSpecialist: "Drain Specialist",
	TradeGlazier:         "Glazier",
	TradeLocksmith:       "Locksmith",
	TradeBreakdown:       "Breakdown Recovery",
}

// Label returns the human readable name of the trade.
func (t Trade) Label() string {
	if l, ok := tradeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Valid reports whether t is a known trade.
func (t Trade) Valid() bool {
	_, ok := tradeLabels[t]
	return ok
}

func (t Trade) String() string {
	return string(t)
}
