package triage

import "emergency-triage/internal/model"

// DefaultCatalog returns the built-in trade and problem catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		BaseCost: map[model.Trade]float64{
			model.TradeGasEngineer:     110,
			model.TradeElectrician:     95,
			model.TradePlumber:         85,
			model.TradeDrainSpecialist: 100,
			model.TradeGlazier:         90,
			model.TradeLocksmith:       80,
			model.TradeBreakdown:       120,
		},
		Trades: []TradeEntry{
			{
				ID:   model.TradePlumber,
				Name: model.TradePlumber.Label(),
				Problems: []Problem{
					{ID: "burst-pipe", Name: "Burst pipe", UrgencyHint: model.UrgencyEmergency, CostMultiplier: 1.4},
					{ID: "major-leak", Name: "Major leak", UrgencyHint: model.UrgencyEmergency, CostMultiplier: 1.3},
					{ID: "no-hot-water", Name: "No hot water", UrgencyHint: model.UrgencySameDay, CostMultiplier: 1.1},
					{ID: "blocked-toilet", Name: "Blocked toilet", UrgencyHint: model.UrgencySameDay, CostMultiplier: 1.0},
					{ID: "dripping-tap", Name: "Dripping tap", UrgencyHint: model.UrgencyScheduled, CostMultiplier: 0.6},
				},
			},
			{
				ID:   model.TradeElectrician,
				Name: model.TradeElectrician.Label(),
				Problems: []Problem{
					{ID: "sparking-socket", Name: "Sparking or burning socket", UrgencyHint: model.UrgencyEmergency, CostMultiplier: 1.4},
					{ID: "power-cut", Name: "Total power loss", UrgencyHint: model.UrgencyEmergency, CostMultiplier: 1.3},
					{ID: "tripping-circuit", Name: "Circuit keeps tripping", UrgencyHint: model.UrgencySameDay, CostMultiplier: 1.0},
					{ID: "light-fault", Name: "Faulty light or switch", UrgencyHint: model.UrgencyNextDay, CostMultiplier: 0.7},
				},
			},
			{
				ID:   model.TradeGasEngineer,
				Name: model.TradeGasEngineer.Label(),
				Problems: []Problem{
					{ID: "gas-leak", Name: "Suspected gas leak", UrgencyHint: model.UrgencyEmergency, CostMultiplier: 1.5},
					{ID: "boiler-breakdown", Name: "Boiler breakdown", UrgencyHint: model.UrgencySameDay, CostMultiplier: 1.2},
					{ID: "no-heating", Name: "No heating", UrgencyHint: model.UrgencySameDay, CostMultiplier: 1.1},
					{ID: "boiler-service", Name: "Boiler service", UrgencyHint: model.UrgencyScheduled, CostMultiplier: 0.8},
				},
			},
			{
				ID:   model.TradeDrainSpecialist,
				Name: model.TradeDrainSpecialist.Label(),
				Problems: []Problem{
					{ID: "sewage-backup", Name: "Sewage backing up", UrgencyHint: model.UrgencyEmergency, CostMultiplier: 1.5},
					{ID: "blocked-drain", Name: "Blocked drain", UrgencyHint: model.UrgencySameDay, CostMultiplier: 1.0},
					{ID: "slow-drain", Name: "Slow draining sink or bath", UrgencyHint: model.UrgencyNextDay, CostMultiplier: 0.7},
				},
			},
			{
				ID:   model.TradeGlazier,
				Name: model.TradeGlazier.Label(),
				Problems: []Problem{
					{ID: "smashed-window", Name: "Smashed window", UrgencyHint: model.UrgencyEmergency, CostMultiplier: 1.3},
					{ID: "cracked-pane", Name: "Cracked pane", UrgencyHint: model.UrgencyNextDay, CostMultiplier: 0.9},
					{ID: "misted-unit", Name: "Misted double glazing", UrgencyHint: model.UrgencyScheduled, CostMultiplier: 0.7},
				},
			},
			{
				ID:   model.TradeLocksmith,
				Name: model.TradeLocksmith.Label(),
				Problems: []Problem{
					{ID: "locked-out", Name: "Locked out", UrgencyHint: model.UrgencyEmergency, CostMultiplier: 1.0},
					{ID: "broken-lock", Name: "Broken lock", UrgencyHint: model.UrgencySameDay, CostMultiplier: 1.2},
					{ID: "lock-change", Name: "Lock change", UrgencyHint: model.UrgencyScheduled, CostMultiplier: 0.9},
				},
			},
			{
				ID:   model.TradeBreakdown,
				Name: model.TradeBreakdown.Label(),
				Problems: []Problem{
					{ID: "motorway-breakdown", Name: "Breakdown on a motorway", UrgencyHint: model.UrgencyEmergency, CostMultiplier: 1.5},
					{ID: "flat-battery", Name: "Flat battery", UrgencyHint: model.UrgencySameDay, CostMultiplier: 0.8},
					{ID: "flat-tyre", Name: "Flat tyre", UrgencyHint: model.UrgencySameDay, CostMultiplier: 0.9},
					{ID: "tow-to-garage", Name: "Tow to garage", UrgencyHint: model.UrgencyNextDay, CostMultiplier: 1.2},
				},
			},
		},
	}
}
