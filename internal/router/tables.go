package router

import (
	"emergency-triage/internal/knowledge"
	"emergency-triage/internal/model"
)

// DefaultCities is the built-in gazetteer. Order matters: the first city
// found in a message wins. Names that are also common English words
// (Bath, Reading) are left out on purpose.
var DefaultCities = []string{
	"London", "Manchester", "Birmingham", "Leeds", "Liverpool", "Glasgow", "Edinburgh",
	"Bristol", "Sheffield", "Newcastle", "Nottingham", "Leicester", "Cardiff", "Belfast",
	"Southampton", "Portsmouth", "Brighton", "Coventry", "Bradford", "Plymouth", "Derby",
	"Wolverhampton", "Stoke", "Sunderland", "Norwich", "Oxford", "Cambridge", "York",
	"Exeter", "Milton Keynes", "Aberdeen", "Swansea", "Hull",
}

// DefaultRoutePrefix is prepended to every navigation target.
const DefaultRoutePrefix = "/emergency"

// DefaultTables returns the built-in keyword configuration.
func DefaultTables() Tables {
	power := []string{"power", "electric", "socket", "fuse", "lights", "tripped", "wiring"}

	return Tables{
		Danger: []string{
			"fire", "flames", "smoke", "explosion", "attack", "break-in", "break in", "breaking in",
			"unconscious", "not breathing", "severe injury", "seriously injured",
		},
		Gas: []string{
			"gas", "rotten egg", "sulphur smell", "carbon monoxide", "co alarm", "co detector",
		},
		// A fishy smell is overheating electrics, never gas.
		GasSuppressors: []string{"fishy"},
		Rules: []Rule{
			{
				Name:   "burning-smell-with-power",
				Trade:  model.TradeElectrician,
				Groups: [][]string{{"burning smell", "smell of burning"}, power},
			},
			{
				Name:  "broken-glass-with-lock",
				Trade: model.TradeGlazier,
				Groups: [][]string{
					{"broken window", "smashed window", "window smashed", "window broken", "broken glass", "smashed glass", "glass broken", "cracked glass", "shattered"},
					{"lock", "door"},
				},
			},
			{
				Name:   "water-with-power",
				Trade:  model.TradePlumber,
				Groups: [][]string{{"water", "leak", "flood", "drip", "burst"}, power},
			},
		},
		Trades: map[model.Trade][]string{
			model.TradeGasEngineer: {
				"boiler", "central heating", "no heating", "pilot light",
			},
			model.TradeElectrician: {
				"electric", "power cut", "no power", "power", "socket", "fuse", "tripped", "trip switch",
				"wiring", "sparks", "sparking", "shock", "lights", "light switch", "consumer unit",
				"fishy", "burning smell", "outlet",
			},
			model.TradePlumber: {
				"leak", "burst", "pipe", "water", "flood", "tap", "toilet", "cistern", "stopcock",
				"radiator", "sink", "shower", "dripping",
			},
			model.TradeDrainSpecialist: {
				"drain", "blocked", "blockage", "sewage", "sewer", "manhole", "gully", "overflowing", "gurgling",
			},
			model.TradeGlazier: {
				"window", "glass", "pane", "glazing", "smashed", "shattered", "cracked",
			},
			model.TradeLocksmith: {
				"locked out", "lock", "key", "door",
			},
			model.TradeBreakdown: {
				"broken down", "breakdown", "my car", "the car", "car won't", "vehicle", "flat tyre",
				"flat tire", "flat battery", "motorway", "need a tow", "tow truck", "my van",
			},
		},
		Priority: append([]model.Trade(nil), model.TradePriority...),
		Knowledge: map[model.Trade]knowledge.Category{
			model.TradeElectrician:     knowledge.CategoryElectrical,
			model.TradePlumber:         knowledge.CategoryPlumbing,
			model.TradeDrainSpecialist: knowledge.CategoryDrainage,
			model.TradeLocksmith:       knowledge.CategoryLocksmith,
			model.TradeGlazier:         knowledge.CategoryGlazing,
			model.TradeBreakdown:       knowledge.CategoryVehicle,
		},
	}
}
