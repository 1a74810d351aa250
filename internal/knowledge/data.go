package knowledge

// DefaultEntries returns the built-in knowledge table. Do not reorder it:
// ties between categories are broken by position.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Category: CategoryElectrical,
			Triggers: []string{
				"electric", "power", "socket", "fuse", "tripped", "trip switch", "wiring",
				"spark", "shock", "lights", "consumer unit", "fishy", "burning smell", "outlet",
			},
			Tips: []string{
				"Do not touch exposed wires, sockets or switches that are hot, sparking or discoloured.",
				"If it is safe to reach, switch off the mains at the consumer unit (fuse box).",
				"A fishy or burning smell near a socket often means overheating plastic - unplug appliances nearby.",
				"Keep water well away from any electrical fault and never use a wet appliance.",
			},
			QA: []QA{
				{
					Question: "Why does my trip switch keep going off?",
					Answer:   "A tripping RCD usually means a faulty appliance or moisture in a circuit. Unplug everything, reset the switch, then plug items back in one at a time to find the culprit.",
				},
				{
					Question: "What does a fishy smell from a socket mean?",
					Answer:   "Overheating electrical components and melting plastic often smell fishy. Switch off the circuit at the consumer unit and get an electrician to inspect the wiring.",
				},
				{
					Question: "Half my house has no power, what should I check?",
					Answer:   "Check the consumer unit for a tripped breaker and ask neighbours whether they have power. If it is a local power cut, contact your network operator on 105.",
				},
				{
					Question: "Is a buzzing light switch dangerous?",
					Answer:   "Buzzing or crackling usually points to a loose connection that can overheat. Stop using the switch and have it checked.",
				},
			},
		},
		{
			Category: CategoryPlumbing,
			Triggers: []string{
				"leak", "pipe", "water", "boiler", "pressure", "tap", "flood", "burst",
				"stopcock", "radiator", "toilet", "cistern", "drip",
			},
			Tips: []string{
				"Turn off the water at the stopcock, usually under the kitchen sink.",
				"Switch off electrics near the leak if water is reaching sockets or light fittings.",
				"Open cold taps to drain the system and catch drips with buckets and towels.",
				"Move valuables and electrical items away from the affected area.",
			},
			QA: []QA{
				{
					Question: "Why is my boiler pressure dropping?",
					Answer:   "Falling boiler pressure usually means a leak in the heating system or a faulty pressure relief valve. Check radiators and pipework for drips, then top up the pressure using the filling loop.",
				},
				{
					Question: "How do I repressurise my boiler?",
					Answer:   "Open the filling loop slowly until the pressure gauge reads between 1 and 1.5 bar, then close it fully. If the pressure keeps dropping, call a heating engineer.",
				},
				{
					Question: "What should I do about a burst pipe?",
					Answer:   "Turn off the stopcock straight away, switch off the boiler and open the taps to drain the water. Wrap the pipe in a towel until a plumber arrives.",
				},
				{
					Question: "My toilet will not stop running, is it an emergency?",
					Answer:   "A running cistern wastes water but is rarely an emergency. Turn off the isolation valve on the supply pipe and book a plumber.",
				},
			},
		},
		{
			Category: CategoryDrainage,
			Triggers: []string{
				"drain", "blocked", "blockage", "sewage", "sewer", "manhole", "gully",
				"overflowing", "gurgling", "backing up",
			},
			Tips: []string{
				"Stop running water into the blocked drain, including sinks, showers and toilets.",
				"Do not lift manhole covers or attempt to enter a drain.",
				"Wear gloves and keep children and pets away from any sewage.",
				"Avoid chemical drain cleaners on a full blockage - they can splash back.",
			},
			QA: []QA{
				{
					Question: "Who is responsible for a blocked drain?",
					Answer:   "You are usually responsible for drains inside your property boundary. Shared or public sewers are the responsibility of the local water company.",
				},
				{
					Question: "Why is sewage coming up through my shower?",
					Answer:   "Sewage backing up through the lowest outlet means a blockage further down the line. Stop using water and call a drain specialist.",
				},
				{
					Question: "What causes gurgling drains?",
					Answer:   "Gurgling is trapped air forced past a partial blockage. It is an early sign that the drain needs clearing.",
				},
			},
		},
		{
			Category: CategoryLocksmith,
			Triggers: []string{
				"lock", "key", "locked out", "door", "snapped", "jammed", "lost my keys",
			},
			Tips: []string{
				"Check for any other unlocked doors or windows before calling out a locksmith.",
				"Do not force the door - it can damage the frame and cost more to repair.",
				"Ask the locksmith for ID and a price before any work begins.",
				"If a child or vulnerable person is locked inside, call 999.",
			},
			QA: []QA{
				{
					Question: "My key snapped in the lock, what now?",
					Answer:   "Do not try to push the broken piece further in. A locksmith can extract it and usually cut a new key on site.",
				},
				{
					Question: "Will a locksmith need to drill my lock?",
					Answer:   "Most locked-out callouts can be opened without damage. Drilling is a last resort for high security or faulty locks.",
				},
				{
					Question: "Should I change the locks after losing my keys?",
					Answer:   "If the keys were lost with anything showing your address, change the locks as soon as possible.",
				},
			},
		},
		{
			Category: CategoryGlazing,
			Triggers: []string{
				"window", "glass", "pane", "glazing", "smashed", "shattered", "cracked",
			},
			Tips: []string{
				"Keep everyone, especially children and pets, away from broken glass.",
				"Wear thick gloves and shoes if you must move large pieces.",
				"Cover the opening with board or heavy plastic to keep the property secure.",
				"Photograph the damage for your insurer before it is cleared.",
			},
			QA: []QA{
				{
					Question: "Can a cracked window wait until tomorrow?",
					Answer:   "A small crack can usually be taped and left for a booked visit. A shattered or unsecured window needs boarding up the same day.",
				},
				{
					Question: "Is a broken window covered by insurance?",
					Answer:   "Most buildings policies cover accidental or malicious damage to glass. Check your excess before claiming.",
				},
			},
		},
		{
			Category: CategoryVehicle,
			Triggers: []string{
				"vehicle", "my car", "the car", "car won't", "breakdown", "broken down",
				"tyre", "tire", "flat battery", "motorway", "tow", "engine",
			},
			Tips: []string{
				"Pull over somewhere safe and switch on your hazard lights.",
				"On a motorway, leave the vehicle by the nearside doors and wait behind the barrier.",
				"Do not attempt repairs on the hard shoulder.",
				"Keep your phone charged and note your location using marker posts or junction numbers.",
			},
			QA: []QA{
				{
					Question: "What should I do if my car breaks down on the motorway?",
					Answer:   "Move onto the hard shoulder or an emergency area, get everyone out on the side away from traffic and stand behind the barrier before calling for recovery.",
				},
				{
					Question: "Can I drive on a flat tyre to a garage?",
					Answer:   "Driving on a flat tyre can damage the wheel and is unsafe at speed. Fit the spare or wait for recovery.",
				},
				{
					Question: "My engine warning light came on, should I stop?",
					Answer:   "A red warning light means stop as soon as it is safe. An amber light usually means get the vehicle checked soon.",
				},
			},
		},
		{
			Category: CategoryCoreProtocol,
			Triggers: []string{
				"emergency", "urgent", "help", "safe", "danger", "what should i do", "what do i do", "panic",
			},
			Tips: []string{
				"If anyone is in immediate danger, call 999 first.",
				"Get everyone to a safe place before dealing with the problem.",
				"Only shut off gas, water or electricity if you can do so safely.",
				"Note what happened and when - it helps the tradesperson and your insurer.",
			},
			QA: []QA{
				{
					Question: "When should I call 999 instead of a tradesperson?",
					Answer:   "Call 999 for fire, smoke, injuries, anyone unconscious or not breathing, or a crime in progress. Tradespeople deal with the property once everyone is safe.",
				},
				{
					Question: "How do I know if something is a genuine emergency?",
					Answer:   "It is an emergency if there is a risk to people, the property cannot be secured, or damage is getting worse by the minute.",
				},
			},
		},
	}
}
