package router

// Response texts.
const (
	DangerResponse = "⚠️ This sounds like a life-threatening emergency. Call 999 now and get everyone to a safe place. " +
		"Do not try to deal with it yourself. Once everyone is safe and the emergency services are on their way, " +
		"I can help you find a tradesperson."

	GasSafetyBlock = "GAS SAFETY FIRST:\n" +
		"- Open doors and windows.\n" +
		"- Do not use light switches, electrical appliances or naked flames.\n" +
		"- Turn off the gas at the meter if you can do so safely.\n" +
		"- Leave the property and call the National Gas Emergency line on 0800 111 999."

	RoutingTemplate  = "Connecting you with emergency %s services in %s now."
	LocationTemplate = "Which town or city are you in? I'll find a %s near you."
	TradeTemplate    = "Thanks, I've got your location as %s. What's the emergency? Describe what's happening and I'll find the right tradesperson."
	ClarifyPrompt    = "I'm here to help. Tell me what's happened, for example \"my pipe has burst\" or \"I'm locked out\", " +
		"and which town or city you're in."

	PartSep = "\n\n"
)

// Outcome summarises what a classification turn produced.
type Outcome string

const (
	OutcomeDanger       Outcome = "danger"
	OutcomeRouted       Outcome = "routed"
	OutcomeNeedLocation Outcome = "need_location"
	OutcomeNeedTrade    Outcome = "need_trade"
	OutcomeClarify      Outcome = "clarify"
)

// Match reasons reported in a Decision.
const (
	ReasonDanger  = "danger-keyword"
	ReasonGas     = "gas-keyword"
	ReasonKeyword = "trade-keyword"
	ReasonLocked  = "trade-locked"
)
