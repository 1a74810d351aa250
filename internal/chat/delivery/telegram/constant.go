package telegram

const (
	sessionPrefix = "tg-"

	cmdStart = "/start"
	cmdReset = "/reset"
	cmdHelp  = "/help"

	welcomeText = "Hi, I'm the emergency triage assistant. Tell me what's happened and where you are, " +
		"for example \"my pipe has burst in Leeds\".\n\nIf anyone is in danger, call 999 first."
	helpText = "Describe the problem in your own words and tell me your town or city. " +
		"I'll share safety advice and connect you with the right tradesperson.\n\n/reset starts a new conversation."
	failureText = "Sorry, something went wrong. Please try again, or call 999 if anyone is in danger."
	linkText    = "Open: %s"
)
