package router

import (
	"emergency-triage/internal/knowledge"
	"emergency-triage/internal/model"
)

// Router classifies one conversation turn.
type Router interface {
	Classify(message string, state model.ConversationState) (model.ConversationState, model.ChatMessage)
}

// Retriever is the knowledge lookup the router enriches replies with.
type Retriever interface {
	Search(query string) (string, bool)
	CategoryTips(c knowledge.Category) (string, bool)
}

// Rule resolves an overlap between two trades' vocabularies. It fires
// when every group has at least one phrase present in the message.
type Rule struct {
	Name   string
	Trade  model.Trade
	Groups [][]string
}

// Tables is the read-only keyword configuration.
type Tables struct {
	Danger         []string
	Gas            []string
	GasSuppressors []string
	Rules          []Rule
	Trades         map[model.Trade][]string
	Priority       []model.Trade
	Knowledge      map[model.Trade]knowledge.Category
}

// Config holds everything New needs besides the retriever.
type Config struct {
	Tables      Tables
	Cities      []string
	RoutePrefix string
}

// Decision is the full result of classifying one turn.
type Decision struct {
	State   model.ConversationState
	Reply   model.ChatMessage
	Outcome Outcome
	Reason  string // which rule or keyword family fired, empty if none
	Trigger string // the keyword or rule name that fired
}
