package router

import (
	"fmt"
	"strings"

	"emergency-triage/internal/model"
)

// Classify runs one conversation turn and returns the new state with the
// assistant's reply. It never fails.
func (r *KeywordRouter) Classify(message string, state model.ConversationState) (model.ConversationState, model.ChatMessage) {
	d := r.Decide(message, state)
	return d.State, d.Reply
}

// Decide is Classify with the reasoning attached.
func (r *KeywordRouter) Decide(message string, state model.ConversationState) Decision {
	msg := strings.ToLower(message)
	userMsg := r.newMessage(model.RoleUser, message, model.ActionNone, "")

	// Life safety beats every other rule and leaves the slots untouched.
	if kw, ok := firstContained(msg, r.tables.Danger); ok {
		reply := r.newMessage(model.RoleAssistant, DangerResponse, model.ActionNone, "")
		return Decision{
			State:   state.Append(userMsg, reply),
			Reply:   reply,
			Outcome: OutcomeDanger,
			Reason:  ReasonDanger,
			Trigger: kw,
		}
	}

	next := state
	var reason, trigger string
	if next.DetectedTrade == "" {
		if trade, why, kw, ok := r.detectTrade(msg); ok {
			next = next.WithTrade(trade)
			reason, trigger = why, kw
		}
	} else {
		reason = ReasonLocked
	}
	if next.DetectedCity == "" {
		if c, ok := r.detectCity(msg); ok {
			next = next.WithCity(c)
		}
	}

	advice := r.enrich(message, next.DetectedTrade)
	next = next.Advance()

	reply, outcome := r.compose(next, advice)
	return Decision{
		State:   next.Append(userMsg, reply),
		Reply:   reply,
		Outcome: outcome,
		Reason:  reason,
		Trigger: trigger,
	}
}

// MatchCity returns the canonical gazetteer name equal to name, ignoring
// case and surrounding space.
func (r *KeywordRouter) MatchCity(name string) (string, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, c := range r.cities {
		if c.lower == n {
			return c.name, true
		}
	}
	return "", false
}

// Cities lists the gazetteer in match order.
func (r *KeywordRouter) Cities() []string {
	out := make([]string, len(r.cities))
	for i, c := range r.cities {
		out[i] = c.name
	}
	return out
}

// Target builds the navigation route for a trade and city.
func (r *KeywordRouter) Target(trade model.Trade, city string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(city)), "-")
	return r.routePrefix + "/" + string(trade) + "/" + slug
}

// detectTrade applies gas detection, then the disambiguation rules, then
// the per-trade scan in priority order.
func (r *KeywordRouter) detectTrade(msg string) (model.Trade, string, string, bool) {
	_, suppressed := firstContained(msg, r.tables.GasSuppressors)

	if !suppressed {
		if kw, ok := firstContained(msg, r.tables.Gas); ok {
			return model.TradeGasEngineer, ReasonGas, kw, true
		}
	}

	for _, rule := range r.tables.Rules {
		if rule.matches(msg) {
			return rule.Trade, rule.Name, rule.Name, true
		}
	}

	for _, t := range r.tables.Priority {
		if t == model.TradeGasEngineer && suppressed {
			continue
		}
		if kw, ok := firstContained(msg, r.tables.Trades[t]); ok {
			return t, ReasonKeyword, kw, true
		}
	}
	return "", "", "", false
}

func (r *KeywordRouter) detectCity(msg string) (string, bool) {
	for _, c := range r.cities {
		if strings.Contains(msg, c.lower) {
			return c.name, true
		}
	}
	return "", false
}

// enrich returns safety advice for the message. Gas has its own fixed
// block, so it gets none here.
func (r *KeywordRouter) enrich(message string, trade model.Trade) string {
	if r.kb == nil || trade == model.TradeGasEngineer {
		return ""
	}
	if text, ok := r.kb.Search(message); ok {
		return text
	}
	if trade == "" {
		return ""
	}
	if cat, ok := r.tables.Knowledge[trade]; ok {
		if tips, ok := r.kb.CategoryTips(cat); ok {
			return tips
		}
	}
	return ""
}

func (r *KeywordRouter) compose(state model.ConversationState, advice string) (model.ChatMessage, Outcome) {
	trade := state.DetectedTrade

	prefix := advice
	if trade == model.TradeGasEngineer {
		prefix = GasSafetyBlock
	}

	switch state.Step {
	case model.StepRouting:
		body := fmt.Sprintf(RoutingTemplate, trade.Label(), state.DetectedCity)
		return r.newMessage(model.RoleAssistant, join(prefix, body), model.ActionNavigate, r.Target(trade, state.DetectedCity)),
			OutcomeRouted
	case model.StepLocationCheck:
		body := fmt.Sprintf(LocationTemplate, strings.ToLower(trade.Label()))
		return r.newMessage(model.RoleAssistant, join(prefix, body), model.ActionNone, ""), OutcomeNeedLocation
	case model.StepTradeCheck:
		return r.newMessage(model.RoleAssistant, fmt.Sprintf(TradeTemplate, state.DetectedCity), model.ActionNone, ""),
			OutcomeNeedTrade
	default:
		text := advice
		if text == "" {
			text = ClarifyPrompt
		}
		return r.newMessage(model.RoleAssistant, text, model.ActionNone, ""), OutcomeClarify
	}
}

func (r *KeywordRouter) newMessage(role model.Role, content string, action model.Action, target string) model.ChatMessage {
	return model.ChatMessage{
		ID:        r.newID(),
		Role:      role,
		Content:   content,
		Action:    action,
		Target:    target,
		CreatedAt: r.now(),
	}
}

func (rule Rule) matches(msg string) bool {
	if len(rule.Groups) == 0 {
		return false
	}
	for _, g := range rule.Groups {
		if _, ok := firstContained(msg, g); !ok {
			return false
		}
	}
	return true
}

// firstContained returns the first keyword that is a substring of msg.
func firstContained(msg string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return kw, true
		}
	}
	return "", false
}

func join(prefix, body string) string {
	if prefix == "" {
		return body
	}
	return prefix + PartSep + body
}
