package http

import (
	"time"

	"emergency-triage/internal/chat"
	"emergency-triage/internal/model"
)

// --- Request DTOs ---

type startSessionReq struct {
	City string `json:"city" binding:"max=100"`
}

func (r startSessionReq) validate() error { return nil }

func (r startSessionReq) toInput() chat.StartSessionInput {
	return chat.StartSessionInput{City: r.City}
}

// ---

type sendMessageReq struct {
	SessionID string `json:"-"` // populated from URI param
	Message   string `json:"message" binding:"required"`
}

func (r sendMessageReq) validate() error {
	if r.SessionID == "" {
		return errMissingID
	}
	return nil
}

func (r sendMessageReq) toInput() chat.SendMessageInput {
	return chat.SendMessageInput{
		SessionID: r.SessionID,
		Message:   r.Message,
	}
}

// ---

type messageReq struct {
	ID        string    `json:"id"`
	Role      string    `json:"role" binding:"omitempty,oneof=user assistant"`
	Content   string    `json:"content"`
	Action    string    `json:"action" binding:"omitempty,oneof=navigate"`
	Target    string    `json:"target"`
	CreatedAt time.Time `json:"created_at"`
}

type stateReq struct {
	Step          string       `json:"step"`
	DetectedTrade string       `json:"detected_trade"`
	DetectedCity  string       `json:"detected_city" binding:"max=100"`
	History       []messageReq `json:"history" binding:"omitempty,dive"`
}

type classifyReq struct {
	Message string   `json:"message" binding:"required"`
	State   stateReq `json:"state"`
}

func (r classifyReq) validate() error {
	if r.State.Step != "" && !model.Step(r.State.Step).Valid() {
		return errInvalidStep
	}
	if r.State.DetectedTrade != "" && !model.Trade(r.State.DetectedTrade).Valid() {
		return errInvalidTrade
	}
	return nil
}

func (r classifyReq) toInput() chat.ClassifyInput {
	state := model.NewConversationState()
	if r.State.Step != "" {
		state.Step = model.Step(r.State.Step)
	}
	state.DetectedTrade = model.Trade(r.State.DetectedTrade)
	state.DetectedCity = r.State.DetectedCity

	if len(r.State.History) > 0 {
		state.History = make([]model.ChatMessage, len(r.State.History))
		for i, m := range r.State.History {
			state.History[i] = model.ChatMessage{
				ID:        m.ID,
				Role:      model.Role(m.Role),
				Content:   m.Content,
				Action:    model.Action(m.Action),
				Target:    m.Target,
				CreatedAt: m.CreatedAt,
			}
		}
	}

	return chat.ClassifyInput{
		Message: r.Message,
		State:   state,
	}
}

// --- Response DTOs ---

type messageResp struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Action    string    `json:"action,omitempty"`
	Target    string    `json:"target,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newMessageResp(m model.ChatMessage) messageResp {
	return messageResp{
		ID:        m.ID,
		Role:      string(m.Role),
		Content:   m.Content,
		Action:    string(m.Action),
		Target:    m.Target,
		CreatedAt: m.CreatedAt,
	}
}

type stateResp struct {
	Step          string        `json:"step"`
	DetectedTrade string        `json:"detected_trade,omitempty"`
	DetectedCity  string        `json:"detected_city,omitempty"`
	History       []messageResp `json:"history"`
}

func newStateResp(s model.ConversationState) stateResp {
	history := make([]messageResp, len(s.History))
	for i, m := range s.History {
		history[i] = newMessageResp(m)
	}
	return stateResp{
		Step:          string(s.Step),
		DetectedTrade: string(s.DetectedTrade),
		DetectedCity:  s.DetectedCity,
		History:       history,
	}
}

type sessionResp struct {
	ID        string    `json:"id"`
	State     stateResp `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newSessionResp(s chat.Session) sessionResp {
	return sessionResp{
		ID:        s.ID,
		State:     newStateResp(s.State),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type startSessionResp struct {
	Session sessionResp `json:"session"`
}

func (h *handler) newStartSessionResp(out chat.StartSessionOutput) startSessionResp {
	return startSessionResp{Session: newSessionResp(out.Session)}
}

type sendMessageResp struct {
	Reply   messageResp `json:"reply"`
	Outcome string      `json:"outcome"`
	State   stateResp   `json:"state"`
}

func (h *handler) newSendMessageResp(out chat.SendMessageOutput) sendMessageResp {
	return sendMessageResp{
		Reply:   newMessageResp(out.Reply),
		Outcome: string(out.Outcome),
		State:   newStateResp(out.Session.State),
	}
}

type getSessionResp struct {
	Session sessionResp `json:"session"`
}

func (h *handler) newGetSessionResp(out chat.GetSessionOutput) getSessionResp {
	return getSessionResp{Session: newSessionResp(out.Session)}
}

type classifyResp struct {
	Reply   messageResp `json:"reply"`
	Outcome string      `json:"outcome"`
	State   stateResp   `json:"state"`
}

func (h *handler) newClassifyResp(out chat.ClassifyOutput) classifyResp {
	return classifyResp{
		Reply:   newMessageResp(out.Reply),
		Outcome: string(out.Outcome),
		State:   newStateResp(out.State),
	}
}
