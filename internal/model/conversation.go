package model

// ConversationState is owned by the caller and threaded through every
// classification call. Methods return modified copies; the receiver is
// never changed.
type ConversationState struct {
	Step          Step          `json:"step"`
	DetectedTrade Trade         `json:"detected_trade,omitempty"`
	DetectedCity  string        `json:"detected_city,omitempty"`
	History       []ChatMessage `json:"history"`
}

// NewConversationState returns the state a fresh conversation starts in.
func NewConversationState() ConversationState {
	return ConversationState{Step: StepInitial}
}

// Slots reports which set-once slots are filled.
func (s ConversationState) Slots() Slots {
	return Slots{Trade: s.DetectedTrade != "", City: s.DetectedCity != ""}
}

// WithTrade fills the trade slot if it is still empty.
func (s ConversationState) WithTrade(t Trade) ConversationState {
	if s.DetectedTrade == "" {
		s.DetectedTrade = t
	}
	return s
}

// WithCity fills the city slot if it is still empty.
func (s ConversationState) WithCity(city string) ConversationState {
	if s.DetectedCity == "" {
		s.DetectedCity = city
	}
	return s
}

// Advance moves the step forward according to the filled slots.
func (s ConversationState) Advance() ConversationState {
	s.Step = s.Step.Next(s.Slots())
	return s
}

// Append returns a copy of s with msgs added to the end of its history.
func (s ConversationState) Append(msgs ...ChatMessage) ConversationState {
	history := make([]ChatMessage, 0, len(s.History)+len(msgs))
	history = append(history, s.History...)
	history = append(history, msgs...)
	s.History = history
	return s
}
