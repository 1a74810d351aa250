package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/goleak"

	"emergency-triage/internal/chat"
	"emergency-triage/internal/model"
	"emergency-triage/internal/router"
	pkgTelegram "emergency-triage/pkg/telegram"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type sent struct {
	chatID int64
	text   string
}

type mockSender struct {
	sent []sent
}

func (m *mockSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	m.sent = append(m.sent, sent{chatID, text})
	return nil
}

// mockUseCase keeps sessions in a map and answers with a canned reply.
type mockUseCase struct {
	sessions map[string]bool
	started  []string
	ended    []string
	reply    model.ChatMessage
	sendErr  error
}

func newMockUseCase() *mockUseCase {
	return &mockUseCase{
		sessions: map[string]bool{},
		reply:    model.ChatMessage{Role: model.RoleAssistant, Content: "Which town or city are you in?"},
	}
}

func (m *mockUseCase) Classify(ctx context.Context, input chat.ClassifyInput) (chat.ClassifyOutput, error) {
	return chat.ClassifyOutput{}, nil
}

func (m *mockUseCase) StartSession(ctx context.Context, input chat.StartSessionInput) (chat.StartSessionOutput, error) {
	m.started = append(m.started, input.ID)
	m.sessions[input.ID] = true
	return chat.StartSessionOutput{Session: chat.Session{ID: input.ID}}, nil
}

func (m *mockUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	if m.sendErr != nil {
		return chat.SendMessageOutput{}, m.sendErr
	}
	if !m.sessions[input.SessionID] {
		return chat.SendMessageOutput{}, chat.ErrSessionNotFound
	}
	return chat.SendMessageOutput{Reply: m.reply, Outcome: router.OutcomeNeedLocation}, nil
}

func (m *mockUseCase) GetSession(ctx context.Context, id string) (chat.GetSessionOutput, error) {
	return chat.GetSessionOutput{}, nil
}

func (m *mockUseCase) EndSession(ctx context.Context, id string) error {
	if !m.sessions[id] {
		return chat.ErrSessionNotFound
	}
	m.ended = append(m.ended, id)
	delete(m.sessions, id)
	return nil
}

func post(t *testing.T, h Handler, secret string, update pkgTelegram.Update) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body, _ := json.Marshal(update)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if secret != "" {
		c.Request.Header.Set(pkgTelegram.SecretHeader, secret)
	}

	h.HandleWebhook(c)
	return w
}

func textUpdate(chatID int64, text string) pkgTelegram.Update {
	return pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 10,
			Chat:      &pkgTelegram.Chat{ID: chatID, Type: "private"},
			Text:      text,
		},
	}
}

func TestHandleWebhook(t *testing.T) {
	// Replies are sent inline, never from a background goroutine.
	defer goleak.VerifyNone(t)

	t.Run("first message opens a session", func(t *testing.T) {
		uc, bot := newMockUseCase(), &mockSender{}
		h := New(&mockLogger{}, uc, bot, "")

		w := post(t, h, "", textUpdate(42, "my pipe has burst"))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if len(uc.started) != 1 || uc.started[0] != "tg-42" {
			t.Errorf("started = %v, want [tg-42]", uc.started)
		}
		if len(bot.sent) != 1 || bot.sent[0].chatID != 42 || bot.sent[0].text != uc.reply.Content {
			t.Errorf("sent = %+v", bot.sent)
		}
	})

	t.Run("navigation reply carries the link", func(t *testing.T) {
		uc, bot := newMockUseCase(), &mockSender{}
		uc.sessions["tg-7"] = true
		uc.reply = model.ChatMessage{
			Role:    model.RoleAssistant,
			Content: "Connecting you with emergency Plumber services in Leeds now.",
			Action:  model.ActionNavigate,
			Target:  "/emergency/plumber/leeds",
		}
		h := New(&mockLogger{}, uc, bot, "")

		post(t, h, "", textUpdate(7, "I'm in Leeds"))

		if len(uc.started) != 0 {
			t.Errorf("existing session should be reused, started = %v", uc.started)
		}
		if len(bot.sent) != 1 || !strings.HasSuffix(bot.sent[0].text, "Open: /emergency/plumber/leeds") {
			t.Errorf("sent = %+v", bot.sent)
		}
	})

	t.Run("start command resets the conversation", func(t *testing.T) {
		uc, bot := newMockUseCase(), &mockSender{}
		uc.sessions["tg-5"] = true
		h := New(&mockLogger{}, uc, bot, "")

		post(t, h, "", textUpdate(5, "/start@TriageBot"))

		if len(uc.ended) != 1 || len(uc.started) != 1 {
			t.Errorf("ended = %v, started = %v", uc.ended, uc.started)
		}
		if len(bot.sent) != 1 || bot.sent[0].text != welcomeText {
			t.Errorf("sent = %+v", bot.sent)
		}
	})

	t.Run("use case failure notifies the user", func(t *testing.T) {
		uc, bot := newMockUseCase(), &mockSender{}
		uc.sendErr = errors.New("redis down")
		h := New(&mockLogger{}, uc, bot, "")

		w := post(t, h, "", textUpdate(9, "help"))

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
		if len(bot.sent) != 1 || bot.sent[0].text != failureText {
			t.Errorf("sent = %+v", bot.sent)
		}
	})

	t.Run("non-message update is ignored", func(t *testing.T) {
		uc, bot := newMockUseCase(), &mockSender{}
		h := New(&mockLogger{}, uc, bot, "")

		w := post(t, h, "", pkgTelegram.Update{UpdateID: 3})

		if w.Code != http.StatusOK || len(bot.sent) != 0 {
			t.Errorf("status = %d, sent = %+v", w.Code, bot.sent)
		}
	})

	t.Run("secret token", func(t *testing.T) {
		uc, bot := newMockUseCase(), &mockSender{}
		h := New(&mockLogger{}, uc, bot, "s3cret")

		if w := post(t, h, "wrong", textUpdate(1, "hi")); w.Code != http.StatusUnauthorized {
			t.Errorf("wrong secret: status = %d, want 401", w.Code)
		}
		if w := post(t, h, "s3cret", textUpdate(1, "hi")); w.Code != http.StatusOK {
			t.Errorf("right secret: status = %d, want 200", w.Code)
		}
	})
}

func TestCommand(t *testing.T) {
	tests := map[string]string{
		"/start":              "/start",
		"/START@TriageBot":    "/start",
		"/reset now":          "/reset",
		"my pipe /has burst":  "",
		"/help@bot with args": "/help",
	}
	for in, want := range tests {
		if got := command(in); got != want {
			t.Errorf("command(%q) = %q, want %q", in, got, want)
		}
	}
}
