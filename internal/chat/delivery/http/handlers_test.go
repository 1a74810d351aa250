package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"emergency-triage/internal/chat"
	chatHTTP "emergency-triage/internal/chat/delivery/http"
	"emergency-triage/internal/chat/repository/memory"
	"emergency-triage/internal/chat/usecase"
	"emergency-triage/internal/knowledge"
	"emergency-triage/internal/router"
	"emergency-triage/pkg/log"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type stateBody struct {
	Step          string `json:"step"`
	DetectedTrade string `json:"detected_trade"`
	DetectedCity  string `json:"detected_city"`
	History       []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"history"`
}

type turnBody struct {
	Reply struct {
		Content string `json:"content"`
		Action  string `json:"action"`
		Target  string `json:"target"`
	} `json:"reply"`
	Outcome string    `json:"outcome"`
	State   stateBody `json:"state"`
}

type sessionBody struct {
	Session struct {
		ID    string    `json:"id"`
		State stateBody `json:"state"`
	} `json:"session"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	repo := memory.New(100, time.Minute)
	uc := usecase.New(repo, router.NewDefault(knowledge.NewDefault()), l)

	r := gin.New()
	chatHTTP.RegisterRoutes(r.Group("/api/v1/chat"), chatHTTP.New(l, uc))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string, out any) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope %q: %v", w.Body.String(), err)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.NewDecoder(bytes.NewReader(env.Data)).Decode(out); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
	return w.Code, env
}

func TestSessionFlow(t *testing.T) {
	r := newTestRouter()

	var started sessionBody
	code, _ := do(t, r, http.MethodPost, "/api/v1/chat/sessions", "", &started)
	if code != http.StatusCreated {
		t.Fatalf("start status = %d, want 201", code)
	}
	id := started.Session.ID
	if id == "" {
		t.Fatal("empty session id")
	}
	if started.Session.State.Step != "INITIAL" {
		t.Errorf("step = %q, want INITIAL", started.Session.State.Step)
	}

	var turn turnBody
	code, _ = do(t, r, http.MethodPost, "/api/v1/chat/sessions/"+id+"/messages",
		`{"message":"I smell gas in Manchester"}`, &turn)
	if code != http.StatusOK {
		t.Fatalf("message status = %d, want 200", code)
	}
	if turn.Outcome != string(router.OutcomeRouted) {
		t.Errorf("outcome = %q, want routed", turn.Outcome)
	}
	if turn.Reply.Action != "navigate" || turn.Reply.Target != "/emergency/gas-engineer/manchester" {
		t.Errorf("reply = %+v", turn.Reply)
	}

	var got sessionBody
	code, _ = do(t, r, http.MethodGet, "/api/v1/chat/sessions/"+id, "", &got)
	if code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", code)
	}
	if len(got.Session.State.History) != 2 {
		t.Errorf("history = %d, want 2", len(got.Session.State.History))
	}

	code, _ = do(t, r, http.MethodDelete, "/api/v1/chat/sessions/"+id, "", nil)
	if code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", code)
	}

	code, env := do(t, r, http.MethodGet, "/api/v1/chat/sessions/"+id, "", nil)
	if code != http.StatusNotFound || env.ErrorCode != http.StatusNotFound {
		t.Errorf("get after delete = %d/%d, want 404", code, env.ErrorCode)
	}
}

func TestStartSessionWithCity(t *testing.T) {
	r := newTestRouter()

	var started sessionBody
	code, _ := do(t, r, http.MethodPost, "/api/v1/chat/sessions", `{"city":"leeds"}`, &started)
	if code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", code)
	}
	if started.Session.State.DetectedCity != "Leeds" || started.Session.State.Step != "TRADE_CHECK" {
		t.Errorf("state = %+v", started.Session.State)
	}

	code, _ = do(t, r, http.MethodPost, "/api/v1/chat/sessions", `{"city":"Atlantis"}`, nil)
	if code != http.StatusUnprocessableEntity {
		t.Errorf("unknown city status = %d, want 422", code)
	}
}

func TestSendMessageErrors(t *testing.T) {
	r := newTestRouter()

	var started sessionBody
	do(t, r, http.MethodPost, "/api/v1/chat/sessions", "", &started)
	path := "/api/v1/chat/sessions/" + started.Session.ID + "/messages"

	tooLong, _ := json.Marshal(map[string]string{"message": strings.Repeat("a", chat.MaxMessageRunes+1)})

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{"missing message", path, `{}`, http.StatusBadRequest},
		{"blank message", path, `{"message":"   "}`, http.StatusBadRequest},
		{"too long", path, string(tooLong), http.StatusRequestEntityTooLarge},
		{"unknown session", "/api/v1/chat/sessions/nope/messages", `{"message":"gas"}`, http.StatusNotFound},
		{"malformed json", path, `{"message":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := do(t, r, http.MethodPost, tt.path, tt.body, nil)
			if code != tt.want {
				t.Errorf("status = %d, want %d", code, tt.want)
			}
		})
	}
}

func TestClassifyHandler(t *testing.T) {
	r := newTestRouter()

	t.Run("threads caller state", func(t *testing.T) {
		var turn turnBody
		code, _ := do(t, r, http.MethodPost, "/api/v1/chat/classify",
			`{"message":"I'm in York","state":{"step":"LOCATION_CHECK","detected_trade":"locksmith"}}`, &turn)
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if turn.State.Step != "ROUTING" || turn.Reply.Target != "/emergency/locksmith/york" {
			t.Errorf("turn = %+v", turn)
		}
	})

	t.Run("fresh state", func(t *testing.T) {
		var turn turnBody
		code, _ := do(t, r, http.MethodPost, "/api/v1/chat/classify", `{"message":"hello"}`, &turn)
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if turn.Outcome != string(router.OutcomeClarify) || turn.Reply.Content != router.ClarifyPrompt {
			t.Errorf("turn = %+v", turn)
		}
	})

	t.Run("invalid state", func(t *testing.T) {
		for _, body := range []string{
			`{"message":"hi","state":{"step":"LIMBO"}}`,
			`{"message":"hi","state":{"detected_trade":"astronaut"}}`,
			`{"message":"hi","state":{"history":[{"role":"robot"}]}}`,
		} {
			code, _ := do(t, r, http.MethodPost, "/api/v1/chat/classify", body, nil)
			if code != http.StatusBadRequest {
				t.Errorf("%s: status = %d, want 400", body, code)
			}
		}
	})
}
