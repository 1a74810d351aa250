package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"emergency-triage/internal/knowledge"
	knowledgeHTTP "emergency-triage/internal/knowledge/delivery/http"
	"emergency-triage/internal/knowledge/usecase"
	"emergency-triage/pkg/log"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	r := gin.New()
	h := knowledgeHTTP.New(l, usecase.New(knowledge.NewDefault(), l))
	knowledgeHTTP.RegisterRoutes(r.Group("/api/v1/knowledge"), h)
	return r
}

func TestSearchHandler(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantFound  bool
	}{
		{name: "match", body: `{"query":"Why is my boiler pressure dropping?"}`, wantStatus: http.StatusOK, wantFound: true},
		{name: "no match", body: `{"query":"xyzzy"}`, wantStatus: http.StatusOK},
		{name: "missing query", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "blank query", body: `{"query":"   "}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/knowledge/search", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp struct {
				Data struct {
					Found    bool   `json:"found"`
					Category string `json:"category"`
					Text     string `json:"text"`
				} `json:"data"`
			}
			if err := json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Data.Found != tt.wantFound {
				t.Errorf("found = %v, want %v", resp.Data.Found, tt.wantFound)
			}
			if tt.wantFound && !strings.Contains(resp.Data.Text, "Q: Why is my boiler pressure dropping?") {
				t.Errorf("text missing Q&A: %q", resp.Data.Text)
			}
		})
	}
}

func TestListCategoriesHandler(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/knowledge/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"CORE_PROTOCOL"`) {
		t.Errorf("body missing CORE_PROTOCOL: %s", w.Body.String())
	}
}
