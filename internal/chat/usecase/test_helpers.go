package usecase

import (
	"context"
	"fmt"
	"time"

	"emergency-triage/internal/chat"
	"emergency-triage/internal/chat/repository"
	"emergency-triage/internal/knowledge"
	"emergency-triage/internal/router"
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

// Mock session repository for testing
type mockRepo struct {
	sessions map[string]chat.Session
	saveErr  error
	getErr   error
	saves    int
}

func newMockRepo() *mockRepo {
	return &mockRepo{sessions: map[string]chat.Session{}}
}

func (m *mockRepo) GetSession(ctx context.Context, id string) (chat.Session, error) {
	if m.getErr != nil {
		return chat.Session{}, m.getErr
	}
	s, ok := m.sessions[id]
	if !ok {
		return chat.Session{}, repository.ErrNotFound
	}
	return s, nil
}

func (m *mockRepo) SaveSession(ctx context.Context, s chat.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.sessions[s.ID] = s
	return nil
}

func (m *mockRepo) DeleteSession(ctx context.Context, id string) error {
	if _, ok := m.sessions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

var testNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

// newTestUseCase wires the default keyword router to an in-memory mock
// repository with deterministic session IDs.
func newTestUseCase() (*implUseCase, *mockRepo) {
	repo := newMockRepo()
	uc := New(repo, router.NewDefault(knowledge.NewDefault()), &mockLogger{})

	n := 0
	uc.newID = func() string { n++; return fmt.Sprintf("session-%d", n) }
	uc.now = func() time.Time { return testNow }
	return uc, repo
}
