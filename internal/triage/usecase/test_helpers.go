package usecase

import (
	"context"
	"time"

	"emergency-triage/internal/triage"
	"emergency-triage/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct {
	warnings int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     { m.warnings++ }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   { m.warnings++ }
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// newTestUseCase builds a use case whose clock is frozen at midday.
func newTestUseCase() (*implUseCase, *mockLogger) {
	l := &mockLogger{}
	clock := datemath.NewFixedClock(time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC))
	return New(triage.NewEstimator(triage.DefaultCatalog(), clock), l), l
}
