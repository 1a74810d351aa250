package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// classificationsTotal counts classified turns by outcome
	classificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triage_classifications_total",
		Help: "Total classified chat turns by outcome",
	}, []string{"outcome"})

	// sessionsStartedTotal counts sessions created
	sessionsStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "triage_sessions_started_total",
		Help: "Total chat sessions started",
	})
)
