package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultFound   = "found"
	resultDefault = "default"
)

var (
	// assessmentsTotal counts assessments by whether the selection was found
	assessmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triage_assessments_total",
		Help: "Total triage assessments by result",
	}, []string{"result"})
)
