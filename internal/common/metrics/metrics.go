package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RetrievalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retrieval_requests_total",
			Help: "Total number of retrieveDocs invocations by outcome",
		},
		[]string{"outcome"},
	)

	RetrievalAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retrieval_attempts_total",
			Help: "Total number of upstream call attempts by outcome",
		},
		[]string{"outcome"},
	)

	RetrievalFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retrieval_failures_total",
			Help: "Total number of invocations failed by error code",
		},
		[]string{"error_code"},
	)

	RetrievalDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "retrieval_duration_seconds",
			Help: "Duration of retrieveDocs invocations in seconds",
		},
		[]string{"outcome"},
	)
)
