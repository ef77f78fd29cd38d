package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CandidateRegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "candidate_registrations_total",
			Help: "Total number of candidate registration attempts.",
		},
		[]string{"outcome"},
	)

	CandidateMutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "candidate_mutations_total",
			Help: "Total number of dashboard status changes and deletions.",
		},
		[]string{"action", "outcome"},
	)
)

// Registration outcomes
const (
	OutcomeAccepted  = "accepted"
	OutcomeRejected  = "rejected"
	OutcomeDuplicate = "duplicate"
	OutcomeError     = "error"
	OutcomeSuccess   = "success"
	OutcomeNotFound  = "not_found"
)

var registerOnce sync.Once

// MustRegister adds every collector to reg once per process.
func MustRegister(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDurationSeconds,
			CandidateRegistrationsTotal,
			CandidateMutationsTotal,
		)
	})
}
