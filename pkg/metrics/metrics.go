package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Auth metrics
var (
	// AuthEventsTotal counts signup/login/logout/authenticate calls by outcome
	AuthEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resumeboost_auth_events_total",
			Help: "Authentication events by event and outcome",
		},
		[]string{"event", "outcome"},
	)

	// ActiveSessions reports the number of live bearer tokens
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "resumeboost_active_sessions",
			Help: "Number of active bearer tokens in the session store",
		},
	)
)

// Job and resume metrics
var (
	// JobApplicationsTotal counts apply calls; persisted is "true" when an
	// application row was written for an authenticated caller
	JobApplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resumeboost_job_applications_total",
			Help: "Job applications acknowledged, by whether they were persisted",
		},
		[]string{"persisted"},
	)

	ResumeAnalysesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "resumeboost_resume_analyses_total",
			Help: "Resume uploads scored",
		},
	)
)

// Outcome labels shared by AuthEventsTotal.
const (
	OutcomeSuccess  = "success"
	OutcomeConflict = "conflict"
	OutcomeDenied   = "denied"
	OutcomeError    = "error"
)
