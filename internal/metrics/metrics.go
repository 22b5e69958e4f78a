// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for registration and login counters.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeConflict     = "conflict"
	OutcomeRejected     = "rejected"
	OutcomeError        = "error"
)

var (
	// Registrations counts registration attempts by outcome.
	Registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gameshelf_registrations_total",
		Help: "Total number of registration attempts",
	}, []string{"outcome"})

	// Logins counts login attempts by outcome.
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gameshelf_logins_total",
		Help: "Total number of login attempts",
	}, []string{"outcome"})

	PasswordRehashes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gameshelf_password_rehashes_total",
		Help: "Total number of stored password digests upgraded on login",
	})

	SessionsSwept = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gameshelf_sessions_swept_total",
		Help: "Total number of expired sessions removed by the sweeper",
	})

	// HTTPRequestDuration tracks request latency by chi route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gameshelf_http_request_duration_seconds",
		Help:    "Histogram of HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
