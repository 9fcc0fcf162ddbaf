// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mandoob"

var (
	NotificationsSimulated = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "notifications_simulated_total", Help: "Notifications received, by extraction outcome"},
		[]string{"app", "outcome"},
	)
	CombinationsGenerated = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "combinations_generated_total", Help: "Order combinations admitted by the combiner"})
	CombinationsAccepted  = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "combinations_accepted_total", Help: "Combination accept requests that succeeded"})
	EventsPublished       = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "events_published_total", Help: "Order events handed to the broker, by provider and result"},
		[]string{"provider", "result"},
	)
	PushesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "pushes_total", Help: "Device pushes attempted by the notifier"},
		[]string{"result"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Database statement latency, by result",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"result"},
	)
)

// Query results recorded on DBQueryDuration.
const (
	QueryOK    = "ok"
	QuerySlow  = "slow"
	QueryError = "error"
)

// Extraction outcomes recorded on NotificationsSimulated.
const (
	OutcomeExtracted = "extracted"
	OutcomeMissed    = "missed"
)
