package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the Prometheus collectors of the HTTP delivery
type Metrics struct {
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	intents        *prometheus.CounterVec
	moodFallbacks  prometheus.Counter
	suggestions    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advisor_requests_total",
				Help: "Total number of requests to the shopping advisor",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "advisor_request_duration_seconds",
				Help:    "Duration of shopping advisor requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		// Summary metric for percentile calculation (p50, p90, p95, p99)
		requestSummary: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "advisor_request_duration_summary",
				Help: "Summary of request durations with percentiles (client-side quantiles)",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.01,
					0.99: 0.001,
				},
				MaxAge: 10 * time.Minute,
			},
			[]string{"method", "endpoint"},
		),
		intents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advisor_intents_total",
				Help: "Chat messages by classified intent",
			},
			[]string{"intent"},
		),
		moodFallbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "advisor_mood_fallbacks_total",
				Help: "Mood requests answered from the budget fallback",
			},
		),
		suggestions: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "advisor_suggestions_returned",
				Help:    "Number of products referenced per reply",
				Buckets: []float64{0, 1, 2, 3, 4, 5},
			},
			[]string{"flow"},
		),
	}

	reg.MustRegister(
		m.requestCounter,
		m.requestLatency,
		m.requestSummary,
		m.intents,
		m.moodFallbacks,
		m.suggestions,
	)
	return m
}
