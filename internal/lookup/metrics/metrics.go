package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the lookup pipeline.
type Metrics struct {
	// Upstream fetch latencies by source
	FetchLatency *prometheus.HistogramVec

	// Upstream fetch outcomes by source and result tag (ok, degraded, unavailable)
	FetchOutcome *prometheus.CounterVec

	// Breaker transitions by source and new state
	BreakerTransitions *prometheus.CounterVec

	// Lookup outcomes by verdict status or failure kind
	LookupOutcome *prometheus.CounterVec

	// Lookups that joined an identical in-flight lookup
	SharedLookups prometheus.Counter

	// End-to-end lookup latency
	LookupLatency prometheus.Histogram
}

// New registers the lookup metrics with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		FetchLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lookout_upstream_fetch_duration_seconds",
			Help:    "Duration of upstream fetches by source",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8},
		}, []string{"source"}),

		FetchOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lookout_upstream_fetch_outcomes_total",
			Help: "Upstream fetch outcomes by source and result tag",
		}, []string{"source", "result"}),

		BreakerTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lookout_upstream_breaker_transitions_total",
			Help: "Circuit breaker state transitions by source",
		}, []string{"source", "state"}),

		LookupOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lookout_lookup_outcomes_total",
			Help: "Lookup outcomes by verdict status or failure kind",
		}, []string{"outcome"}),

		SharedLookups: factory.NewCounter(prometheus.CounterOpts{
			Name: "lookout_lookup_shared_total",
			Help: "Lookups served by joining an identical in-flight lookup",
		}),

		LookupLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lookout_lookup_duration_seconds",
			Help:    "Duration of a full lookup including resolution and aggregation",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
		}),
	}
}

// ObserveFetch records one upstream fetch.
func (m *Metrics) ObserveFetch(source, result string, d time.Duration) {
	if m != nil {
		m.FetchLatency.WithLabelValues(source).Observe(d.Seconds())
		m.FetchOutcome.WithLabelValues(source, result).Inc()
	}
}

// IncrementBreakerTransition records a breaker opening or closing.
func (m *Metrics) IncrementBreakerTransition(source, state string) {
	if m != nil {
		m.BreakerTransitions.WithLabelValues(source, state).Inc()
	}
}

// IncrementLookupOutcome records how a lookup ended.
func (m *Metrics) IncrementLookupOutcome(outcome string) {
	if m != nil {
		m.LookupOutcome.WithLabelValues(outcome).Inc()
	}
}

// IncrementShared records a lookup that shared an in-flight execution.
func (m *Metrics) IncrementShared() {
	if m != nil {
		m.SharedLookups.Inc()
	}
}

// ObserveLookupLatency records the total lookup duration.
func (m *Metrics) ObserveLookupLatency(d time.Duration) {
	if m != nil {
		m.LookupLatency.Observe(d.Seconds())
	}
}
