package trellis

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains Prometheus metrics for dispatched requests. Route labels
// use the registered pattern string rather than the request path, which keeps
// their cardinality bounded by the number of routes.
type Metrics struct {
	dispatches    *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	handlerErrors *prometheus.CounterVec
}

// NewMetrics creates the router metrics and registers them with registerer.
// Passing nil creates unregistered metrics.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "trellis",
				Subsystem: "router",
				Name:      "dispatches_total",
				Help:      "Total number of dispatched requests by method and outcome",
			},
			[]string{"method", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "trellis",
				Subsystem: "router",
				Name:      "dispatch_duration_seconds",
				Help:      "Time spent matching and running handler chains",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		handlerErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "trellis",
				Subsystem: "router",
				Name:      "handler_errors_total",
				Help:      "Total number of handler chains that ended with an error",
			},
			[]string{"method", "route"},
		),
	}

	if registerer != nil {
		registerer.MustRegister(m.dispatches, m.duration, m.handlerErrors)
	}

	return m
}

func (m *Metrics) observe(method, route string, outcome Outcome, failed bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.dispatches.WithLabelValues(method, outcome.String()).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
	if failed {
		m.handlerErrors.WithLabelValues(method, route).Inc()
	}
}
