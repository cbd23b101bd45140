package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the minimize endpoint.
type Metrics struct {
	requests    *prometheus.CounterVec
	evaluations *prometheus.HistogramVec
}

// NewMetrics creates and registers the server metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "scalr_minimize_requests_total",
			Help: "Minimize requests by method and outcome.",
		}, []string{"method", "outcome"}),
		evaluations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scalr_objective_evaluations",
			Help:    "Objective evaluations spent per completed run.",
			Buckets: prometheus.ExponentialBuckets(8, 2, 10),
		}, []string{"method"}),
	}
}

// observeRequest records the outcome of one minimize request.
func (m *Metrics) observeRequest(method, outcome string) {
	m.requests.WithLabelValues(method, outcome).Inc()
}

// observeRun records the evaluation count of one completed run.
func (m *Metrics) observeRun(method string, nfev int) {
	m.evaluations.WithLabelValues(method).Observe(float64(nfev))
}
