package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the server.
//
// It is also the funding.Observer of the analyzer, so that the memo hits and
// misses are exported.
type Metrics struct {
	registry *prometheus.Registry

	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	memoHits   *prometheus.CounterVec
	memoMisses *prometheus.CounterVec
	events     prometheus.Gauge
}

// NewMetrics creates the collectors in their own registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fnd_http_requests_total",
				Help: "Total number of HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),

		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fnd_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"route"},
		),

		memoHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fnd_memo_hits_total",
				Help: "Total number of profiles served from the memo",
			},
			[]string{"op"},
		),

		memoMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fnd_memo_misses_total",
				Help: "Total number of profiles computed",
			},
			[]string{"op"},
		),

		events: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "fnd_ledger_events",
				Help: "Number of events of the current ledger",
			},
		),
	}
	m.registry.MustRegister(m.requests, m.duration, m.memoHits, m.memoMisses, m.events)
	return m
}

// Hit counts a memo hit.
func (m *Metrics) Hit(op string) { m.memoHits.WithLabelValues(op).Inc() }

// Miss counts a memo miss.
func (m *Metrics) Miss(op string) { m.memoMisses.WithLabelValues(op).Inc() }

// Handler serves the metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
