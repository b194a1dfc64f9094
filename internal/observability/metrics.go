package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "rotalivre"

// Metrics holds the Prometheus collectors for the API and its upstream providers.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec // labels: route, status

	// Upstream provider metrics.
	ProviderCalls    *prometheus.CounterVec   // labels: provider, outcome={live,fallback}
	ProviderDuration *prometheus.HistogramVec // labels: provider

	SearchCache      *prometheus.CounterVec // labels: result={hit,miss}
	WeatherCache     *prometheus.CounterVec // labels: result={hit,miss}
	ReportsSubmitted *prometheus.CounterVec // labels: mode={stored,demo}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.HTTPRequests,
		m.ProviderCalls,
		m.ProviderDuration,
		m.SearchCache,
		m.WeatherCache,
		m.ReportsSubmitted,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by matched route and status code.",
		}, []string{"route", "status"}),
		ProviderCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "Upstream provider calls by provider and whether live or fallback data was served.",
		}, []string{"provider", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_duration_seconds",
			Help:      "Upstream provider call duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"provider"}),
		SearchCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_cache_total",
			Help:      "Place search cache lookups by result.",
		}, []string{"result"}),
		WeatherCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_cache_total",
			Help:      "Weather cache lookups by result.",
		}, []string{"result"}),
		ReportsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_submitted_total",
			Help:      "Community weather reports accepted, by storage mode.",
		}, []string{"mode"}),
	}
}
