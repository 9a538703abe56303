package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	SearchesTotal      *prometheus.CounterVec
	TokenFailuresTotal prometheus.Counter
	UpstreamErrors     *prometheus.CounterVec

	UpstreamLatency     *prometheus.HistogramVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec
	Registry            *prometheus.Registry
}

// Create Prometheus collectors and register them
func NewMetrics(p *prometheus.Registry) *Metrics {
	m := &Metrics{
		SearchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_searches_total",
			Help: "Total number of search requests reaching the services",
		}, []string{"kind"},
		),
		TokenFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travel_token_failures_total",
			Help: "Failed token exchanges with the upstream provider",
		}),
		UpstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_upstream_errors_total",
			Help: "Errors returned by each upstream endpoint",
		}, []string{"endpoint"},
		),
		UpstreamLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "travel_upstream_latency_seconds",
				Help:    "Latency of calls to upstream endpoints",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		Registry: p,
	}

	// Register metrics with Prometheus
	p.MustRegister(
		m.SearchesTotal,
		m.TokenFailuresTotal,
		m.UpstreamErrors,
		m.UpstreamLatency,
		m.HTTPRequestDuration,
		m.HTTPRequestsTotal,
	)

	return m
}

func (m *Metrics) IncSearches(kind string) { m.SearchesTotal.WithLabelValues(kind).Inc() }

func (m *Metrics) IncTokenFailures() { m.TokenFailuresTotal.Inc() }

func (m *Metrics) IncUpstreamErrors(endpoint string) {
	m.UpstreamErrors.WithLabelValues(endpoint).Inc()
}

func (m *Metrics) ObserveUpstreamLatency(endpoint string, seconds float64) {
	m.UpstreamLatency.WithLabelValues(endpoint).Observe(seconds)
}

func (m *Metrics) ObserveHTTPRequestDuration(method string, path string, status string, seconds float64) {
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

func (m *Metrics) IncHTTPRequestsTotal(method string, path string, status string) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
