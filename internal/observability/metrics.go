package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "nws_client"

// Metrics holds the Prometheus collectors for API requests, caching, and
// collection runs.
type Metrics struct {
	Requests        *prometheus.CounterVec   // labels: endpoint, status
	RequestDuration *prometheus.HistogramVec // labels: endpoint
	Cache           *prometheus.CounterVec   // labels: result={hit,miss}
	GeocodeCache    *prometheus.CounterVec   // labels: result={hit,miss}

	RecordsNormalized *prometheus.CounterVec // labels: kind
	CollectRuns       *prometheus.CounterVec // labels: outcome={success,partial,failure}
	CollectDuration   prometheus.Histogram
	SinkErrors        *prometheus.CounterVec // labels: sink
	CollectRunning    prometheus.Gauge
}

func newMetrics() *Metrics {
	return &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "NWS API requests by endpoint and HTTP status.",
		}, []string{"endpoint", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "NWS API request duration in seconds, cache hits included.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		Cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_total",
			Help:      "Response cache lookups by result.",
		}, []string{"result"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_cache_total",
			Help:      "Census geocoder cache lookups by result.",
		}, []string{"result"}),
		RecordsNormalized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_normalized_total",
			Help:      "Records produced by normalizers, by dataset.",
		}, []string{"kind"}),
		CollectRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collect_runs_total",
			Help:      "Completed collection runs by outcome.",
		}, []string{"outcome"}),
		CollectDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "collect_duration_seconds",
			Help:      "Duration of a full collection run.",
			Buckets:   []float64{1, 5, 10, 30, 60, 120, 300},
		}),
		SinkErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sink_errors_total",
			Help:      "Dataset load failures by sink.",
		}, []string{"sink"}),
		CollectRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "collect_running",
			Help:      "1 while a collection run is in progress.",
		}),
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Requests,
		m.RequestDuration,
		m.Cache,
		m.GeocodeCache,
		m.RecordsNormalized,
		m.CollectRuns,
		m.CollectDuration,
		m.SinkErrors,
		m.CollectRunning,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as many
// as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
