/*
	metrics package exposes Prometheus instrumentation for engine builds and
	queries.
*/

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Registry holds all metrics for the application.
type Registry struct {
	// Build Metrics
	BuildsTotal        *prometheus.CounterVec
	BuildDuration      prometheus.Histogram
	DocumentsTotal     prometheus.Gauge
	PageRankIterations prometheus.Gauge
	LastBuildTimestamp prometheus.Gauge

	// Query Metrics
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initBuildMetrics()
	r.initQueryMetrics()

	return r
}

func (r *Registry) initBuildMetrics() {
	r.BuildsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "urank_engine_builds_total",
			Help: "Total number of search engine builds",
		},
		[]string{"status"},
	)

	r.BuildDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "urank_engine_build_duration_seconds",
			Help:    "Search engine build duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0, 60.0},
		},
	)

	r.DocumentsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "urank_documents_total",
			Help: "Number of documents in the published search engine",
		},
	)

	r.PageRankIterations = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "urank_pagerank_iterations",
			Help: "Number of PageRank passes performed by the last successful build",
		},
	)

	r.LastBuildTimestamp = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "urank_last_build_timestamp_seconds",
			Help: "Unix time of the last successful build",
		},
	)
}

func (r *Registry) initQueryMetrics() {
	r.QueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "urank_queries_total",
			Help: "Total number of queries executed",
		},
		[]string{"query_type", "status"},
	)

	r.QueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "urank_query_duration_seconds",
			Help:    "Query execution duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"query_type"},
	)
}

// RecordBuild records a successful engine build.
func (r *Registry) RecordBuild(duration time.Duration, documents, iterations int, builtAt time.Time) {
	r.BuildsTotal.WithLabelValues(StatusSuccess).Inc()
	r.BuildDuration.Observe(duration.Seconds())
	r.DocumentsTotal.Set(float64(documents))
	r.PageRankIterations.Set(float64(iterations))
	r.LastBuildTimestamp.Set(float64(builtAt.Unix()))
}

// RecordBuildFailure records a failed engine build.
func (r *Registry) RecordBuildFailure(duration time.Duration) {
	r.BuildsTotal.WithLabelValues(StatusError).Inc()
	r.BuildDuration.Observe(duration.Seconds())
}

// RecordQuery records a query execution.
func (r *Registry) RecordQuery(queryType, status string, duration time.Duration) {
	r.QueriesTotal.WithLabelValues(queryType, status).Inc()
	r.QueryDuration.WithLabelValues(queryType).Observe(duration.Seconds())
}

// Handler returns an HTTP handler serving the registry in the Prometheus
// exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
