package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Business metrics
	OptimizationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "twin_optimizations_total",
			Help: "Total number of optimization runs",
		},
		[]string{"service", "status"},
	)

	OptimizationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "twin_optimization_duration_seconds",
			Help:    "Full optimization run duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	ProfilesLearnedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "twin_profiles_learned_total",
			Help: "Total number of behavioral profiles built",
		},
		[]string{"service"},
	)

	LowConfidenceProfilesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "twin_low_confidence_profiles_total",
			Help: "Profiles built from insufficient history",
		},
		[]string{"service"},
	)

	ActivityEventsIngestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "twin_activity_events_ingested_total",
			Help: "Trip-completed events consumed into the activity store",
		},
		[]string{"service", "status"},
	)

	// Database metrics
	DatabaseQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "database_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"service", "operation", "status"},
	)

	DatabaseQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "database_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)
)

// RecordHTTPMetrics records counters and latency for one finished request.
func RecordHTTPMetrics(service, method, path string, status int, duration time.Duration) {
	statusStr := strconv.Itoa(status)
	HttpRequestsTotal.WithLabelValues(service, method, path, statusStr).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, statusStr).Observe(duration.Seconds())
}

// RecordDatabaseQuery records one database operation outcome.
func RecordDatabaseQuery(service, operation string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	DatabaseQueriesTotal.WithLabelValues(service, operation, status).Inc()
	DatabaseQueryDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}
