package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// namespace prefixes every metric name (article_desk_http_requests_total, ...).
const namespace = "article_desk"

// HTTP metrics are labelled by the matched route pattern, never the raw path,
// so article ids do not multiply the series.
var (
	// HTTPRequestsTotal counts total HTTP requests by method, route, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// HTTPResponseSize measures HTTP response body size in bytes
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_response_size_bytes",
			Help:      "HTTP response size in bytes",
			Buckets:   prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "route"},
	)

	// ActiveRequests tracks the number of in-flight HTTP requests
	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_active_requests",
			Help:      "Number of in-flight HTTP requests",
		},
	)
)

// Business metrics track article operations
var (
	// ArticlesCreatedTotal counts stored articles by status label
	ArticlesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_created_total",
			Help:      "Total number of articles created",
		},
		[]string{"status"},
	)

	// ArticlesUpdatedTotal counts successful article updates
	ArticlesUpdatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_updated_total",
			Help:      "Total number of articles updated",
		},
	)

	// ArticleValidationFailuresTotal counts rejected fields
	ArticleValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "article_validation_failures_total",
			Help:      "Total number of article field validation failures",
		},
		[]string{"field"},
	)

	// MediaLookupsTotal counts attachment lookups by outcome
	MediaLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "media_lookups_total",
			Help:      "Total number of media attachment lookups",
		},
		[]string{"outcome"}, // outcome: found, none, error
	)

	// MediaCircuitOpen is 1 while the media client circuit breaker is open
	MediaCircuitOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "media_circuit_open",
			Help:      "Whether the media lookup circuit breaker is open (1) or not (0)",
		},
	)
)

// Database metrics track database performance
var (
	// DBQueryDuration measures database query duration
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// DBConnectionsActive tracks in-use database connections
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_connections_active",
			Help:      "Number of active database connections",
		},
	)

	// DBConnectionsIdle tracks idle database connections
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_connections_idle",
			Help:      "Number of idle database connections",
		},
	)
)

// RecordHTTPRequest records one finished request under its route pattern.
func RecordHTTPRequest(method, route, status string, duration time.Duration, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())

	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, route).Observe(float64(responseSize))
	}
}
