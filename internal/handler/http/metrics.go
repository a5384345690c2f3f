package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"article-desk/internal/handler/http/responsewriter"
	"article-desk/internal/observability/metrics"
)

// unmatchedRoute labels requests no mux pattern matched.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request count, duration and response size per route.
//
// The path label is the mux pattern ("GET /articles/{id}"), which keeps label
// cardinality bounded. The mux sets the pattern on the request it receives, so
// this middleware must wrap the mux without any request-copying middleware in between.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.ActiveRequests.Inc()
		defer metrics.ActiveRequests.Dec()

		wrapped := responsewriter.Wrap(w)
		start := time.Now()
		next.ServeHTTP(wrapped, r)

		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		metrics.RecordHTTPRequest(r.Method, route, strconv.Itoa(wrapped.StatusCode()),
			time.Since(start), wrapped.BytesWritten())
	})
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
