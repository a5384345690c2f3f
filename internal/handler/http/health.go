// Package http provides the HTTP server plumbing of the article service:
// middleware, health and readiness probes, and the metrics endpoint.
// Article routes live in the article subpackage.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"article-desk/internal/handler/http/respond"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// CircuitReporter exposes the state of an outbound circuit breaker.
type CircuitReporter interface {
	CircuitState() string
}

// HealthHandler reports database connectivity and pool statistics.
// The media circuit state is informational: an open circuit only degrades
// attachment lookups and never makes the service unhealthy.
type HealthHandler struct {
	DB      *sql.DB
	Version string
	Media   CircuitReporter // optional
}

// ServeHTTP returns 200 when the database answers and 503 otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]CheckStatus{"database": h.checkDatabase(ctx)}
	if h.Media != nil {
		checks["media"] = checkCircuit(h.Media.CircuitState())
	}

	status, code := statusHealthy, http.StatusOK
	if checks["database"].Status == statusUnhealthy {
		status, code = statusUnhealthy, http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if h.DB == nil {
		return CheckStatus{Status: statusUnhealthy, Message: "not configured"}
	}
	if err := h.DB.PingContext(ctx); err != nil {
		slog.Default().Warn("health: database ping failed", slog.String("error", respond.SanitizeError(err)))
		return CheckStatus{Status: statusUnhealthy, Message: "database unreachable"}
	}

	stats := h.DB.Stats()
	details := map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}
	if stats.MaxOpenConnections > 0 {
		utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
		details["utilization_percent"] = utilization
		if utilization >= 80 {
			return CheckStatus{Status: statusDegraded, Message: "connection pool utilization above 80%", Details: details}
		}
	}
	return CheckStatus{Status: statusHealthy, Details: details}
}

func checkCircuit(state string) CheckStatus {
	if state == "closed" {
		return CheckStatus{Status: statusHealthy, Details: map[string]any{"circuit_breaker": state}}
	}
	return CheckStatus{
		Status:  statusDegraded,
		Message: "attachment lookups are short-circuited",
		Details: map[string]any{"circuit_breaker": state},
	}
}

// ReadyHandler answers readiness probes: 200 once the database accepts queries.
type ReadyHandler struct {
	DB *sql.DB
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB == nil || h.DB.PingContext(ctx) != nil {
		http.Error(w, "not ready", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ready"))
}

// LiveHandler answers liveness probes and always returns 200.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("alive"))
}
