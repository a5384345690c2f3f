package metrics

import (
	"time"

	"article-desk/internal/domain/entity"
)

// Media lookup outcomes.
const (
	MediaOutcomeFound = "found"
	MediaOutcomeNone  = "none"
	MediaOutcomeError = "error"
)

// RecordArticleCreated records a stored article.
func RecordArticleCreated(status entity.Status) {
	ArticlesCreatedTotal.WithLabelValues(entity.StatusLabel(status)).Inc()
}

// RecordArticleUpdated records a successful update.
func RecordArticleUpdated() {
	ArticlesUpdatedTotal.Inc()
}

// RecordValidationFailures increments the failure counter once per rejected field.
func RecordValidationFailures(fields []string) {
	for _, f := range fields {
		ArticleValidationFailuresTotal.WithLabelValues(f).Inc()
	}
}

// RecordMediaLookup records the outcome of an attachment lookup.
func RecordMediaLookup(outcome string) {
	MediaLookupsTotal.WithLabelValues(outcome).Inc()
}

// SetMediaCircuitOpen mirrors the media circuit breaker state.
func SetMediaCircuitOpen(open bool) {
	if open {
		MediaCircuitOpen.Set(1)
		return
	}
	MediaCircuitOpen.Set(0)
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "get_article", "insert_article").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
