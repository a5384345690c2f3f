package db

import (
	"context"
	"database/sql"
	"time"

	"article-desk/internal/observability/metrics"
)

// ReportStats publishes pool statistics to the db_connections_* gauges every
// interval until ctx is canceled. It reports once immediately.
func ReportStats(ctx context.Context, db *sql.DB, interval time.Duration) {
	report := func() {
		s := db.Stats()
		metrics.UpdateDBConnectionStats(s.InUse, s.Idle)
	}

	report()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report()
		}
	}
}
