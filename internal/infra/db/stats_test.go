package db

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-desk/internal/observability/metrics"
)

func TestReportStats_StopsOnCancel(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	metrics.DBConnectionsActive.Set(42)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ReportStats(ctx, db, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.DBConnectionsActive) == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ReportStats did not return after cancel")
	}
}
