// Package metrics provides Prometheus metrics registry and recording utilities.
//
// All metrics are registered with the Prometheus default registry through promauto
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	start := time.Now()
//	err := repo.Create(ctx, art)
//	metrics.RecordDBQuery("insert_article", time.Since(start))
//	if err == nil {
//	    metrics.RecordArticleCreated(art.Status)
//	}
package metrics
