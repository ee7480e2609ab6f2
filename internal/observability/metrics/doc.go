// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size, rate limiting)
//   - Summarization metrics (outcomes, compression, quality, document size)
//   - URL content fetch metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	start := time.Now()
//	result, err := service.Summarize(ctx, req)
//	if err != nil {
//	    metrics.RecordSummaryFailure("plain", "fetch", time.Since(start))
//	}
package metrics
