// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestSize measures HTTP request body size in bytes
	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPResponseSize measures HTTP response body size in bytes
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// ActiveConnections tracks the number of active HTTP connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	// RateLimitedTotal counts requests rejected by the per-client rate limiter
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// Business metrics track summarization results
var (
	// SummariesTotal counts successful summarize operations by script and layout
	SummariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summaries_total",
			Help: "Total number of successful summarize operations",
		},
		[]string{"script", "layout"},
	)

	// SummaryFailuresTotal counts failed summarize operations by layout and reason
	SummaryFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summary_failures_total",
			Help: "Total number of failed summarize operations",
		},
		[]string{"layout", "reason"},
	)

	// SummarizationDuration measures the end-to-end time of one summarize operation
	SummarizationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summarization_duration_seconds",
			Help:    "Time taken to acquire, summarize, score and format one document",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
		},
	)

	// SummaryCompressionRatio tracks the achieved word-level compression
	SummaryCompressionRatio = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_compression_ratio",
			Help:    "Achieved compression ratio (fraction of words removed)",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	// SummaryQualityScore tracks the unigram-recall quality score
	SummaryQualityScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_quality_score",
			Help:    "Share of the document's distinct words retained by the summary",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	// DocumentSizeRunes measures submitted document size in characters
	DocumentSizeRunes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "document_size_runes",
			Help:    "Size of summarized documents in Unicode characters",
			Buckets: prometheus.ExponentialBuckets(100, 4, 8),
		},
	)

	// FormatsTotal counts re-format operations by layout
	FormatsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summary_formats_total",
			Help: "Total number of summary re-format operations",
		},
		[]string{"layout"},
	)

	// BatchSize measures the number of documents per batch request
	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_batch_size",
			Help:    "Number of documents per batch summarize request",
			Buckets: []float64{1, 2, 5, 10, 20},
		},
	)

	// ContentFetchAttemptsTotal counts URL content fetch attempts by result
	ContentFetchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_fetch_attempts_total",
			Help: "Total number of content fetch attempts",
		},
		[]string{"result"}, // result: success, failure
	)

	// ContentFetchDuration measures time to fetch document content from a URL
	ContentFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "content_fetch_duration_seconds",
			Help:    "Time taken to fetch document content",
			Buckets: []float64{0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 6.4, 12.8},
		},
	)

	// ContentFetchSize measures fetched content size
	ContentFetchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "content_fetch_size_bytes",
			Help: "Fetched document content size in bytes",
			Buckets: []float64{
				100, 400, 1600, 6400, 25600, 102400, 409600,
				1638400, 6553600, 10485760, // up to 10MB
			},
		},
	)

	// CircuitBreakerState reports breaker state per circuit (0=closed, 1=half-open, 2=open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"circuit"},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration, requestSize, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())

	if requestSize > 0 {
		HTTPRequestSize.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}
