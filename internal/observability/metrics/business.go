package metrics

import "time"

// RecordSummary records a successful summarize operation.
func RecordSummary(script, layout string, duration time.Duration, compressionRatio, qualityScore float64) {
	SummariesTotal.WithLabelValues(script, layout).Inc()
	SummarizationDuration.Observe(duration.Seconds())
	SummaryCompressionRatio.Observe(compressionRatio)
	SummaryQualityScore.Observe(qualityScore)
}

// RecordSummaryFailure records a summarize operation that returned an error.
// Reason is a short error class such as "input", "fetch" or "timeout".
func RecordSummaryFailure(layout, reason string, duration time.Duration) {
	SummaryFailuresTotal.WithLabelValues(layout, reason).Inc()
	SummarizationDuration.Observe(duration.Seconds())
}

// RecordDocumentSize records the size of a submitted document in runes.
func RecordDocumentSize(runes int) {
	DocumentSizeRunes.Observe(float64(runes))
}

// RecordFormat records a re-format operation.
func RecordFormat(layout string) {
	FormatsTotal.WithLabelValues(layout).Inc()
}

// RecordBatch records the size of a batch request.
func RecordBatch(size int) {
	BatchSize.Observe(float64(size))
}

// RecordContentFetchSuccess records a successful content fetch operation.
// This tracks both the duration and size of fetched content.
//
// Example:
//
//	start := time.Now()
//	content, err := fetcher.FetchContent(ctx, url)
//	if err == nil {
//	    RecordContentFetchSuccess(time.Since(start), len(content))
//	}
func RecordContentFetchSuccess(duration time.Duration, size int) {
	ContentFetchAttemptsTotal.WithLabelValues("success").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
	ContentFetchSize.Observe(float64(size))
}

// RecordContentFetchFailed records a failed content fetch operation.
func RecordContentFetchFailed(duration time.Duration) {
	ContentFetchAttemptsTotal.WithLabelValues("failure").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
}

// RecordRateLimited records a request rejected by the rate limiter.
func RecordRateLimited() {
	RateLimitedTotal.Inc()
}

// RecordCircuitState records the current state of a named circuit breaker.
func RecordCircuitState(circuit string, state int) {
	CircuitBreakerState.WithLabelValues(circuit).Set(float64(state))
}
