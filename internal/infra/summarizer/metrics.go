package summarizer

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SummaryMetricsRecorder defines the interface for recording summarizer metrics.
// Tests inject a fake; production uses PrometheusSummaryMetrics.
type SummaryMetricsRecorder interface {
	// RecordSentences records the source sentence count and how many were kept.
	RecordSentences(source, selected int)

	// RecordShortCircuit counts documents returned whole because they were
	// already within the target sentence count.
	RecordShortCircuit()

	// RecordIterations records how many PageRank iterations a ranking took.
	RecordIterations(iterations int)

	// RecordDuration records the time taken to summarize one document.
	RecordDuration(duration time.Duration)
}

// PrometheusSummaryMetrics implements SummaryMetricsRecorder using Prometheus metrics.
type PrometheusSummaryMetrics struct {
	sourceSentences     prometheus.Histogram
	selectedSentences   prometheus.Histogram
	shortCircuitCounter prometheus.Counter
	iterationsHistogram prometheus.Histogram
	durationHistogram   prometheus.Histogram
}

var (
	prometheusMetricsInstance *PrometheusSummaryMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreateHistogram gets an existing histogram or creates a new one if it doesn't exist
func getOrCreateHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Histogram)
		}
		return promauto.NewHistogram(opts)
	}
	return h
}

// getOrCreateCounter gets an existing counter or creates a new one if it doesn't exist
func getOrCreateCounter(opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter)
		}
		return promauto.NewCounter(opts)
	}
	return c
}

// NewPrometheusSummaryMetrics returns the process-wide recorder, registering
// its collectors on first use.
func NewPrometheusSummaryMetrics() *PrometheusSummaryMetrics {
	prometheusMetricsOnce.Do(func() {
		sentenceBuckets := []float64{1, 2, 5, 10, 20, 50, 100, 250, 500, 1000}
		prometheusMetricsInstance = &PrometheusSummaryMetrics{
			sourceSentences: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "textrank_source_sentences",
				Help:    "Number of sentences in summarized documents",
				Buckets: sentenceBuckets,
			}),
			selectedSentences: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "textrank_selected_sentences",
				Help:    "Number of sentences kept in generated summaries",
				Buckets: sentenceBuckets,
			}),
			shortCircuitCounter: getOrCreateCounter(prometheus.CounterOpts{
				Name: "textrank_short_circuit_total",
				Help: "Documents returned whole because they did not exceed the target sentence count",
			}),
			iterationsHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "textrank_pagerank_iterations",
				Help:    "PageRank iterations until convergence or the iteration cap",
				Buckets: []float64{1, 5, 10, 20, 40, 60, 80, 100},
			}),
			durationHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "textrank_summarize_duration_seconds",
				Help:    "Time taken to segment, rank and select sentences for one document",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
			}),
		}
	})
	return prometheusMetricsInstance
}

// RecordSentences implements SummaryMetricsRecorder.RecordSentences
func (p *PrometheusSummaryMetrics) RecordSentences(source, selected int) {
	p.sourceSentences.Observe(float64(source))
	p.selectedSentences.Observe(float64(selected))
}

// RecordShortCircuit implements SummaryMetricsRecorder.RecordShortCircuit
func (p *PrometheusSummaryMetrics) RecordShortCircuit() {
	p.shortCircuitCounter.Inc()
}

// RecordIterations implements SummaryMetricsRecorder.RecordIterations
func (p *PrometheusSummaryMetrics) RecordIterations(iterations int) {
	p.iterationsHistogram.Observe(float64(iterations))
}

// RecordDuration implements SummaryMetricsRecorder.RecordDuration
func (p *PrometheusSummaryMetrics) RecordDuration(duration time.Duration) {
	p.durationHistogram.Observe(duration.Seconds())
}

type noopRecorder struct{}

func (noopRecorder) RecordSentences(int, int) {}
func (noopRecorder) RecordShortCircuit() {}
func (noopRecorder) RecordIterations(int) {}
func (noopRecorder) RecordDuration(time.Duration) {}
