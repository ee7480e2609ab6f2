// Package summarizer implements extractive summarization with TextRank:
// sentences become nodes of a lexical similarity graph, PageRank scores them,
// and the best-scoring ones are kept in reading order.
package summarizer

import (
	"context"
	"fmt"
	"time"

	"textdigest/internal/domain/entity"
	"textdigest/internal/utils/text"
)

// TextRank is a stateless extractive summarizer. It is safe for concurrent use.
type TextRank struct {
	cfg             Config
	metricsRecorder SummaryMetricsRecorder
}

// NewTextRank validates cfg and returns a summarizer. Metrics go to the
// process-wide Prometheus recorder.
func NewTextRank(cfg Config) (*TextRank, error) {
	return NewTextRankWithMetrics(cfg, NewPrometheusSummaryMetrics())
}

// NewTextRankWithMetrics is NewTextRank with an explicit metrics recorder.
func NewTextRankWithMetrics(cfg Config, recorder SummaryMetricsRecorder) (*TextRank, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid summarizer config: %w", err)
	}
	if cfg.Stopwords == nil {
		cfg.Stopwords = text.DefaultStopwords()
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &TextRank{cfg: cfg, metricsRecorder: recorder}, nil
}

// Summarize splits document into sentences and keeps
// max(1, round(N*(1-ratio))) of them. ratio is clamped into [0,1].
//
// Degenerate input is not an error: an empty document gives an empty
// summary, and a document with no more sentences than the target is
// returned whole without building the similarity graph. The only error is
// ctx being done before ranking finishes.
func (t *TextRank) Summarize(ctx context.Context, document string, ratio float64) (entity.Summary, error) {
	start := time.Now()

	script := text.Classify(document)
	sentences := text.Segment(document, script)
	target := entity.TargetSentenceCount(len(sentences), ratio)

	if len(sentences) <= target {
		summary := SelectTop(sentences, nil, target)
		t.record(summary, start, 0, true)
		return summary, nil
	}

	if err := ctx.Err(); err != nil {
		return entity.Summary{}, err
	}

	stem := t.cfg.Stemming && script == text.ScriptDefault
	tokens := tokenizeSentences(sentences, t.cfg.Stopwords, stem)
	matrix := BuildSimilarityMatrix(tokens, t.cfg.Stopwords)

	if err := ctx.Err(); err != nil {
		return entity.Summary{}, err
	}

	scores, iterations := Rank(matrix, RankOptions{
		Damping:       t.cfg.Damping,
		Tolerance:     t.cfg.Tolerance,
		MaxIterations: t.cfg.MaxIterations,
	})

	summary := SelectTop(sentences, scores, target)
	t.record(summary, start, iterations, false)
	return summary, nil
}

func (t *TextRank) record(summary entity.Summary, start time.Time, iterations int, shortCircuit bool) {
	t.metricsRecorder.RecordSentences(summary.SourceSentences, summary.Len())
	if shortCircuit {
		t.metricsRecorder.RecordShortCircuit()
	} else {
		t.metricsRecorder.RecordIterations(iterations)
	}
	t.metricsRecorder.RecordDuration(time.Since(start))
}
