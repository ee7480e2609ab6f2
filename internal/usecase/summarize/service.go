package summarize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"textdigest/internal/domain/entity"
	"textdigest/internal/observability/logging"
	"textdigest/internal/observability/metrics"
	"textdigest/internal/observability/tracing"
	"textdigest/internal/usecase/fetch"
	"textdigest/internal/utils/text"
)

// Summarizer selects the most representative sentences of a document.
type Summarizer interface {
	Summarize(ctx context.Context, document string, ratio float64) (entity.Summary, error)
}

// Config holds the request defaults and limits of the Service.
type Config struct {
	DefaultCompressionRatio float64
	DefaultLayout           entity.Layout
	MaxDocumentRunes        int
	BatchParallelism        int
	// Timeout bounds one Summarize call including URL fetching; zero disables it.
	Timeout time.Duration
}

// DefaultConfig returns the defaults used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		DefaultCompressionRatio: 0.5,
		DefaultLayout:           entity.LayoutPlain,
		MaxDocumentRunes:        200000,
		BatchParallelism:        4,
		Timeout:                 30 * time.Second,
	}
}

// Request is one summarization job. Exactly one of Text and URL is set.
type Request struct {
	Text string
	URL  string
	// CompressionRatio is the fraction of the text to remove. Nil selects the
	// configured default; out-of-range values are clamped.
	CompressionRatio *float64
	// Layout is a layout selector; unknown values mean plain.
	Layout string
}

// Result is a generated summary with its rendering and metrics.
type Result struct {
	Summary          string
	FormattedSummary string
	Layout           entity.Layout
	Script           text.Script
	CompressionRatio float64
	SentenceIndices  []int
	Metrics          entity.Metrics
}

// BatchItem is the outcome of one request of a batch. Exactly one of Result
// and Err is set.
type BatchItem struct {
	Index  int
	Result *Result
	Err    error
}

// Service provides the summarize, batch and re-format use cases.
type Service struct {
	Summarizer     Summarizer
	ContentFetcher fetch.ContentFetcher // nil disables URL requests
	cfg            Config
}

// NewService creates a Service. contentFetcher may be nil.
func NewService(summarizer Summarizer, contentFetcher fetch.ContentFetcher, cfg Config) *Service {
	if cfg.BatchParallelism < 1 {
		cfg.BatchParallelism = 1
	}
	if !cfg.DefaultLayout.IsValid() {
		cfg.DefaultLayout = entity.LayoutPlain
	}
	return &Service{
		Summarizer:     summarizer,
		ContentFetcher: contentFetcher,
		cfg:            cfg,
	}
}

// Summarize acquires the document, summarizes it, scores the summary and
// renders it in the requested layout.
//
// Errors:
//   - entity.ErrInvalidInput: neither or both of Text and URL set, or a malformed URL
//   - entity.ErrDocumentTooLarge: the document exceeds MaxDocumentRunes
//   - ErrSourceFetchDisabled, ErrSourceFetchFailed (wrapping a fetch error): URL acquisition failed
//   - context errors when ctx ends first
func (s *Service) Summarize(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	layout := s.layoutFor(req.Layout)

	ctx, span := tracing.StartSpan(ctx, "summarize.Summarize",
		attribute.String("summary.layout", layout.String()),
		attribute.Bool("summary.from_url", req.URL != ""),
	)
	defer span.End()

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	result, err := s.summarize(ctx, req, layout)
	if err != nil {
		tracing.RecordError(span, err)
		metrics.RecordSummaryFailure(layout.String(), failureReason(err), time.Since(start))
		return nil, err
	}

	span.SetAttributes(
		attribute.String("summary.script", result.Script.String()),
		attribute.Int("summary.source_sentences", result.Metrics.OriginalSentenceCount),
		attribute.Int("summary.selected_sentences", len(result.SentenceIndices)),
	)
	metrics.RecordSummary(result.Script.String(), layout.String(), time.Since(start),
		result.Metrics.CompressionRatio, result.Metrics.QualityScore)

	logging.FromContext(ctx).Debug("summary generated",
		slog.String("script", result.Script.String()),
		slog.String("layout", layout.String()),
		slog.Int("source_sentences", result.Metrics.OriginalSentenceCount),
		slog.Int("selected_sentences", len(result.SentenceIndices)),
		slog.Float64("compression_ratio", result.Metrics.CompressionRatio),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}

func (s *Service) summarize(ctx context.Context, req Request, layout entity.Layout) (*Result, error) {
	document, err := s.acquire(ctx, req)
	if err != nil {
		return nil, err
	}

	runes := text.CountRunes(document)
	metrics.RecordDocumentSize(runes)
	if s.cfg.MaxDocumentRunes > 0 && runes > s.cfg.MaxDocumentRunes {
		return nil, fmt.Errorf("%w: %d characters exceeds limit of %d",
			entity.ErrDocumentTooLarge, runes, s.cfg.MaxDocumentRunes)
	}

	ratio := s.ratioFor(req.CompressionRatio)
	summary, err := s.Summarizer.Summarize(ctx, document, ratio)
	if err != nil {
		return nil, fmt.Errorf("summarize document: %w", err)
	}

	summaryText := summary.Text()
	summaryScript := text.Classify(summaryText)

	return &Result{
		Summary:          summaryText,
		FormattedSummary: Format(summaryText, summaryScript, layout),
		Layout:           layout,
		Script:           text.Classify(document),
		CompressionRatio: ratio,
		SentenceIndices:  summary.Indices(),
		Metrics:          ComputeMetrics(document, summary, summaryScript),
	}, nil
}

// acquire returns the document text of req, fetching it when a URL is given.
func (s *Service) acquire(ctx context.Context, req Request) (string, error) {
	hasText := req.Text != ""
	hasURL := strings.TrimSpace(req.URL) != ""

	switch {
	case hasText && hasURL:
		return "", &entity.ValidationError{Field: "text", Message: "text and url must not both be set"}
	case hasText:
		return req.Text, nil
	case !hasURL:
		return "", &entity.ValidationError{Field: "text", Message: "text or url is required"}
	}

	rawURL := strings.TrimSpace(req.URL)
	if err := entity.ValidateSourceURL(rawURL); err != nil {
		return "", err
	}
	if s.ContentFetcher == nil {
		return "", ErrSourceFetchDisabled
	}

	logger := logging.FromContext(ctx)
	fetchStart := time.Now()
	content, err := s.ContentFetcher.FetchContent(ctx, rawURL)
	fetchDuration := time.Since(fetchStart)
	if err != nil {
		metrics.RecordContentFetchFailed(fetchDuration)
		logger.Warn("document fetch failed",
			slog.String("url", rawURL),
			slog.Any("error", err),
			slog.Duration("fetch_duration", fetchDuration))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w: %w", ErrSourceFetchFailed, err)
	}

	metrics.RecordContentFetchSuccess(fetchDuration, len(content))
	logger.Info("document fetched",
		slog.String("url", rawURL),
		slog.Int("length", len(content)),
		slog.Duration("fetch_duration", fetchDuration))
	return content, nil
}

// Format re-renders an existing summary in another layout without
// summarizing again. The script is taken from the summary text itself.
func (s *Service) Format(summaryText, layout string) string {
	l := entity.ParseLayout(layout)
	metrics.RecordFormat(l.String())
	return Format(summaryText, text.Classify(summaryText), l)
}

// SummarizeBatch summarizes reqs concurrently, at most BatchParallelism at a
// time. Items come back in request order with their own error; the batch as
// a whole fails only when ctx ends.
func (s *Service) SummarizeBatch(ctx context.Context, reqs []Request) ([]BatchItem, error) {
	metrics.RecordBatch(len(reqs))
	items := make([]BatchItem, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchParallelism)

	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := s.Summarize(gctx, req)
			if err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
			items[i] = BatchItem{Index: i, Result: result, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) layoutFor(selector string) entity.Layout {
	if strings.TrimSpace(selector) == "" {
		return s.cfg.DefaultLayout
	}
	return entity.ParseLayout(selector)
}

func (s *Service) ratioFor(requested *float64) float64 {
	def := s.cfg.DefaultCompressionRatio
	if requested == nil {
		return entity.ClampCompressionRatio(def, 0)
	}
	return entity.ClampCompressionRatio(*requested, def)
}

// IsInputError reports whether err was caused by the request rather than by
// the service or the remote document source.
func IsInputError(err error) bool {
	return errors.Is(err, entity.ErrInvalidInput) ||
		errors.Is(err, entity.ErrDocumentTooLarge) ||
		errors.Is(err, ErrSourceFetchDisabled) ||
		fetch.IsClientError(err)
}

// failureReason classifies err for the summary failure metric.
func failureReason(err error) string {
	switch {
	case errors.Is(err, entity.ErrDocumentTooLarge):
		return "too_large"
	case IsInputError(err):
		return "input"
	case errors.Is(err, ErrSourceFetchFailed):
		return "fetch"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "internal"
	}
}
