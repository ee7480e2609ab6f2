package summary

import (
	"context"
	"net/http"

	"textdigest/internal/usecase/summarize"
)

// Service is the summarize use case as seen by the handlers.
type Service interface {
	Summarize(ctx context.Context, req summarize.Request) (*summarize.Result, error)
	SummarizeBatch(ctx context.Context, reqs []summarize.Request) ([]summarize.BatchItem, error)
	Format(summaryText, layout string) string
}

// Register registers the summary routes on mux.
func Register(mux *http.ServeMux, svc Service) {
	mux.Handle("POST /summaries", CreateHandler{svc})
	mux.Handle("POST /summaries/format", FormatHandler{svc})
	mux.Handle("POST /summaries/batch", BatchHandler{svc})
}
