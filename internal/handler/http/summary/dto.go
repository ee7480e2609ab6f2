// Package summary provides the HTTP handlers for summarizing documents,
// summarizing batches of documents and re-formatting existing summaries.
package summary

import (
	"textdigest/internal/domain/entity"
	"textdigest/internal/usecase/summarize"
)

// SummarizeRequest is the body of POST /summaries and one item of a batch.
type SummarizeRequest struct {
	Text string `json:"text,omitempty" example:"Cats sleep a lot. Dogs bark at night."`
	URL  string `json:"url,omitempty" example:"https://example.com/article"`
	// CompressionRatio is the fraction of text to remove, 0 to 1.
	CompressionRatio *float64 `json:"compression_ratio,omitempty" example:"0.5"`
	// CompressionPercent is the same setting as a percentage, 0 to 100.
	CompressionPercent *float64 `json:"compression_percent,omitempty" example:"50"`
	Layout             string   `json:"layout,omitempty" example:"bullet"`
}

// SummaryDTO is a generated summary.
type SummaryDTO struct {
	Summary          string         `json:"summary"`
	FormattedSummary string         `json:"formatted_summary"`
	Layout           string         `json:"layout" example:"plain"`
	Script           string         `json:"script" example:"default"`
	CompressionRatio float64        `json:"compression_ratio" example:"0.5"`
	SentenceIndices  []int          `json:"sentence_indices"`
	Metrics          entity.Metrics `json:"metrics"`
}

// FormatRequest is the body of POST /summaries/format.
type FormatRequest struct {
	SummaryText string `json:"summary_text"`
	Layout      string `json:"layout"`
}

// FormatResponse carries a re-rendered summary.
type FormatResponse struct {
	FormattedText string `json:"formatted_text"`
}

// BatchRequest is the body of POST /summaries/batch.
type BatchRequest struct {
	Documents []SummarizeRequest `json:"documents"`
}

// BatchResponse lists one result per submitted document, in order.
type BatchResponse struct {
	Results []BatchItemDTO `json:"results"`
}

// BatchItemDTO holds either a summary or the error for one document.
type BatchItemDTO struct {
	Index   int         `json:"index"`
	Summary *SummaryDTO `json:"summary,omitempty"`
	Error   *ErrorDTO   `json:"error,omitempty"`
}

// ErrorDTO describes a failed batch item with the status the document would
// have received on its own.
type ErrorDTO struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (r SummarizeRequest) toUseCase() (summarize.Request, error) {
	req := summarize.Request{
		Text:             r.Text,
		URL:              r.URL,
		CompressionRatio: r.CompressionRatio,
		Layout:           r.Layout,
	}
	if r.CompressionPercent != nil {
		if r.CompressionRatio != nil {
			return summarize.Request{}, &entity.ValidationError{
				Field:   "compression_percent",
				Message: "compression_ratio and compression_percent must not both be set",
			}
		}
		ratio := entity.CompressionRatioFromPercent(*r.CompressionPercent)
		req.CompressionRatio = &ratio
	}
	return req, nil
}

func toDTO(res *summarize.Result) *SummaryDTO {
	indices := res.SentenceIndices
	if indices == nil {
		indices = []int{}
	}
	return &SummaryDTO{
		Summary:          res.Summary,
		FormattedSummary: res.FormattedSummary,
		Layout:           res.Layout.String(),
		Script:           res.Script.String(),
		CompressionRatio: res.CompressionRatio,
		SentenceIndices:  indices,
		Metrics:          res.Metrics,
	}
}
