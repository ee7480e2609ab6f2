package summary

import (
	"net/http"

	"textdigest/internal/handler/http/respond"
)

type FormatHandler struct{ Svc Service }

// ServeHTTP re-renders an existing summary in another layout.
//
//	POST /summaries/format
//	200 FormatResponse
func (h FormatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body FormatRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	respond.JSON(w, http.StatusOK, FormatResponse{
		FormattedText: h.Svc.Format(body.SummaryText, body.Layout),
	})
}
