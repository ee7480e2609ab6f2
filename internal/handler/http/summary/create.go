package summary

import (
	"net/http"

	"textdigest/internal/handler/http/respond"
)

type CreateHandler struct{ Svc Service }

// ServeHTTP summarizes a document given as text or URL.
//
//	POST /summaries
//	200 SummaryDTO
//	400 invalid body or parameters, 413 document too large,
//	502 URL could not be fetched, 504 timed out
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body SummarizeRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	req, err := body.toUseCase()
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.Svc.Summarize(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(res))
}
