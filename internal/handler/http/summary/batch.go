package summary

import (
	"errors"
	"fmt"
	"net/http"

	"textdigest/internal/handler/http/respond"
	"textdigest/internal/usecase/summarize"
)

// MaxBatchDocuments bounds the number of documents in one batch request.
const MaxBatchDocuments = 20

type BatchHandler struct{ Svc Service }

// ServeHTTP summarizes up to MaxBatchDocuments documents. A failing document
// is reported in its own result; the request fails only when the body is
// invalid or the request context ends.
//
//	POST /summaries/batch
//	200 BatchResponse
func (h BatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body BatchRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	switch n := len(body.Documents); {
	case n == 0:
		respond.SafeError(w, http.StatusBadRequest, errors.New("documents is required"))
		return
	case n > MaxBatchDocuments:
		respond.SafeError(w, http.StatusBadRequest,
			fmt.Errorf("documents must not exceed %d items, got %d", MaxBatchDocuments, n))
		return
	}

	results := make([]BatchItemDTO, len(body.Documents))
	reqs := make([]summarize.Request, 0, len(body.Documents))
	pending := make([]int, 0, len(body.Documents))
	for i, doc := range body.Documents {
		results[i].Index = i
		req, err := doc.toUseCase()
		if err != nil {
			results[i].Error = itemError(err)
			continue
		}
		reqs = append(reqs, req)
		pending = append(pending, i)
	}

	if len(reqs) > 0 {
		items, err := h.Svc.SummarizeBatch(r.Context(), reqs)
		if err != nil {
			writeError(w, r, err)
			return
		}
		for j, item := range items {
			i := pending[j]
			if item.Err != nil {
				results[i].Error = itemError(item.Err)
				continue
			}
			results[i].Summary = toDTO(item.Result)
		}
	}

	respond.JSON(w, http.StatusOK, BatchResponse{Results: results})
}
