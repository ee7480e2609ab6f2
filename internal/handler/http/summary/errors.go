package summary

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"textdigest/internal/domain/entity"
	"textdigest/internal/handler/http/respond"
	"textdigest/internal/observability/logging"
	"textdigest/internal/usecase/summarize"
)

var (
	errBodyRequired = errors.New("request body is required")
	errInvalidJSON  = errors.New("invalid JSON body")
	errBodyTooLarge = errors.New("request body too large")
)

// classify maps a use case error to an HTTP status and a message that is
// safe to return to the client.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrDocumentTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	case summarize.IsInputError(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, summarize.ErrSourceFetchFailed):
		return http.StatusBadGateway, summarize.ErrSourceFetchFailed.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "request canceled"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := classify(err)
	if code >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("summary request failed",
			slog.Int("status", code),
			slog.String("error", respond.SanitizeError(err)))
	}
	respond.WriteError(w, code, respond.NewAppError(code, msg, nil))
}

func itemError(err error) *ErrorDTO {
	code, msg := classify(err)
	return &ErrorDTO{Status: code, Message: msg}
}

// decodeJSON reads a single JSON value from the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}

	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		respond.SafeError(w, http.StatusRequestEntityTooLarge, errBodyTooLarge)
	case errors.Is(err, io.EOF):
		respond.SafeError(w, http.StatusBadRequest, errBodyRequired)
	default:
		respond.SafeError(w, http.StatusBadRequest, errInvalidJSON)
	}
	return false
}
