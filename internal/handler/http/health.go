// Package http provides the HTTP surface of the summarization service:
// health and metrics endpoints plus the middleware shared by every route.
// The summary endpoints live in the summary subpackage.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"textdigest/internal/handler/http/respond"
	"textdigest/internal/usecase/summarize"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
	statusDisabled  = "disabled"
)

// probeDocument is summarized by health and readiness checks.
const probeDocument = "The river flows through the valley. Farmers grow rice along its banks. " +
	"Every spring the river floods the low fields. The floods bring fresh soil to the farms."

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// CircuitReporter exposes the state of a circuit breaker.
type CircuitReporter interface {
	CircuitState() string
}

// HealthHandler reports the state of the summarizer, URL fetching and the
// rate limiter. Only a failing summarizer makes the service unhealthy; an
// open fetch circuit is reported as degraded.
type HealthHandler struct {
	Summarizer  summarize.Summarizer
	Fetcher     CircuitReporter // nil when URL fetching is disabled
	RateLimiter *RateLimiter    // nil when rate limiting is disabled
	Version     string
}

func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]CheckStatus{
		"summarizer":   checkSummarizer(ctx, h.Summarizer),
		"source_fetch": h.checkSourceFetch(),
	}
	if h.RateLimiter != nil {
		checks["rate_limiter"] = CheckStatus{
			Status:  statusHealthy,
			Details: map[string]any{"tracked_clients": h.RateLimiter.Clients()},
		}
	}

	status := statusHealthy
	code := http.StatusOK
	if checks["summarizer"].Status == statusUnhealthy {
		status = statusUnhealthy
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h HealthHandler) checkSourceFetch() CheckStatus {
	if h.Fetcher == nil {
		return CheckStatus{Status: statusDisabled}
	}
	state := h.Fetcher.CircuitState()
	details := map[string]any{"circuit_breaker": state}
	if state == "open" {
		return CheckStatus{
			Status:  statusDegraded,
			Message: "source fetching temporarily suspended",
			Details: details,
		}
	}
	return CheckStatus{Status: statusHealthy, Details: details}
}

func checkSummarizer(ctx context.Context, s summarize.Summarizer) CheckStatus {
	if err := probe(ctx, s); err != nil {
		return CheckStatus{Status: statusUnhealthy, Message: err.Error()}
	}
	return CheckStatus{Status: statusHealthy}
}

// probe summarizes probeDocument and expects a non-empty summary.
func probe(ctx context.Context, s summarize.Summarizer) error {
	if s == nil {
		return errors.New("summarizer not configured")
	}
	summary, err := s.Summarize(ctx, probeDocument, 0.5)
	if err != nil {
		return err
	}
	if summary.Len() == 0 {
		return errors.New("summarizer returned an empty summary")
	}
	return nil
}

// ReadyHandler answers readiness probes once the summarizer works.
type ReadyHandler struct {
	Summarizer summarize.Summarizer
}

func (h ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := probe(ctx, h.Summarizer); err != nil {
		http.Error(w, "summarizer not ready: "+err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeText(w, "ready")
}

// LiveHandler answers liveness probes.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	writeText(w, "alive")
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Default().Warn("failed to write probe response", slog.Any("error", err))
	}
}
