package fetcher

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"textdigest/internal/observability/tracing"
	"textdigest/internal/resilience/circuitbreaker"
	"textdigest/internal/resilience/retry"
	"textdigest/internal/usecase/fetch"
)

// ReadabilityFetcher implements fetch.ContentFetcher. It downloads a page
// over http(s) and extracts its article text with go-readability, falling
// back to goquery for pages readability rejects.
//
// Every request and redirect target is validated against SSRF, the body is
// size limited, transient failures are retried and a circuit breaker stops
// hammering a failing source. Safe for concurrent use.
type ReadabilityFetcher struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	config         SourceFetchConfig
}

// NewReadabilityFetcher creates a fetcher for cfg.
func NewReadabilityFetcher(cfg SourceFetchConfig) *ReadabilityFetcher {
	f := &ReadabilityFetcher{
		circuitBreaker: circuitbreaker.New(circuitbreaker.SourceFetchConfig()),
		config:         cfg,
	}

	f.client = &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > f.config.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", fetch.ErrTooManyRedirects, len(via))
			}
			if err := validateURL(req.Context(), req.URL.String(), f.config.DenyPrivateIPs); err != nil {
				return fmt.Errorf("redirect target validation failed: %w", err)
			}
			return nil
		},
	}

	return f
}

// CircuitState reports the source-fetch circuit breaker state
// ("closed", "half-open" or "open").
func (f *ReadabilityFetcher) CircuitState() string {
	return f.circuitBreaker.State().String()
}

// FetchContent downloads urlStr and returns its readable text.
func (f *ReadabilityFetcher) FetchContent(ctx context.Context, urlStr string) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "fetcher.FetchContent")
	defer span.End()

	if err := validateURL(ctx, urlStr, f.config.DenyPrivateIPs); err != nil {
		tracing.RecordError(span, err)
		return "", err
	}
	if u, err := url.Parse(urlStr); err == nil {
		span.SetAttributes(attribute.String("server.address", u.Hostname()))
	}

	text, err := circuitbreaker.Run(f.circuitBreaker, func() (string, error) {
		return retry.Do(ctx, f.config.Retry, func() (string, error) {
			return f.doFetch(ctx, urlStr)
		})
	})
	if err != nil {
		if circuitbreaker.IsRejected(err) {
			err = fmt.Errorf("source fetching temporarily suspended: %w", err)
		}
		tracing.RecordError(span, err)
		return "", err
	}

	span.SetAttributes(attribute.Int("content.length", len(text)))
	return text, nil
}

func (f *ReadabilityFetcher) doFetch(ctx context.Context, urlStr string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", fetch.ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", f.config.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: request exceeded %v", fetch.ErrTimeout, f.config.Timeout)
		}
		var urlErr *url.Error
		if errors.As(err, &urlErr) && isPolicyError(urlErr.Err) {
			return "", urlErr.Err
		}
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", &retry.HTTPError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.config.MaxBodySize+1))
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: reading body exceeded %v", fetch.ErrTimeout, f.config.Timeout)
		}
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > f.config.MaxBodySize {
		return "", fmt.Errorf("%w: response exceeds limit of %d bytes", fetch.ErrBodyTooLarge, f.config.MaxBodySize)
	}

	if mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil && mediaType == "text/plain" {
		if text := cleanText(string(body)); text != "" {
			return text, nil
		}
		return "", fmt.Errorf("%w: empty document", fetch.ErrExtractionFailed)
	}

	// Relative links resolve against the final URL after redirects.
	pageURL := resp.Request.URL
	return extractText(body, pageURL)
}

func isPolicyError(err error) bool {
	return errors.Is(err, fetch.ErrTooManyRedirects) ||
		errors.Is(err, fetch.ErrPrivateIP) ||
		errors.Is(err, fetch.ErrInvalidURL)
}
