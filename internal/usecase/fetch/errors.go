// Package fetch defines the boundary for acquiring document text from URLs.
// The summarize use case depends on the ContentFetcher interface; the
// infra/fetcher package provides the HTTP implementation.
package fetch

import "errors"

// Sentinel errors for content fetching operations.
// These errors allow callers to distinguish between different failure modes.
var (
	// ErrInvalidURL indicates the URL format is invalid or uses an unsupported scheme.
	// Only http:// and https:// schemes are supported.
	//
	// Example:
	//   - "not-a-url" → ErrInvalidURL
	//   - "file:///etc/passwd" → ErrInvalidURL
	ErrInvalidURL = errors.New("invalid URL or unsupported scheme")

	// ErrPrivateIP indicates the URL resolves to a private IP address.
	// This error prevents Server-Side Request Forgery (SSRF) attacks.
	//
	// Example:
	//   - "http://localhost" → ErrPrivateIP
	//   - "http://192.168.1.1" → ErrPrivateIP
	ErrPrivateIP = errors.New("private IP access denied (SSRF prevention)")

	// ErrTooManyRedirects indicates the redirect chain exceeded the configured maximum.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrBodyTooLarge indicates the response body exceeded the size limit.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("request timeout")

	// ErrExtractionFailed indicates no readable text could be extracted,
	// either because the HTML could not be parsed or because the page has
	// no text content.
	ErrExtractionFailed = errors.New("content extraction failed")
)

// IsClientError reports whether err was caused by the submitted URL itself
// rather than by the remote server or the network.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidURL) || errors.Is(err, ErrPrivateIP)
}
