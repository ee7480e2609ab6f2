package fetch

import "context"

// ContentFetcher retrieves the readable text of a web page so it can be
// summarized like any other document.
//
// Example usage:
//
//	fetcher := fetcher.NewReadabilityFetcher(config)
//	text, err := fetcher.FetchContent(ctx, "https://example.com/article")
//	if errors.Is(err, fetch.ErrPrivateIP) {
//	    // reject the request
//	}
//
// Security considerations:
//   - Implementations MUST prevent Server-Side Request Forgery (SSRF) attacks
//   - Implementations MUST enforce size limits to prevent memory exhaustion
//   - Implementations MUST enforce timeouts to prevent resource starvation
//   - Implementations MUST validate redirect targets
type ContentFetcher interface {
	// FetchContent fetches url and returns its main text content as plain
	// text, one block per line.
	//
	// Errors:
	//   - ErrInvalidURL: URL format is invalid or uses unsupported scheme
	//   - ErrPrivateIP: URL resolves to a private IP address (SSRF prevention)
	//   - ErrTooManyRedirects: Redirect chain exceeds configured maximum
	//   - ErrBodyTooLarge: Response body exceeds size limit
	//   - ErrTimeout: Request timed out
	//   - ErrExtractionFailed: No readable text could be extracted
	//   - gobreaker.ErrOpenState: Circuit breaker is open (too many failures)
	FetchContent(ctx context.Context, url string) (string, error)
}
