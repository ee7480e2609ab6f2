// Package summarize implements the summarization use cases: summarizing a
// document given as text or URL, summarizing batches, and re-formatting an
// existing summary.
package summarize

import "errors"

// Sentinel errors for summarize use case operations.
var (
	// ErrSourceFetchDisabled indicates a URL was submitted but no content
	// fetcher is configured.
	ErrSourceFetchDisabled = errors.New("url summarization is disabled")

	// ErrSourceFetchFailed indicates the document could not be retrieved or
	// extracted from its URL.
	ErrSourceFetchFailed = errors.New("failed to fetch document from url")
)
