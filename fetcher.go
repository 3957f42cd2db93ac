package xhsimport

import "context"

// Fetcher retrieves the HTML of a note page.
type Fetcher interface {
	// Fetch requests the URL and returns the page HTML.
	// Non-OK HTTP statuses are reported as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
