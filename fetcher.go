package frontpage

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET request and returns the response body
	// as text. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
