package helpcenter

import "context"

// Fetcher retrieves page HTML for scanning when pages are served rather
// than read from disk.
type Fetcher interface {
	// Fetch returns the HTML body at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
