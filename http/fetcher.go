// Package http serves the helpcenter search and listing API and fetches
// published pages for scanning.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/fwojciec/helpcenter"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements helpcenter.Fetcher at compile time.
var _ helpcenter.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves published help-center pages. Requests to the same host
// are spaced out by a per-host token bucket when a rate is configured.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration

	rps      float64
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit limits requests to rps per host, with a burst of 1.
// Zero or negative disables limiting, which is the default.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.rps = rps
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		limiters: make(map[string]*rate.Limiter),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", helpcenter.Errorf(helpcenter.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	if err := f.wait(ctx, u.Host); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// wait blocks until the host's limiter allows a request.
func (f *Fetcher) wait(ctx context.Context, host string) error {
	if f.rps <= 0 {
		return nil
	}

	f.mu.Lock()
	limiter, ok := f.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(f.rps), 1)
		f.limiters[host] = limiter
	}
	f.mu.Unlock()

	return limiter.Wait(ctx)
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
