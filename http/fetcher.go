// Package http provides an HTTP-based implementation of frontpage.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pwalczyk/frontpage"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the client to the target site.
const DefaultUserAgent = "frontpage/1.0 (+https://github.com/pwalczyk/frontpage)"

// Ensure Fetcher implements frontpage.Fetcher at compile time.
var _ frontpage.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests,
// optionally routed through a forward proxy.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	proxyURL  string
	userAgent string
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

// WithProxy routes all requests through the given forward proxy.
// The same proxy applies to both plain HTTP and HTTPS traffic.
func WithProxy(rawURL string) Option {
	return func(f *Fetcher) {
		f.proxyURL = rawURL
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher. A malformed proxy URL
// fails here with EINVALID, before any request is sent.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	if f.proxyURL != "" {
		proxy, err := url.Parse(f.proxyURL)
		if err != nil {
			return nil, frontpage.Errorf(frontpage.EINVALID, "invalid proxy URL %q: %v", f.proxyURL, err)
		}
		if proxy.Scheme != "http" && proxy.Scheme != "https" {
			return nil, frontpage.Errorf(frontpage.EINVALID, "unsupported proxy scheme %q", proxy.Scheme)
		}
		f.client.Transport = &http.Transport{
			Proxy: http.ProxyURL(proxy),
		}
	}

	return f, nil
}

// Fetch retrieves the body from the given URL. The body is returned
// as-is regardless of HTTP status code; transport failures surface as
// EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", frontpage.Errorf(frontpage.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", frontpage.Errorf(frontpage.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", frontpage.Errorf(frontpage.EUNAVAILABLE, "read body from %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases idle transport connections.
func (f *Fetcher) Close() error {
	if f.client != nil {
		f.client.CloseIdleConnections()
	}
	return nil
}
