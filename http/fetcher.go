// Package http provides an HTTP-based implementation of
// policyprism.PayloadFetcher for retrieving policy documents from
// carrier portals and document links.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/policyprism"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements policyprism.PayloadFetcher at compile time.
var _ policyprism.PayloadFetcher = (*Fetcher)(nil)

// Fetcher retrieves raw document payloads over HTTP. Responses larger
// than the configured byte cap are rejected before the full body is read.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	maxBytes  int
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBytes caps the number of payload bytes the fetcher will accept.
// Defaults to policyprism.DefaultMaxPayloadBytes if not specified.
func WithMaxBytes(n int) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxBytes: policyprism.DefaultMaxPayloadBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// FetchPayload retrieves the raw bytes of the document at the given URL.
func (f *Fetcher) FetchPayload(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	if resp.ContentLength > int64(f.maxBytes) {
		return nil, policyprism.Errorf(policyprism.ETOOLARGE,
			"Document is %s which exceeds the %s analysis limit.",
			policyprism.FormatBytes(int(resp.ContentLength)), policyprism.FormatBytes(f.maxBytes))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(f.maxBytes)+1))
	if err != nil {
		return nil, err
	}

	if len(body) > f.maxBytes {
		return nil, policyprism.Errorf(policyprism.ETOOLARGE,
			"Document exceeds the %s analysis limit.", policyprism.FormatBytes(f.maxBytes))
	}

	return body, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
