// Package http provides net/http implementations of legaldoc.Fetcher and
// legaldoc.Prober for fetching static pages.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/legaldoc"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Callers usually set tighter per-step deadlines through the context.
const DefaultFetchTimeout = 15 * time.Second

// DefaultMaxBodySize caps how much of a response body is read (10 MiB).
const DefaultMaxBodySize = 10 << 20

// DefaultUserAgent is sent with every request. Many sites serve reduced
// pages or 403s to clients without a browser-like user agent.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// Ensure Fetcher implements legaldoc.Fetcher at compile time.
var _ legaldoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP GET requests.
// It does not execute JavaScript.
type Fetcher struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
}

// Option configures a Fetcher or Prober.
type Option func(*config)

type config struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
// Defaults to DefaultUserAgent if not specified.
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

// WithMaxBodySize limits the number of body bytes read.
// Defaults to DefaultMaxBodySize if not specified.
func WithMaxBodySize(n int64) Option {
	return func(c *config) {
		c.maxBodySize = n
	}
}

// WithClient sets the underlying HTTP client. Its Timeout is overridden
// by WithTimeout when both are given.
func WithClient(client *http.Client) Option {
	return func(c *config) {
		c.client = client
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(c)
	}

	client := &http.Client{}
	if c.client != nil {
		cp := *c.client
		client = &cp
	}
	client.Timeout = c.timeout
	c.client = client

	return c
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	c := newConfig(opts)
	return &Fetcher{
		client:      c.client,
		userAgent:   c.userAgent,
		maxBodySize: c.maxBodySize,
	}
}

// Fetch retrieves the HTML content from the given URL, decoded to UTF-8
// according to the response Content-Type and any <meta charset>.
// Redirects are followed. Any non-2xx final status is an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", legaldoc.Errorf(legaldoc.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body := io.LimitReader(resp.Body, f.maxBodySize)
	reader, err := charset.NewReader(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", url, err)
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}

	return string(content), nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
