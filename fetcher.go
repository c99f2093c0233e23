package legaldoc

import "context"

// Fetcher retrieves page markup from URLs.
type Fetcher interface {
	// Fetch performs a GET request and returns the body decoded to UTF-8.
	// Any non-2xx status is reported as an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// Prober checks whether a URL exists without downloading it.
type Prober interface {
	// Probe issues a lightweight existence check (HEAD).
	// Returns true for a 2xx response and false for any other status.
	// Transport failures are returned as errors.
	Probe(ctx context.Context, url string) (found bool, err error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
