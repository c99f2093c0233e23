package http

import (
	"context"
	"net/http"
	"time"

	"github.com/fwojciec/legaldoc"
)

// DefaultProbeTimeout is the default timeout for existence checks.
const DefaultProbeTimeout = 5 * time.Second

// Ensure Prober implements legaldoc.Prober at compile time.
var _ legaldoc.Prober = (*Prober)(nil)

// Prober checks URL existence with HEAD requests.
type Prober struct {
	client    *http.Client
	userAgent string
}

// NewProber creates a new HTTP-based Prober.
// The timeout defaults to DefaultProbeTimeout (5s).
func NewProber(opts ...Option) *Prober {
	c := newConfig(append([]Option{WithTimeout(DefaultProbeTimeout)}, opts...))
	return &Prober{
		client:    c.client,
		userAgent: c.userAgent,
	}
}

// Probe issues a HEAD request, following redirects.
// A 2xx final status reports true; any other status reports false with a
// nil error. Transport failures are returned as errors.
func (p *Prober) Probe(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false, legaldoc.Errorf(legaldoc.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return isSuccess(resp.StatusCode), nil
}
