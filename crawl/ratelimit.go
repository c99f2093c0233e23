package crawl

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/legaldoc"
	"golang.org/x/time/rate"
)

var _ legaldoc.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to the same host using one token
// bucket per domain. Requests to different domains do not wait on each
// other. Seed fetches, probes and document fetches of one extraction all
// share the bucket of the site being analyzed.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewDomainLimiter returns a limiter allowing rps requests per second per
// domain with the given burst. A non-positive rps disables limiting and a
// burst below 1 is raised to 1.
func NewDomainLimiter(rps float64, burst int) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    max(burst, 1),
	}
}

// Wait blocks until a request to domain is allowed or ctx is done.
// Domains are compared case-insensitively.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiter(strings.ToLower(domain)).Wait(ctx)
}

func (d *DomainLimiter) limiter(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(d.limit, d.burst)
		d.limiters[domain] = limiter
	}
	return limiter
}
