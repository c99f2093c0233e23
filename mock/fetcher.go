package mock

import (
	"context"

	"github.com/fwojciec/legaldoc"
)

var _ legaldoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of legaldoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ legaldoc.Prober = (*Prober)(nil)

// Prober is a mock implementation of legaldoc.Prober.
type Prober struct {
	ProbeFn func(ctx context.Context, url string) (bool, error)
}

func (p *Prober) Probe(ctx context.Context, url string) (bool, error) {
	return p.ProbeFn(ctx, url)
}

var _ legaldoc.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of legaldoc.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
