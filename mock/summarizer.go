package mock

import (
	"context"

	"github.com/fwojciec/legaldoc"
)

var _ legaldoc.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of legaldoc.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, docs []*legaldoc.Document, domain string) (*legaldoc.Report, error)
}

func (s *Summarizer) Summarize(ctx context.Context, docs []*legaldoc.Document, domain string) (*legaldoc.Report, error) {
	return s.SummarizeFn(ctx, docs, domain)
}
