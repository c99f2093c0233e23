package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/legaldoc"
)

// Ensure LoggingSummarizer implements legaldoc.Summarizer.
var _ legaldoc.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging.
type LoggingSummarizer struct {
	next   legaldoc.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next legaldoc.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the operation.
func (s *LoggingSummarizer) Summarize(ctx context.Context, docs []*legaldoc.Document, domain string) (report *legaldoc.Report, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"domain", domain,
			"documents", len(docs),
			"duration", time.Since(begin),
		}
		if report != nil {
			attrs = append(attrs, "risk", report.RiskLevel, "readability", report.ReadabilityScore)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		s.logger.InfoContext(ctx, "summarize", attrs...)
	}(time.Now())
	return s.next.Summarize(ctx, docs, domain)
}
