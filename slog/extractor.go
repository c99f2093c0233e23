package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/legaldoc"
)

// Ensure LoggingDocumentExtractor implements legaldoc.DocumentExtractor.
var _ legaldoc.DocumentExtractor = (*LoggingDocumentExtractor)(nil)

// LoggingDocumentExtractor wraps a DocumentExtractor and logs a summary of
// each run, plus one warning per document that could not be extracted.
type LoggingDocumentExtractor struct {
	next   legaldoc.DocumentExtractor
	logger *slog.Logger
}

// NewLoggingDocumentExtractor creates a new LoggingDocumentExtractor.
func NewLoggingDocumentExtractor(next legaldoc.DocumentExtractor, logger *slog.Logger) *LoggingDocumentExtractor {
	return &LoggingDocumentExtractor{next: next, logger: logger}
}

// ExtractAll delegates to the wrapped extractor and logs the outcome.
func (e *LoggingDocumentExtractor) ExtractAll(ctx context.Context, rawURL string) (*legaldoc.Extraction, error) {
	begin := time.Now()
	result, err := e.next.ExtractAll(ctx, rawURL)
	if result == nil {
		e.logger.ErrorContext(ctx, "extraction", "url", rawURL, "duration", time.Since(begin), "err", err)
		return result, err
	}

	failed := 0
	for _, doc := range result.Documents {
		if doc.Failed() {
			failed++
			e.logger.WarnContext(ctx, "document extraction failed",
				"url", doc.URL,
				"type", doc.Type,
				"reason", doc.Reason,
			)
		}
	}

	attrs := []any{
		"url", result.URL,
		"domain", result.Domain,
		"documents", len(result.Documents),
		"failed", failed,
		"duration", time.Since(begin),
	}
	if d := result.Discovery; d != nil {
		attrs = append(attrs, "method", d.Method)
		if d.SeedErr != nil {
			attrs = append(attrs, "seed_err", d.SeedErr)
		}
	}
	if err != nil {
		attrs = append(attrs, "err", err)
	}
	e.logger.InfoContext(ctx, "extraction", attrs...)
	return result, err
}
