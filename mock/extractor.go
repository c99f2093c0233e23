package mock

import (
	"context"

	"github.com/fwojciec/legaldoc"
)

var _ legaldoc.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of legaldoc.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*legaldoc.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*legaldoc.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ legaldoc.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of legaldoc.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(text string) string
}

func (d *LanguageDetector) DetectLanguage(text string) string {
	return d.DetectLanguageFn(text)
}

var _ legaldoc.DocumentExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor is a mock implementation of legaldoc.DocumentExtractor.
type DocumentExtractor struct {
	ExtractAllFn func(ctx context.Context, rawURL string) (*legaldoc.Extraction, error)
}

func (e *DocumentExtractor) ExtractAll(ctx context.Context, rawURL string) (*legaldoc.Extraction, error) {
	return e.ExtractAllFn(ctx, rawURL)
}

var _ legaldoc.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of legaldoc.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *legaldoc.Document) (string, error)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *legaldoc.Document) (string, error) {
	return w.WriteDocumentFn(ctx, doc)
}
