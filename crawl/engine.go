// Package crawl provides legal document discovery and extraction.
// It coordinates seed page link scanning, the common-path fallback,
// per-document content extraction and result assembly.
package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/legaldoc"
	"golang.org/x/sync/errgroup"
)

// Default step timeouts and fan-out width.
const (
	DefaultSeedTimeout    = 10 * time.Second
	DefaultProbeTimeout   = 5 * time.Second
	DefaultContentTimeout = 15 * time.Second
	DefaultConcurrency    = 4
)

// Ensure Engine implements legaldoc.DocumentExtractor at compile time.
var _ legaldoc.DocumentExtractor = (*Engine)(nil)

// Engine discovers and extracts the legal documents of a website.
//
// Fetcher, Prober, Links, Classifier and Extractor are required.
// Languages and RateLimiter are optional.
type Engine struct {
	Fetcher     legaldoc.Fetcher
	Prober      legaldoc.Prober
	Links       legaldoc.LinkScanner
	Classifier  legaldoc.Classifier
	Extractor   legaldoc.ContentExtractor
	Languages   legaldoc.LanguageDetector
	RateLimiter legaldoc.DomainLimiter

	// CommonPaths overrides DefaultCommonPaths for the fallback.
	CommonPaths []CommonPath

	// Concurrency bounds both the probe and the extraction fan-out.
	Concurrency int

	SeedTimeout    time.Duration
	ProbeTimeout   time.Duration
	ContentTimeout time.Duration
}

// ExtractAll normalizes rawURL, discovers candidate documents and extracts
// each one. Documents keep candidate order. A candidate whose extraction
// fails yields a sentinel document rather than aborting the batch.
//
// The returned error is non-nil only if ctx is done; the partial
// extraction is returned alongside it.
func (e *Engine) ExtractAll(ctx context.Context, rawURL string) (*legaldoc.Extraction, error) {
	seedURL := legaldoc.NormalizeURL(rawURL)
	result := &legaldoc.Extraction{
		URL:       seedURL,
		Domain:    legaldoc.DomainOf(seedURL),
		Documents: []*legaldoc.Document{},
	}

	discovery, err := e.Discover(ctx, seedURL)
	result.Discovery = discovery
	if err != nil {
		return result, err
	}

	// Each task writes only its own slot, so no locking is needed.
	docs := make([]*legaldoc.Document, len(discovery.Candidates))
	g := new(errgroup.Group)
	g.SetLimit(e.concurrency())
	for i, candidate := range discovery.Candidates {
		g.Go(func() error {
			doc := e.ExtractContent(ctx, candidate.URL)
			doc.Type = candidate.Type
			doc.LinkText = candidate.LinkText
			if e.Languages != nil && !doc.Failed() {
				doc.Language = e.Languages.DetectLanguage(doc.Content)
			}
			docs[i] = doc
			return nil
		})
	}
	_ = g.Wait()

	result.Documents = docs
	return result, ctx.Err()
}

// ExtractContent fetches a document URL and extracts its title and text.
// It never fails: on any fetch or parse error it returns a document with
// StatusFailed whose title and content describe the failure.
func (e *Engine) ExtractContent(ctx context.Context, url string) *legaldoc.Document {
	html, err := e.fetch(ctx, url, e.contentTimeout())
	if err != nil {
		return failedDocument(url, err)
	}

	extracted, err := e.Extractor.Extract(html)
	if err != nil {
		return failedDocument(url, err)
	}

	return &legaldoc.Document{
		Title:   extracted.Title,
		Content: legaldoc.TruncateContent(extracted.Content, legaldoc.MaxContentLength),
		URL:     url,
		Status:  legaldoc.StatusSuccess,
	}
}

func failedDocument(url string, err error) *legaldoc.Document {
	reason := err.Error()
	return &legaldoc.Document{
		Title:   legaldoc.ExtractionErrorTitle,
		Content: legaldoc.TruncateContent(legaldoc.ExtractionErrorPrefix+reason, legaldoc.MaxContentLength),
		URL:     url,
		Status:  legaldoc.StatusFailed,
		Reason:  reason,
	}
}

// fetch waits for the rate limiter, then fetches url within timeout.
// Time spent waiting for the limiter does not count against timeout.
func (e *Engine) fetch(ctx context.Context, url string, timeout time.Duration) (string, error) {
	if err := e.wait(ctx, url); err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return e.Fetcher.Fetch(ctx, url)
}

func (e *Engine) wait(ctx context.Context, url string) error {
	if e.RateLimiter == nil {
		return ctx.Err()
	}
	return e.RateLimiter.Wait(ctx, legaldoc.DomainOf(url))
}

func (e *Engine) concurrency() int {
	if e.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return e.Concurrency
}

func (e *Engine) seedTimeout() time.Duration {
	return orDefault(e.SeedTimeout, DefaultSeedTimeout)
}

func (e *Engine) probeTimeout() time.Duration {
	return orDefault(e.ProbeTimeout, DefaultProbeTimeout)
}

func (e *Engine) contentTimeout() time.Duration {
	return orDefault(e.ContentTimeout, DefaultContentTimeout)
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
