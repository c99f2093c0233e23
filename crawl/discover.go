package crawl

import (
	"context"
	"fmt"

	"github.com/fwojciec/legaldoc"
)

// Discover finds candidate legal documents for a seed page.
//
// The seed page is fetched and its links classified. If that yields no
// candidates, for any reason including an unreachable seed, the common-path
// fallback runs and its candidates become the result. Seed failures are
// recorded on Discovery.SeedErr, never returned.
//
// The returned error is non-nil only if ctx is done.
func (e *Engine) Discover(ctx context.Context, seedURL string) (*legaldoc.Discovery, error) {
	discovery := &legaldoc.Discovery{
		SeedURL:    seedURL,
		Method:     legaldoc.MethodNone,
		Candidates: []legaldoc.Candidate{},
	}

	candidates, err := e.scanSeed(ctx, seedURL)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return discovery, ctxErr
		}
		discovery.SeedErr = err
	}
	if len(candidates) > 0 {
		discovery.Method = legaldoc.MethodLinks
		discovery.Candidates = candidates
		return discovery, nil
	}

	candidates, probes := e.ProbeCommonPaths(ctx, seedURL)
	discovery.Probes = probes
	if err := ctx.Err(); err != nil {
		return discovery, err
	}
	if len(candidates) > 0 {
		discovery.Method = legaldoc.MethodCommonPaths
		discovery.Candidates = candidates
	}
	return discovery, nil
}

// scanSeed fetches the seed page and returns its classified links.
func (e *Engine) scanSeed(ctx context.Context, seedURL string) ([]legaldoc.Candidate, error) {
	html, err := e.fetch(ctx, seedURL, e.seedTimeout())
	if err != nil {
		return nil, fmt.Errorf("fetching seed page: %w", err)
	}

	links, err := e.Links.ScanLinks(html, seedURL)
	if err != nil {
		return nil, fmt.Errorf("scanning seed page: %w", err)
	}

	return ClassifyLinks(links, e.Classifier), nil
}

// ClassifyLinks classifies links, discards the unclassified ones and
// deduplicates the rest by resolved URL. The first classified occurrence of
// a URL wins and first-seen order is preserved.
func ClassifyLinks(links []legaldoc.Link, classifier legaldoc.Classifier) []legaldoc.Candidate {
	seen := make(map[string]bool)
	var candidates []legaldoc.Candidate
	for _, link := range links {
		if seen[link.URL] {
			continue
		}
		typ, ok := classifier.Classify(link.Href, link.Text)
		if !ok {
			continue
		}
		seen[link.URL] = true
		candidates = append(candidates, legaldoc.Candidate{
			Type:     typ,
			URL:      link.URL,
			LinkText: link.Text,
		})
	}
	return candidates
}
