package crawl

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/legaldoc"
	"golang.org/x/sync/errgroup"
)

// CommonPath is a conventional location of a legal document.
type CommonPath struct {
	Path string
	Type legaldoc.DocumentType
}

// DefaultCommonPaths returns the conventional paths probed when the seed
// page yields no classifiable links, in probe-result order.
func DefaultCommonPaths() []CommonPath {
	return []CommonPath{
		{"/terms", legaldoc.TypeTerms},
		{"/terms-of-use", legaldoc.TypeTerms},
		{"/terms-of-service", legaldoc.TypeTerms},
		{"/privacy", legaldoc.TypePrivacy},
		{"/privacy-policy", legaldoc.TypePrivacy},
		{"/legal", legaldoc.TypeLegal},
		{"/cookies", legaldoc.TypeCookies},
		{"/cgu", legaldoc.TypeTerms},
		{"/cgv", legaldoc.TypeTerms},
		{"/mentions-legales", legaldoc.TypeLegal},
		{"/confidentialite", legaldoc.TypePrivacy},
	}
}

// ProbeCommonPaths checks each common path against the seed's host and
// returns a candidate for every path that answers 2xx, in table order,
// along with the outcome of every probe. A failed probe never stops the
// others. Probes run concurrently, bounded by Concurrency.
func (e *Engine) ProbeCommonPaths(ctx context.Context, seedURL string) ([]legaldoc.Candidate, []legaldoc.ProbeResult) {
	paths := e.CommonPaths
	if paths == nil {
		paths = DefaultCommonPaths()
	}

	results := make([]legaldoc.ProbeResult, len(paths))
	base, err := url.Parse(seedURL)
	if err != nil {
		for i, p := range paths {
			results[i] = legaldoc.ProbeResult{
				Path:   p.Path,
				Type:   p.Type,
				Status: legaldoc.StatusFailed,
				Reason: "invalid seed URL: " + err.Error(),
			}
		}
		return []legaldoc.Candidate{}, results
	}

	g := new(errgroup.Group)
	g.SetLimit(e.concurrency())
	for i, p := range paths {
		g.Go(func() error {
			results[i] = e.probe(ctx, base, p)
			return nil
		})
	}
	_ = g.Wait()

	candidates := []legaldoc.Candidate{}
	for _, r := range results {
		if r.Status != legaldoc.StatusSuccess {
			continue
		}
		candidates = append(candidates, legaldoc.Candidate{
			Type:     r.Type,
			URL:      r.URL,
			LinkText: strings.Trim(r.Path, "/"),
		})
	}
	return candidates, results
}

func (e *Engine) probe(ctx context.Context, base *url.URL, p CommonPath) legaldoc.ProbeResult {
	target := base.ResolveReference(&url.URL{Path: p.Path}).String()
	result := legaldoc.ProbeResult{
		Path: p.Path,
		URL:  target,
		Type: p.Type,
	}

	if err := e.wait(ctx, target); err != nil {
		result.Status = legaldoc.StatusFailed
		result.Reason = err.Error()
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, e.probeTimeout())
	defer cancel()

	found, err := e.Prober.Probe(ctx, target)
	switch {
	case err != nil:
		result.Status = legaldoc.StatusFailed
		result.Reason = err.Error()
	case !found:
		result.Status = legaldoc.StatusSkipped
		result.Reason = "not found"
	default:
		result.Status = legaldoc.StatusSuccess
	}
	return result
}
