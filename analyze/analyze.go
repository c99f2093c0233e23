// Package analyze runs the full website analysis workflow: cache lookup,
// document extraction, summarization and persistence.
package analyze

import (
	"context"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/legaldoc"
)

// DefaultCacheTTL is how long a successful analysis is reused.
const DefaultCacheTTL = 24 * time.Hour

// DefaultRecentLimit is used by Recent when no positive limit is given.
const DefaultRecentLimit = 50

// Analyzer analyzes the legal documents of websites.
type Analyzer struct {
	Extractor  legaldoc.DocumentExtractor
	Summarizer legaldoc.Summarizer
	Analyses   legaldoc.AnalysisService

	// CacheTTL defaults to DefaultCacheTTL.
	CacheTTL time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Analyze returns the analysis of the site at rawURL.
//
// A successful analysis younger than CacheTTL is returned as is unless force
// is set. Otherwise the site is extracted and summarized and the result is
// stored, replacing any earlier analysis of the domain. When the extracted
// documents are identical to those of the stored successful analysis, its
// report is reused instead of summarizing again.
//
// If no documents are found, the failed analysis is stored and returned with
// an ENOTFOUND error. If summarization fails, the failed analysis is stored
// and returned with an EINTERNAL error.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string, force bool) (*legaldoc.Analysis, error) {
	seedURL := legaldoc.NormalizeURL(rawURL)
	domain := legaldoc.DomainOf(seedURL)
	if domain == "" {
		return nil, legaldoc.Errorf(legaldoc.EINVALID, "invalid URL %q", rawURL)
	}

	previous, err := a.Analyses.FindAnalysisByDomain(ctx, domain)
	if err != nil && legaldoc.ErrorCode(err) != legaldoc.ENOTFOUND {
		return nil, err
	}
	if previous != nil && !previous.Successful {
		previous = nil
	}
	if previous != nil && !force && a.fresh(previous) {
		return previous, nil
	}

	extraction, err := a.Extractor.ExtractAll(ctx, seedURL)
	if err != nil {
		return nil, err
	}

	analysis := legaldoc.NewAnalysis(extraction.URL, extraction.Domain, extraction.Documents)
	if extraction.Empty() {
		analysis.Report.Summary = "No legal documents were found on this site."
		analysis.ErrorMessage = "no legal documents found"
		if err := a.Analyses.SaveAnalysis(ctx, analysis); err != nil {
			return nil, err
		}
		return analysis, legaldoc.Errorf(legaldoc.ENOTFOUND, "no legal documents found on %s", extraction.Domain)
	}

	if previous != nil && unchanged(previous.Documents, extraction.Documents) {
		analysis.Report = previous.Report
		analysis.Successful = true
		if err := a.Analyses.SaveAnalysis(ctx, analysis); err != nil {
			return nil, err
		}
		return analysis, nil
	}

	report, err := a.Summarizer.Summarize(ctx, extraction.Documents, extraction.Domain)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		analysis.Report.Summary = "Automatic analysis is unavailable."
		analysis.ErrorMessage = err.Error()
		if err := a.Analyses.SaveAnalysis(ctx, analysis); err != nil {
			return nil, err
		}
		return analysis, legaldoc.Errorf(legaldoc.EINTERNAL, "summarizing %s: %s", extraction.Domain, legaldoc.ErrorMessage(err))
	}

	analysis.Report = *report
	analysis.Successful = true
	if err := a.Analyses.SaveAnalysis(ctx, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// Lookup returns the stored successful analysis of domain.
func (a *Analyzer) Lookup(ctx context.Context, domain string) (*legaldoc.Analysis, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return nil, legaldoc.Errorf(legaldoc.EINVALID, "domain required")
	}
	analysis, err := a.Analyses.FindAnalysisByDomain(ctx, domain)
	if err != nil {
		return nil, err
	}
	if !analysis.Successful {
		return nil, legaldoc.Errorf(legaldoc.ENOTFOUND, "no successful analysis for %s", domain)
	}
	return analysis, nil
}

// Recent returns the most recently updated successful analyses.
func (a *Analyzer) Recent(ctx context.Context, limit int) ([]*legaldoc.Analysis, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	successful := true
	return a.Analyses.FindAnalyses(ctx, legaldoc.AnalysisFilter{
		Successful: &successful,
		Limit:      limit,
	})
}

func (a *Analyzer) fresh(analysis *legaldoc.Analysis) bool {
	ttl := a.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	return now().Sub(analysis.UpdatedAt) < ttl
}

// content is the part of a document that change detection compares.
type content struct {
	url, text string
}

func storedContents(docs []*legaldoc.StoredDocument) []content {
	var out []content
	for _, doc := range docs {
		if doc.Status != legaldoc.StatusFailed {
			out = append(out, content{doc.URL, doc.Content})
		}
	}
	return out
}

func extractedContents(docs []*legaldoc.Document) []content {
	var out []content
	for _, doc := range docs {
		if !doc.Failed() {
			out = append(out, content{doc.URL, doc.Content})
		}
	}
	return out
}

// unchanged reports whether the successfully extracted documents match the
// stored ones by URL and content, in order.
func unchanged(stored []*legaldoc.StoredDocument, extracted []*legaldoc.Document) bool {
	current := extractedContents(extracted)
	if len(current) == 0 {
		return false
	}
	return fingerprint(storedContents(stored)) == fingerprint(current)
}

func fingerprint(contents []content) uint64 {
	h := xxhash.New()
	for _, c := range contents {
		h.WriteString(c.url)
		h.WriteString("\x00")
		h.WriteString(c.text)
		h.WriteString("\x00")
	}
	return h.Sum64()
}
