package legaldoc

import "context"

// DiscoveryMethod reports which strategy produced a discovery result.
type DiscoveryMethod string

// Discovery methods.
const (
	MethodLinks       DiscoveryMethod = "links"
	MethodCommonPaths DiscoveryMethod = "common-paths"
	MethodNone        DiscoveryMethod = "none"
)

// ProbeResult is the outcome of probing one conventional path.
type ProbeResult struct {
	Path   string       `json:"path"`
	URL    string       `json:"url"`
	Type   DocumentType `json:"type"`
	Status Status       `json:"status"`
	Reason string       `json:"reason,omitempty"`
}

// Discovery is the outcome of locating candidate documents for a seed page.
type Discovery struct {
	SeedURL    string          `json:"seedUrl"`
	Method     DiscoveryMethod `json:"method"`
	Candidates []Candidate     `json:"candidates"`

	// Probes holds per-path outcomes when the common-path fallback ran.
	Probes []ProbeResult `json:"probes,omitempty"`

	// SeedErr is the seed page fetch or parse failure, if any.
	// A failed seed is not fatal; discovery falls back to probing.
	SeedErr error `json:"-"`
}

// Extraction is the end-to-end result for one website.
type Extraction struct {
	URL       string      `json:"url"`
	Domain    string      `json:"domain"`
	Documents []*Document `json:"documents"`
	Discovery *Discovery  `json:"discovery"`
}

// Empty reports whether no legal documents were discovered.
func (e *Extraction) Empty() bool {
	return len(e.Documents) == 0
}

// DocumentExtractor runs the whole discovery and extraction pipeline.
type DocumentExtractor interface {
	// ExtractAll normalizes rawURL, discovers candidate documents and
	// extracts each of them. Network failures never produce an error: they
	// degrade into sentinel documents or an empty document list. The error
	// is non-nil only when ctx is done, in which case the partial
	// extraction is still returned.
	ExtractAll(ctx context.Context, rawURL string) (*Extraction, error)
}
