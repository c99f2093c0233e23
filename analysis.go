package legaldoc

import (
	"context"
	"time"
)

// Analysis is the stored aggregate record for one domain.
type Analysis struct {
	ID     string `json:"id"`
	Domain string `json:"domain"`
	URL    string `json:"url"`

	Report Report `json:"report"`

	DocumentsFound []DocumentRef     `json:"documentsFound"`
	Documents      []*StoredDocument `json:"documents,omitempty"`

	Successful   bool   `json:"successful"`
	ErrorMessage string `json:"errorMessage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the analysis contains invalid fields.
func (a *Analysis) Validate() error {
	if a.Domain == "" {
		return Errorf(EINVALID, "analysis domain required")
	}
	if a.URL == "" {
		return Errorf(EINVALID, "analysis URL required")
	}
	return nil
}

// DocumentRef is the short description of a document kept on the aggregate.
type DocumentRef struct {
	Type  DocumentType `json:"type"`
	URL   string       `json:"url"`
	Title string       `json:"title"`
}

// StoredDocument is a persisted legal document belonging to an analysis.
type StoredDocument struct {
	ID            string       `json:"id"`
	AnalysisID    string       `json:"analysisId"`
	Type          DocumentType `json:"type"`
	URL           string       `json:"url"`
	Title         string       `json:"title"`
	Content       string       `json:"content"`
	ContentLength int          `json:"contentLength"`
	ContentHash   string       `json:"contentHash"`
	Language      string       `json:"language,omitempty"`
	Status        Status       `json:"status"`
	ExtractedAt   time.Time    `json:"extractedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *StoredDocument) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if !d.Type.Valid() {
		return Errorf(EINVALID, "invalid document type %q", d.Type)
	}
	return nil
}

// NewAnalysis builds an unsaved analysis from an extraction.
// Document refs and stored documents keep the extraction order.
func NewAnalysis(url, domain string, docs []*Document) *Analysis {
	a := &Analysis{
		Domain: domain,
		URL:    url,
	}
	for _, doc := range docs {
		a.DocumentsFound = append(a.DocumentsFound, DocumentRef{
			Type:  doc.Type,
			URL:   doc.URL,
			Title: doc.Title,
		})
		a.Documents = append(a.Documents, &StoredDocument{
			Type:     doc.Type,
			URL:      doc.URL,
			Title:    doc.Title,
			Content:  doc.Content,
			Language: doc.Language,
			Status:   doc.Status,
		})
	}
	return a
}

// AnalysisService represents a service for managing analyses.
type AnalysisService interface {
	// SaveAnalysis stores the analysis and its documents, replacing any
	// existing analysis for the same domain.
	SaveAnalysis(ctx context.Context, analysis *Analysis) error

	// FindAnalysisByDomain retrieves the analysis for a domain, with documents.
	// Returns ENOTFOUND if no analysis exists.
	FindAnalysisByDomain(ctx context.Context, domain string) (*Analysis, error)

	// FindAnalyses retrieves analyses matching the filter, newest first.
	// Documents are not loaded.
	FindAnalyses(ctx context.Context, filter AnalysisFilter) ([]*Analysis, error)

	// DeleteAnalysis removes the analysis for a domain and its documents.
	// Returns ENOTFOUND if no analysis exists.
	DeleteAnalysis(ctx context.Context, domain string) error
}

// AnalysisFilter represents a filter for FindAnalyses.
type AnalysisFilter struct {
	Domain     *string    `json:"domain"`
	Successful *bool      `json:"successful"`
	Since      *time.Time `json:"since"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
