package legaldoc

import (
	"context"
	"unicode/utf8"
)

// DocumentType is the classification bucket of a legal document.
type DocumentType string

// Document types. TypeOther is never assigned by classification; links that
// match no family are discarded.
const (
	TypeTerms   DocumentType = "terms"
	TypePrivacy DocumentType = "privacy"
	TypeCookies DocumentType = "cookies"
	TypeLegal   DocumentType = "legal"
	TypeOther   DocumentType = "other"
)

// Valid reports whether t is one of the known document types.
func (t DocumentType) Valid() bool {
	switch t {
	case TypeTerms, TypePrivacy, TypeCookies, TypeLegal, TypeOther:
		return true
	}
	return false
}

// Label returns a human-readable name for the document type.
func (t DocumentType) Label() string {
	switch t {
	case TypeTerms:
		return "Terms of use"
	case TypePrivacy:
		return "Privacy policy"
	case TypeCookies:
		return "Cookie policy"
	case TypeLegal:
		return "Legal notice"
	default:
		return "Other"
	}
}

// Status is the outcome of a single lookup step.
type Status string

// Step outcomes.
const (
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Candidate is a link hypothesized to point at a legal document,
// before its content is fetched.
type Candidate struct {
	Type     DocumentType `json:"type"`
	URL      string       `json:"url"`
	LinkText string       `json:"linkText"`
}

// Document is an extracted legal document.
//
// A document whose fetch or parse failed is still returned, with Status set
// to StatusFailed and Title/Content describing the failure, so one bad
// document never aborts a batch.
type Document struct {
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	URL      string       `json:"url"`
	Type     DocumentType `json:"type"`
	LinkText string       `json:"linkText"`
	Language string       `json:"language,omitempty"`
	Status   Status       `json:"status"`
	Reason   string       `json:"reason,omitempty"`
}

// Failed reports whether the document is an extraction error sentinel.
func (d *Document) Failed() bool {
	return d.Status == StatusFailed
}

// DocumentWriter exports extracted documents.
type DocumentWriter interface {
	// WriteDocument stores a successfully extracted document and returns
	// where it was written. Returns EINVALID for failed documents.
	WriteDocument(ctx context.Context, doc *Document) (string, error)
}

// Content limits.
const (
	// MaxContentLength is the hard cap, in characters, on Document.Content.
	MaxContentLength = 100000

	// TruncationMarker is appended to content cut at a length cap.
	TruncationMarker = "... [content truncated]"
)

// Sentinel values for documents that could not be extracted.
const (
	ExtractionErrorTitle  = "Extraction error"
	ExtractionErrorPrefix = "Unable to extract content: "
)

// TruncateContent cuts content to at most limit characters (runes) and
// appends TruncationMarker. Content within the limit is returned unchanged.
func TruncateContent(content string, limit int) string {
	if utf8.RuneCountInString(content) <= limit {
		return content
	}
	n := 0
	for i := range content {
		if n == limit {
			return content[:i] + TruncationMarker
		}
		n++
	}
	return content
}
