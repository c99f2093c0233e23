package legaldoc

// ExtractResult holds the text extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title: <title>, else the first h1/h2.
	Title string

	// Content is the whitespace-normalized text of the content region.
	// Navigation, header, footer, script and style have been removed.
	Content string
}

// ContentExtractor extracts the substantive text of a document page.
type ContentExtractor interface {
	// Extract parses raw HTML and returns its title and content text.
	Extract(html string) (*ExtractResult, error)
}

// LanguageDetector identifies the natural language of extracted text.
type LanguageDetector interface {
	// DetectLanguage returns a lower-case ISO 639-1 code, or an empty
	// string when the language cannot be determined reliably.
	DetectLanguage(text string) string
}
