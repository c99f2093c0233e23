package legaldoc

// Link is a hyperlink found on a page.
type Link struct {
	// URL is the href resolved against the page URL, without fragment.
	URL string

	// Href is the raw attribute value as written in the markup.
	Href string

	// Text is the visible anchor text with whitespace collapsed.
	Text string
}

// LinkScanner enumerates the hyperlinks of a page.
type LinkScanner interface {
	// ScanLinks parses HTML and returns every link with a resolvable
	// http(s) href, in document order. Duplicates are not removed.
	// The baseURL is used to resolve relative URLs.
	ScanLinks(html string, baseURL string) ([]Link, error)
}

// Classifier maps a link to a legal document type.
type Classifier interface {
	// Classify returns the document type for the link's href and anchor
	// text. The bool result is false when the link is not a legal document.
	Classify(href, text string) (DocumentType, bool)
}
