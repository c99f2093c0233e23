package mock

import "github.com/fwojciec/legaldoc"

var _ legaldoc.LinkScanner = (*LinkScanner)(nil)

// LinkScanner is a mock implementation of legaldoc.LinkScanner.
type LinkScanner struct {
	ScanLinksFn func(html, baseURL string) ([]legaldoc.Link, error)
}

func (s *LinkScanner) ScanLinks(html, baseURL string) ([]legaldoc.Link, error) {
	return s.ScanLinksFn(html, baseURL)
}

var _ legaldoc.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of legaldoc.Classifier.
type Classifier struct {
	ClassifyFn func(href, text string) (legaldoc.DocumentType, bool)
}

func (c *Classifier) Classify(href, text string) (legaldoc.DocumentType, bool) {
	return c.ClassifyFn(href, text)
}
