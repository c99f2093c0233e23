// Package goquery implements HTML parsing for legaldoc using goquery:
// hyperlink scanning and content extraction.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/legaldoc"
)

// Ensure LinkScanner implements legaldoc.LinkScanner at compile time.
var _ legaldoc.LinkScanner = (*LinkScanner)(nil)

// LinkScanner enumerates every hyperlink of a page.
type LinkScanner struct{}

// NewLinkScanner creates a new LinkScanner.
func NewLinkScanner() *LinkScanner {
	return &LinkScanner{}
}

// ScanLinks parses HTML and returns all a[href] links in document order.
// Hrefs are resolved against baseURL with fragments stripped.
// Non-HTTP links (javascript:, mailto:, tel:, data:) are skipped.
// External links are kept: sites often point at a parent company's policies.
func (s *LinkScanner) ScanLinks(html string, baseURL string) ([]legaldoc.Link, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, legaldoc.Errorf(legaldoc.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, legaldoc.Errorf(legaldoc.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []legaldoc.Link
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		href = strings.TrimSpace(href)
		if !exists || href == "" {
			return
		}

		// Skip non-HTTP links (javascript:, mailto:, etc.)
		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		links = append(links, legaldoc.Link{
			URL:  resolved,
			Href: href,
			Text: collapseSpaces(sel.Text()),
		})
	})

	return links, nil
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or does not resolve to
// an http(s) URL. Fragments are stripped for deduplication purposes.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	resolved.RawFragment = ""

	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	if resolved.Host == "" {
		return ""
	}
	return resolved.String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

// collapseSpaces trims s and replaces every whitespace run with one space.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
