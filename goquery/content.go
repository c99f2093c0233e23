package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/legaldoc"
)

// Ensure ContentExtractor implements legaldoc.ContentExtractor at compile time.
var _ legaldoc.ContentExtractor = (*ContentExtractor)(nil)

// boilerplateSelector matches structural elements removed before extraction.
const boilerplateSelector = "script, style, nav, header, footer"

// contentClassPattern matches class attributes of likely content containers.
var contentClassPattern = regexp.MustCompile(`content|main|body`)

// ContentExtractor extracts the title and substantive text of a page.
type ContentExtractor struct{}

// NewContentExtractor creates a new ContentExtractor.
func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

// Extract parses raw HTML and returns its title and normalized content text.
//
// Title resolution: <title>, else the first h1 or h2, else empty.
// Content region: <main>, else <article>, else the first element whose class
// matches content|main|body, else <body>.
func (e *ContentExtractor) Extract(rawHTML string) (*legaldoc.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, legaldoc.Errorf(legaldoc.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, legaldoc.Errorf(legaldoc.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(boilerplateSelector).Remove()

	return &legaldoc.ExtractResult{
		Title:   extractTitle(doc),
		Content: NormalizeText(blockText(contentRegion(doc).Nodes)),
	}, nil
}

func extractTitle(doc *goquery.Document) string {
	if title := collapseSpaces(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return collapseSpaces(doc.Find("h1, h2").First().Text())
}

func contentRegion(doc *goquery.Document) *goquery.Selection {
	if sel := doc.Find("main").First(); sel.Length() > 0 {
		return sel
	}
	if sel := doc.Find("article").First(); sel.Length() > 0 {
		return sel
	}
	classed := doc.Find("body [class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return contentClassPattern.MatchString(class)
	})
	if sel := classed.First(); sel.Length() > 0 {
		return sel
	}
	if sel := doc.Find("body").First(); sel.Length() > 0 {
		return sel
	}
	return doc.Selection
}
