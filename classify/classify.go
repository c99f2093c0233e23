// Package classify maps candidate links to legal document types using
// ordered families of regular expressions.
package classify

import (
	"regexp"
	"strings"

	"github.com/fwojciec/legaldoc"
)

// Ensure Classifier implements legaldoc.Classifier at compile time.
var _ legaldoc.Classifier = (*Classifier)(nil)

// Family is a named set of patterns identifying one document type.
type Family struct {
	Type     legaldoc.DocumentType
	Patterns []*regexp.Regexp
}

// NewFamily compiles patterns case-insensitively into a Family.
// It panics if a pattern does not compile.
func NewFamily(typ legaldoc.DocumentType, patterns ...string) Family {
	f := Family{Type: typ}
	for _, p := range patterns {
		f.Patterns = append(f.Patterns, regexp.MustCompile("(?i)"+p))
	}
	return f
}

// Match reports whether any pattern of the family matches s.
func (f Family) Match(s string) bool {
	for _, re := range f.Patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// DefaultFamilies returns the built-in families in precedence order:
// terms, privacy, cookies, legal.
//
// Order matters. The bare "cookie" pattern is broad, so a link such as
// "Cookie & Privacy Policy" classifies as privacy only because privacy is
// checked first. This is a heuristic, not a disambiguation rule.
func DefaultFamilies() []Family {
	return []Family{
		NewFamily(legaldoc.TypeTerms,
			`terms?[-_\s]*(of[-_\s]*)?use`,
			`terms?[-_\s]*(of[-_\s]*)?service`,
			`terms?[-_\s]*and[-_\s]*conditions?`,
			`conditions?[-_\s]*(of[-_\s]*)?use`,
			`user[-_\s]*agreement`,
			`cgu`,
			`cgv`,
		),
		NewFamily(legaldoc.TypePrivacy,
			`privacy[-_\s]*policy`,
			`privacy[-_\s]*notice`,
			`data[-_\s]*protection`,
			`confidentialit[eé]`,
			`donn[eé]es[-_\s]*personnelles`,
		),
		NewFamily(legaldoc.TypeCookies,
			`cookie[-_\s]*policy`,
			`cookie[-_\s]*notice`,
			`cookies?`,
		),
		NewFamily(legaldoc.TypeLegal,
			`legal[-_\s]*notice`,
			`mentions?[-_\s]*l[eé]gales?`,
			`legal[-_\s]*information`,
			`imprint`,
		),
	}
}

// Classifier tests links against an ordered list of families.
type Classifier struct {
	families []Family
}

// NewClassifier creates a Classifier. Without families, DefaultFamilies is used.
func NewClassifier(families ...Family) *Classifier {
	if len(families) == 0 {
		families = DefaultFamilies()
	}
	return &Classifier{families: families}
}

// Classify lower-cases href and text joined by a space and returns the
// type of the first family with a matching pattern.
func (c *Classifier) Classify(href, text string) (legaldoc.DocumentType, bool) {
	combined := strings.ToLower(href + " " + text)
	for _, f := range c.families {
		if f.Match(combined) {
			return f.Type, true
		}
	}
	return "", false
}

// Families returns the families in precedence order.
func (c *Classifier) Families() []Family {
	return c.families
}
