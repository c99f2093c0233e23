// Package lingua implements legaldoc.LanguageDetector using lingua-go.
package lingua

import (
	"strings"

	"github.com/fwojciec/legaldoc"
	"github.com/pemistahl/lingua-go"
)

// SampleSize is the number of leading runes inspected per document.
const SampleSize = 2000

var _ legaldoc.LanguageDetector = (*Detector)(nil)

// DefaultLanguages are the languages distinguished by NewDetector when
// called without arguments.
var DefaultLanguages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Dutch,
	lingua.Portuguese,
}

// Detector detects the language of document text.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector creates a Detector limited to languages, or DefaultLanguages
// if none are given.
func NewDetector(languages ...lingua.Language) *Detector {
	if len(languages) == 0 {
		languages = DefaultLanguages
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			WithMinimumRelativeDistance(0.1).
			Build(),
	}
}

// DetectLanguage returns the lower-case ISO 639-1 code of the language of
// text, or "" if it cannot be determined reliably.
func (d *Detector) DetectLanguage(text string) string {
	text = sample(text, SampleSize)
	if strings.TrimSpace(text) == "" {
		return ""
	}
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(language.IsoCode639_1().String())
}

func sample(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
