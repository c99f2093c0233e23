// Package gemini implements legaldoc.Summarizer using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fwojciec/legaldoc"
	"github.com/kaptinlin/jsonrepair"
	"google.golang.org/genai"
)

// DefaultModel is used when NewSummarizer is given no model name.
const DefaultModel = "gemini-2.5-flash"

// MaxPromptContent caps the combined document text sent to the model.
const MaxPromptContent = 50000

// Ensure Summarizer implements legaldoc.Summarizer at compile time.
var _ legaldoc.Summarizer = (*Summarizer)(nil)

// Summarizer implements legaldoc.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Summarize asks the model for a structured report on the documents of domain.
// Documents whose extraction failed are left out of the prompt.
func (s *Summarizer) Summarize(ctx context.Context, docs []*legaldoc.Document, domain string) (*legaldoc.Report, error) {
	if len(docs) == 0 {
		return nil, legaldoc.Errorf(legaldoc.EINVALID, "documents required")
	}
	usable := make([]*legaldoc.Document, 0, len(docs))
	for _, doc := range docs {
		if !doc.Failed() {
			usable = append(usable, doc)
		}
	}
	if len(usable) == 0 {
		return nil, legaldoc.Errorf(legaldoc.EINVALID, "no extracted document content to summarize")
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildPrompt(usable, domain)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, legaldoc.Errorf(legaldoc.EINTERNAL, "gemini returned nil result")
	}

	return ParseSummary(result.Text())
}

// BuildConfig returns the GenerateContentConfig for summary requests.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a legal expert who explains website legal documents to the general public. Be clear, objective and factual.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// CombineDocuments joins documents as "=== title ===" sections separated by
// blank lines, truncated to MaxPromptContent.
func CombineDocuments(docs []*legaldoc.Document) string {
	sections := make([]string, len(docs))
	for i, doc := range docs {
		title := doc.Title
		if title == "" {
			title = "Document"
		}
		sections[i] = "=== " + title + " ===\n" + doc.Content
	}
	return legaldoc.TruncateContent(strings.Join(sections, "\n\n"), MaxPromptContent)
}

// BuildPrompt builds the user prompt for the documents of domain.
func BuildPrompt(docs []*legaldoc.Document, domain string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze the following legal documents of the website %q and provide a structured analysis.\n\n", domain)
	sb.WriteString("DOCUMENTS:\n")
	sb.WriteString(CombineDocuments(docs))
	sb.WriteString(`

Answer with a single JSON object with this structure:

{
  "summary": "Plain-language overview (200-300 words)",
  "what_you_accept": "What the user agrees to by using the service",
  "data_collected": "Types of data the service collects",
  "data_usage": "How the data is used",
  "data_sharing": "Who the data is shared with",
  "retention_period": "How long the data is kept",
  "critical_points": "Clauses that are concerning for the user",
  "key_points": ["Key point 1", "Key point 2", "Key point 3"],
  "readability_score": 7,
  "risk_level": "moderate",
  "risk_explanation": "Why this risk level was assigned"
}

INSTRUCTIONS:
- Use simple, accessible language.
- readability_score ranges from 1 (very hard) to 10 (very easy).
- risk_level is one of "low", "moderate" or "high".
- Point out problematic or unusual clauses.
- Focus on the rights and obligations of the user.
`)
	return sb.String()
}

// ParseSummary decodes a model response into a Report. Text around the
// outermost JSON object is ignored and malformed JSON is repaired before a
// second attempt. A missing readability score defaults to 5; scores are
// clamped to the valid range and unknown risk levels become moderate.
func ParseSummary(text string) (*legaldoc.Report, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, legaldoc.Errorf(legaldoc.EINTERNAL, "no JSON object in model response")
	}
	raw := text[start : end+1]

	var s summary
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		repaired, rerr := jsonrepair.JSONRepair(raw)
		if rerr != nil {
			return nil, legaldoc.Errorf(legaldoc.EINTERNAL, "invalid JSON in model response: %v", err)
		}
		s = summary{}
		if err := json.Unmarshal([]byte(repaired), &s); err != nil {
			return nil, legaldoc.Errorf(legaldoc.EINTERNAL, "invalid JSON in model response: %v", err)
		}
	}

	score := 5
	if s.ReadabilityScore != nil {
		score = int(*s.ReadabilityScore)
	}

	return &legaldoc.Report{
		Summary:          string(s.Summary),
		WhatYouAccept:    string(s.WhatYouAccept),
		DataCollected:    string(s.DataCollected),
		DataUsage:        string(s.DataUsage),
		DataSharing:      string(s.DataSharing),
		RetentionPeriod:  string(s.RetentionPeriod),
		CriticalPoints:   string(s.CriticalPoints),
		KeyPoints:        s.KeyPoints,
		ReadabilityScore: min(max(score, legaldoc.MinReadabilityScore), legaldoc.MaxReadabilityScore),
		RiskLevel:        legaldoc.ParseRiskLevel(strings.ToLower(strings.TrimSpace(s.RiskLevel))),
		RiskExplanation:  string(s.RiskExplanation),
	}, nil
}

// summary is the wire form of a model response.
type summary struct {
	Summary          text     `json:"summary"`
	WhatYouAccept    text     `json:"what_you_accept"`
	DataCollected    text     `json:"data_collected"`
	DataUsage        text     `json:"data_usage"`
	DataSharing      text     `json:"data_sharing"`
	RetentionPeriod  text     `json:"retention_period"`
	CriticalPoints   text     `json:"critical_points"`
	KeyPoints        []string `json:"key_points"`
	ReadabilityScore *score   `json:"readability_score"`
	RiskLevel        string   `json:"risk_level"`
	RiskExplanation  text     `json:"risk_explanation"`
}

// text accepts a JSON string or a list of strings, joined with "; ".
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = text(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return fmt.Errorf("expected string or list of strings: %w", err)
	}
	*t = text(strings.Join(list, "; "))
	return nil
}

// score accepts a JSON number or a numeric string such as "7" or "7/10".
type score int

func (s *score) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*s = score(math.Round(f))
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return fmt.Errorf("expected number: %w", err)
	}
	str, _, _ = strings.Cut(strings.TrimSpace(str), "/")
	f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return fmt.Errorf("expected number: %w", err)
	}
	*s = score(math.Round(f))
	return nil
}
