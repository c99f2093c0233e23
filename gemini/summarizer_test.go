package gemini_test

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/legaldoc"
	"github.com/fwojciec/legaldoc/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizer_Summarize_ReturnsErrorWhenNoDocuments(t *testing.T) {
	t.Parallel()

	s := gemini.NewSummarizer(nil, "") // nil client ok for this test

	_, err := s.Summarize(context.Background(), nil, "example.com")

	require.Error(t, err)
	assert.Equal(t, legaldoc.EINVALID, legaldoc.ErrorCode(err))
	assert.Contains(t, legaldoc.ErrorMessage(err), "documents required")
}

func TestSummarizer_Summarize_ReturnsErrorWhenAllDocumentsFailed(t *testing.T) {
	t.Parallel()

	s := gemini.NewSummarizer(nil, "")

	_, err := s.Summarize(context.Background(), []*legaldoc.Document{
		{Title: legaldoc.ExtractionErrorTitle, Status: legaldoc.StatusFailed},
	}, "example.com")

	require.Error(t, err)
	assert.Equal(t, legaldoc.EINVALID, legaldoc.ErrorCode(err))
}

func TestBuildConfig_RequestsJSON(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "legal")
	assert.Equal(t, "application/json", config.ResponseMIMEType)
	require.NotNil(t, config.Temperature)
}

func TestCombineDocuments(t *testing.T) {
	t.Parallel()

	t.Run("joins titled sections with blank lines", func(t *testing.T) {
		t.Parallel()

		got := gemini.CombineDocuments([]*legaldoc.Document{
			{Title: "Terms", Content: "Be nice."},
			{Content: "Untitled."},
		})

		assert.Equal(t, "=== Terms ===\nBe nice.\n\n=== Document ===\nUntitled.", got)
	})

	t.Run("caps combined content", func(t *testing.T) {
		t.Parallel()

		got := gemini.CombineDocuments([]*legaldoc.Document{
			{Title: "A", Content: strings.Repeat("a", gemini.MaxPromptContent)},
			{Title: "B", Content: "tail"},
		})

		assert.True(t, strings.HasSuffix(got, legaldoc.TruncationMarker))
		assert.Equal(t, gemini.MaxPromptContent+utf8.RuneCountInString(legaldoc.TruncationMarker), utf8.RuneCountInString(got))
		assert.NotContains(t, got, "tail")
	})
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildPrompt([]*legaldoc.Document{
		{Title: "Privacy Policy", Content: "We collect email."},
	}, "example.com")

	assert.Contains(t, prompt, `"example.com"`)
	assert.Contains(t, prompt, "=== Privacy Policy ===\nWe collect email.")
	assert.Contains(t, prompt, `"risk_level"`)
	assert.Contains(t, prompt, `"readability_score"`)
}

func TestParseSummary(t *testing.T) {
	t.Parallel()

	t.Run("parses a plain JSON object", func(t *testing.T) {
		t.Parallel()

		report, err := gemini.ParseSummary(`{
			"summary": "Short.",
			"what_you_accept": "Everything.",
			"data_collected": "Email.",
			"data_usage": "Ads.",
			"data_sharing": "Partners.",
			"retention_period": "Forever.",
			"critical_points": "Arbitration.",
			"key_points": ["one", "two"],
			"readability_score": 4,
			"risk_level": "high",
			"risk_explanation": "Lots of sharing."
		}`)

		require.NoError(t, err)
		assert.Equal(t, &legaldoc.Report{
			Summary:          "Short.",
			WhatYouAccept:    "Everything.",
			DataCollected:    "Email.",
			DataUsage:        "Ads.",
			DataSharing:      "Partners.",
			RetentionPeriod:  "Forever.",
			CriticalPoints:   "Arbitration.",
			KeyPoints:        []string{"one", "two"},
			ReadabilityScore: 4,
			RiskLevel:        legaldoc.RiskHigh,
			RiskExplanation:  "Lots of sharing.",
		}, report)
	})

	t.Run("ignores text around the object", func(t *testing.T) {
		t.Parallel()

		report, err := gemini.ParseSummary("Here you go:\n```json\n{\"summary\": \"Fenced.\"}\n```\nDone.")

		require.NoError(t, err)
		assert.Equal(t, "Fenced.", report.Summary)
	})

	t.Run("repairs malformed JSON", func(t *testing.T) {
		t.Parallel()

		report, err := gemini.ParseSummary(`{"summary": "Repaired.", "key_points": ["a", "b",],}`)

		require.NoError(t, err)
		assert.Equal(t, "Repaired.", report.Summary)
		assert.Equal(t, []string{"a", "b"}, report.KeyPoints)
	})

	t.Run("joins list answers for text fields", func(t *testing.T) {
		t.Parallel()

		report, err := gemini.ParseSummary(`{"data_collected": ["email", "location"]}`)

		require.NoError(t, err)
		assert.Equal(t, "email; location", report.DataCollected)
	})

	t.Run("normalizes score and risk level", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			input string
			score int
			risk  legaldoc.RiskLevel
		}{
			{`{"readability_score": 42, "risk_level": "LOW"}`, 10, legaldoc.RiskLow},
			{`{"readability_score": -3, "risk_level": "extreme"}`, 1, legaldoc.RiskModerate},
			{`{"readability_score": "7/10"}`, 7, legaldoc.RiskModerate},
			{`{"readability_score": 6.6}`, 7, legaldoc.RiskModerate},
			{`{}`, 5, legaldoc.RiskModerate},
		}
		for _, tt := range tests {
			report, err := gemini.ParseSummary(tt.input)
			require.NoError(t, err, tt.input)
			assert.Equal(t, tt.score, report.ReadabilityScore, tt.input)
			assert.Equal(t, tt.risk, report.RiskLevel, tt.input)
		}
	})

	t.Run("returns EINTERNAL without a JSON object", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParseSummary("I cannot help with that.")

		require.Error(t, err)
		assert.Equal(t, legaldoc.EINTERNAL, legaldoc.ErrorCode(err))
	})
}
