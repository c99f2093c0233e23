package main

import (
	"bytes"
	"testing"

	"github.com/fwojciec/legaldoc"
	"github.com/stretchr/testify/assert"
)

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		maxLen int
		want   string
	}{
		{name: "short URL unchanged", url: "https://example.com/terms", maxLen: 70, want: "https://example.com/terms"},
		{name: "keeps the end", url: "https://example.com/legal/privacy", maxLen: 15, want: "...egal/privacy"},
		{name: "tiny limit cuts", url: "https://example.com", maxLen: 3, want: "htt"},
		{name: "zero limit", url: "https://example.com", maxLen: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := truncateURL(tt.url, tt.maxLen)

			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), max(tt.maxLen, 0))
		})
	}
}

func TestFormatChars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 chars", formatChars(512))
	assert.Equal(t, "12.3k chars", formatChars(12_345))
	assert.Equal(t, "1.5M chars", formatChars(1_500_000))
}

func TestStatusMark(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+", statusMark(legaldoc.StatusSuccess))
	assert.Equal(t, "-", statusMark(legaldoc.StatusSkipped))
	assert.Equal(t, "!", statusMark(legaldoc.StatusFailed))
}

func TestPrintReport_SkipsEmptySections(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	printReport(&buf, legaldoc.Report{Summary: "Short.", RiskLevel: legaldoc.RiskLow, ReadabilityScore: 9})

	output := buf.String()
	assert.Contains(t, output, "Summary:\n  Short.")
	assert.Contains(t, output, "Readability:  9/10")
	assert.NotContains(t, output, "Data sharing")
	assert.NotContains(t, output, "Key points")
}
