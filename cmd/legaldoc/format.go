package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/legaldoc"
)

// truncateURL shortens a URL for display, keeping the end which is more informative.
func truncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// formatChars formats a character count in human-readable form.
func formatChars(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM chars", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk chars", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d chars", n)
	}
}

// statusMark is a one-character marker for a status.
func statusMark(s legaldoc.Status) string {
	switch s {
	case legaldoc.StatusSuccess:
		return "+"
	case legaldoc.StatusSkipped:
		return "-"
	default:
		return "!"
	}
}

func printReport(w io.Writer, r legaldoc.Report) {
	fmt.Fprintf(w, "Risk:         %s\n", r.RiskLevel)
	if r.RiskExplanation != "" {
		fmt.Fprintf(w, "              %s\n", r.RiskExplanation)
	}
	fmt.Fprintf(w, "Readability:  %d/%d\n", r.ReadabilityScore, legaldoc.MaxReadabilityScore)
	fmt.Fprintln(w)
	printSection(w, "Summary", r.Summary)
	printSection(w, "What you accept", r.WhatYouAccept)
	printSection(w, "Data collected", r.DataCollected)
	printSection(w, "Data usage", r.DataUsage)
	printSection(w, "Data sharing", r.DataSharing)
	printSection(w, "Retention", r.RetentionPeriod)
	printSection(w, "Critical points", r.CriticalPoints)
	if len(r.KeyPoints) > 0 {
		fmt.Fprintln(w, "Key points:")
		for _, p := range r.KeyPoints {
			fmt.Fprintf(w, "  - %s\n", p)
		}
		fmt.Fprintln(w)
	}
}

func printSection(w io.Writer, title, body string) {
	body = strings.TrimSpace(body)
	if body == "" {
		return
	}
	fmt.Fprintf(w, "%s:\n  %s\n\n", title, body)
}

func printStoredDocuments(w io.Writer, docs []*legaldoc.StoredDocument, full bool) {
	for _, doc := range docs {
		fmt.Fprintf(w, "  %s [%s] %s\n", statusMark(doc.Status), doc.Type.Label(), doc.Title)
		fmt.Fprintf(w, "      %s (%s)\n", truncateURL(doc.URL, 70), formatChars(doc.ContentLength))
		if full {
			fmt.Fprintf(w, "\n%s\n\n", doc.Content)
		}
	}
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
