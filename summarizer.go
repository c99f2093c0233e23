package legaldoc

import "context"

// RiskLevel grades how concerning a site's legal terms are for its users.
type RiskLevel string

// Risk levels.
const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// ParseRiskLevel maps free text to a RiskLevel, defaulting to RiskModerate.
func ParseRiskLevel(s string) RiskLevel {
	switch RiskLevel(s) {
	case RiskLow, RiskModerate, RiskHigh:
		return RiskLevel(s)
	}
	return RiskModerate
}

// Report is a structured plain-language summary of a site's legal documents.
type Report struct {
	Summary          string    `json:"summary"`
	WhatYouAccept    string    `json:"what_you_accept"`
	DataCollected    string    `json:"data_collected"`
	DataUsage        string    `json:"data_usage"`
	DataSharing      string    `json:"data_sharing"`
	RetentionPeriod  string    `json:"retention_period"`
	CriticalPoints   string    `json:"critical_points"`
	KeyPoints        []string  `json:"key_points"`
	ReadabilityScore int       `json:"readability_score"`
	RiskLevel        RiskLevel `json:"risk_level"`
	RiskExplanation  string    `json:"risk_explanation"`
}

// Readability score bounds (1 = very hard, 10 = very easy).
const (
	MinReadabilityScore = 1
	MaxReadabilityScore = 10
)

// Summarizer produces a Report from extracted documents.
type Summarizer interface {
	// Summarize analyzes the documents of a domain.
	// Returns EINVALID if docs is empty.
	Summarize(ctx context.Context, docs []*Document, domain string) (*Report, error)
}
