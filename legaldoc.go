// Package legaldoc locates and extracts legal documents (terms of use,
// privacy policy, cookie policy, legal notices) from a website given only
// its home URL, producing normalized plain text for downstream summarization.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gemini/).
package legaldoc
