// Package summarize derives per-section summaries of regulatory text.
package summarize

import (
	"regexp"
	"strings"
)

// Summarizer produces a summary for a single section of regulatory text.
// Implementations must be deterministic and total: every input string has
// exactly one output string. A real summarization backend can be substituted
// for the Simulated placeholder without touching the extraction pipeline.
type Summarizer interface {
	Summarize(sectionText string) string
}

var (
	// specialCharPattern matches characters outside the set kept by
	// normalization: Unicode letters and digits, underscore, whitespace,
	// and common punctuation.
	specialCharPattern = regexp.MustCompile("[^\\p{L}\\p{N}_\\s.,!@#$%^&*()=+~`-]")

	// whitespaceRunPattern matches maximal runs of whitespace.
	whitespaceRunPattern = regexp.MustCompile(`\s+`)
)

// Simulated is a stand-in for an external summarization service. It
// normalizes the section text and returns its words in reversed order.
type Simulated struct{}

// NewSimulated returns a Simulated summarizer.
func NewSimulated() *Simulated {
	return &Simulated{}
}

// Summarize normalizes sectionText (special characters and line breaks
// replaced with spaces, whitespace runs collapsed, ends trimmed) and rejoins
// its words in reversed order with single spaces.
func (s *Simulated) Summarize(sectionText string) string {
	normalized := specialCharPattern.ReplaceAllString(sectionText, " ")
	normalized = strings.ReplaceAll(normalized, "\n", " ")
	normalized = whitespaceRunPattern.ReplaceAllString(normalized, " ")
	normalized = strings.TrimSpace(normalized)

	words := strings.Fields(normalized)
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}

	return strings.Join(words, " ")
}
