package matching

import (
	"strings"
	"unicode"
)

// KeywordMatcher decides whether a job's text overlaps a chatbot career
// suggestion. The interface isolates the substring heuristics so they can
// later be swapped for a structured taxonomy or embedding-based matcher
// without touching the ranking and normalization logic.
type KeywordMatcher interface {
	// Keywords extracts the match tokens from a lowercased career name.
	Keywords(careerName string) []string
	// Matches reports whether the career overlaps the job. jobTitle and
	// jobText must already be lowercased.
	Matches(careerName, jobTitle, jobText string) bool
}

type substringMatcher struct{}

// NewSubstringMatcher returns the default keyword matcher: career names
// split on whitespace, '+', '&' and ',' into tokens longer than two
// characters, matched bidirectionally as substrings.
func NewSubstringMatcher() KeywordMatcher {
	return substringMatcher{}
}

func (substringMatcher) Keywords(careerName string) []string {
	tokens := strings.FieldsFunc(careerName, func(r rune) bool {
		return unicode.IsSpace(r) || r == '+' || r == '&' || r == ','
	})
	keywords := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) > 2 {
			keywords = append(keywords, tok)
		}
	}
	return keywords
}

func (m substringMatcher) Matches(careerName, jobTitle, jobText string) bool {
	for _, kw := range m.Keywords(careerName) {
		if strings.Contains(jobText, kw) || strings.Contains(jobTitle, kw) {
			return true
		}
	}
	// Exact or partial career name match
	return strings.Contains(jobTitle, careerName) ||
		strings.Contains(careerName, jobTitle) ||
		strings.Contains(jobText, careerName)
}
