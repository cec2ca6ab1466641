package scanner

import "strings"

// Matcher tests strings for a literal occurrence of the search term.
type Matcher struct {
	term          string
	folded        string
	caseSensitive bool
}

// NewMatcher creates a Matcher for term. Unless caseSensitive is set,
// comparisons are made on lower-cased text.
func NewMatcher(term string, caseSensitive bool) Matcher {
	return Matcher{
		term:          term,
		folded:        strings.ToLower(term),
		caseSensitive: caseSensitive,
	}
}

// Term returns the search term as given.
func (m Matcher) Term() string {
	return m.term
}

// CaseSensitive reports whether the matcher compares without folding.
func (m Matcher) CaseSensitive() bool {
	return m.caseSensitive
}

// Match reports whether s contains the term under the configured case rule.
func (m Matcher) Match(s string) bool {
	if m.caseSensitive {
		return strings.Contains(s, m.term)
	}
	return strings.Contains(strings.ToLower(s), m.folded)
}

// MatchExact reports whether s contains the term, always comparing case-sensitively.
func (m Matcher) MatchExact(s string) bool {
	return strings.Contains(s, m.term)
}
