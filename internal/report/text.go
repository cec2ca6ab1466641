package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// ruleWidth is the width of the separator lines.
const ruleWidth = 80

// Highlighter wraps every occurrence of a literal term in a string.
type Highlighter struct {
	pattern *regexp.Regexp
}

// NewHighlighter builds a Highlighter for term. Case is folded unless
// caseSensitive is set.
func NewHighlighter(term string, caseSensitive bool) *Highlighter {
	if term == "" {
		return &Highlighter{}
	}
	expr := regexp.QuoteMeta(term)
	if !caseSensitive {
		expr = "(?i)" + expr
	}
	return &Highlighter{pattern: regexp.MustCompile(expr)}
}

// Highlight returns s with each occurrence passed through wrap.
func (h *Highlighter) Highlight(s string, wrap func(string) string) string {
	if h.pattern == nil {
		return s
	}
	return h.pattern.ReplaceAllStringFunc(s, wrap)
}

// palette holds the colors of the text report.
type palette struct {
	banner *color.Color
	label  *color.Color
	rule   *color.Color
	match  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		banner: color.New(color.BgRed, color.FgWhite, color.Bold),
		label:  color.New(color.FgRed, color.Bold),
		rule:   color.New(color.FgRed, color.Bold),
		match:  color.New(color.BgRed, color.FgWhite, color.Bold),
	}
	for _, c := range []*color.Color{p.banner, p.label, p.rule, p.match} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Text renders the human-readable report.
// Files are listed in path order with every occurrence of the term highlighted.
func (r *Report) Text(enableColor bool) []byte {
	p := newPalette(enableColor)
	results := r.results()

	var b strings.Builder
	if results.Len() == 0 {
		b.WriteString(p.banner.Sprintf(" No matches found for '%s' ", r.Term))
		b.WriteString("\n")
		return []byte(b.String())
	}

	h := NewHighlighter(r.Term, r.CaseSensitive)
	wrap := func(s string) string { return p.match.Sprint(s) }

	b.WriteString("\n")
	b.WriteString(p.banner.Sprintf(" Search Results for '%s' ", r.Term))
	b.WriteString("\n")
	b.WriteString(p.rule.Sprint(strings.Repeat("=", ruleWidth)))
	b.WriteString("\n")

	for _, path := range results.SortedPaths() {
		matches, _ := results.Get(path)

		b.WriteString("\n")
		b.WriteString(p.banner.Sprintf(" File: %s (%d matches) ", r.relPath(path), len(matches)))
		b.WriteString("\n")

		for _, m := range matches {
			if m.IsStructured() {
				b.WriteString(p.label.Sprintf("JSON Path: %s", m.JSONPath))
			} else {
				b.WriteString(p.label.Sprintf("Line %d:", m.Line))
			}
			b.WriteString("\n  ")
			b.WriteString(h.Highlight(m.Text, wrap))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(p.banner.Sprintf(" Total: %d matches in %d files ", results.Total(), results.Len()))
	b.WriteString("\n")
	b.WriteString(p.label.Sprintf("Time taken: %.2f seconds", r.Stats.Elapsed.Seconds()))
	b.WriteString("\n")
	if r.Stats.Canceled {
		b.WriteString(p.label.Sprintf("Search cancelled after %d of %d files", r.Stats.FilesCompleted, r.Stats.FilesFound))
		b.WriteString("\n")
	}

	return []byte(b.String())
}

// plural returns "1 match" or "N matches".
func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
