package report

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
)

// Markdown renders the report as a Markdown document with one section per file.
func (r *Report) Markdown() []byte {
	results := r.results()

	var b strings.Builder
	fmt.Fprintf(&b, "# Search results for %s\n\n", codeSpan(r.Term))
	fmt.Fprintf(&b, "- Root: %s\n", codeSpan(r.Root))
	fmt.Fprintf(&b, "- Matches: %s in %s\n", plural(results.Total(), "match", "matches"), plural(results.Len(), "file", "files"))
	fmt.Fprintf(&b, "- Files completed: %d of %d\n", r.Stats.FilesCompleted, r.Stats.FilesFound)
	fmt.Fprintf(&b, "- Files searched: %d\n", r.Stats.FilesProcessed)
	if r.Stats.FileErrors > 0 {
		fmt.Fprintf(&b, "- File errors: %d\n", r.Stats.FileErrors)
	}
	fmt.Fprintf(&b, "- Case sensitive: %t\n", r.CaseSensitive)
	fmt.Fprintf(&b, "- Time taken: %.2f seconds\n", r.Stats.Elapsed.Seconds())
	if r.RunID != "" {
		fmt.Fprintf(&b, "- Run ID: %s\n", codeSpan(r.RunID))
	}
	if r.Stats.Canceled {
		b.WriteString("- Status: cancelled\n")
	}

	if results.Len() == 0 {
		fmt.Fprintf(&b, "\nNo matches found for %s.\n", codeSpan(r.Term))
		return []byte(b.String())
	}

	for _, path := range results.SortedPaths() {
		matches, _ := results.Get(path)

		var body strings.Builder
		for _, m := range matches {
			if m.IsStructured() {
				fmt.Fprintf(&body, "%s\n", m.Text)
			} else {
				fmt.Fprintf(&body, "%d: %s\n", m.Line, m.Text)
			}
		}

		fence := fenceFor(body.String())
		fmt.Fprintf(&b, "\n## %s (%s)\n\n", codeSpan(r.relPath(path)), plural(len(matches), "match", "matches"))
		fmt.Fprintf(&b, "%stext\n%s%s\n", fence, body.String(), fence)
	}

	return []byte(b.String())
}

// HTML renders the Markdown report as a standalone HTML page.
func (r *Report) HTML() ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.New().Convert(r.Markdown(), &body); err != nil {
		return nil, fmt.Errorf("failed to render HTML report: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>datasearcher: %s</title>\n", html.EscapeString(r.Term))
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

// codeSpan wraps s in a backtick run longer than any inside it.
func codeSpan(s string) string {
	ticks := strings.Repeat("`", longestRun(s, '`')+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		return ticks + " " + s + " " + ticks
	}
	return ticks + s + ticks
}

// fenceFor returns a code fence longer than any backtick run in body.
func fenceFor(body string) string {
	n := longestRun(body, '`') + 1
	if n < 3 {
		n = 3
	}
	return strings.Repeat("`", n)
}

func longestRun(s string, c byte) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}
