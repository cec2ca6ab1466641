package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/NightKikko/datasearcher/internal/models"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("\x1b[33m")
	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}

		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	b.WriteString("\x1b[0m")

	fmt.Fprint(out, b.String())
}

// WarnCancelled reports a run that stopped before every file was processed.
func WarnCancelled(stats models.RunStatistics, cause error) Warning {
	w := Warning{
		Title:   "Search stopped early",
		Message: fmt.Sprintf("Completed %d of %d files; results below are partial", stats.FilesCompleted, stats.FilesFound),
	}
	if cause != nil {
		w.Message += fmt.Sprintf(" (%v)", cause)
	}
	return w
}

// WarnFileErrors reports files that could not be scanned.
// Only the first few paths are listed.
func WarnFileErrors(paths []string, logPath string) Warning {
	const maxListed = 10

	w := Warning{
		Title: fmt.Sprintf("%d files could not be searched", len(paths)),
	}
	if len(paths) > maxListed {
		w.Files = append([]string(nil), paths[:maxListed]...)
		w.Message = fmt.Sprintf("%d more not shown", len(paths)-maxListed)
	} else {
		w.Files = append([]string(nil), paths...)
	}
	if logPath != "" {
		w.Suggestion = fmt.Sprintf("See %s for details", logPath)
	}
	return w
}
