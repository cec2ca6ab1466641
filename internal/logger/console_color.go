package logger

import (
	"fmt"

	"github.com/NightKikko/datasearcher/internal/models"
	"github.com/fatih/color"
)

// colorScheme defines consistent colors for summary metrics.
// Green: matches found
// Red: failures
// Yellow: cancellation
// Cyan: labels
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	warn    *color.Color
	label   *color.Color
	value   *color.Color
}

// newColorScheme creates the standard color scheme for metrics.
func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		label:   color.New(color.FgCyan),
		value:   color.New(color.FgWhite),
	}
}

// formatColorizedMetric formats a single metric with colorized label and value.
// Format: "label: value"
func formatColorizedMetric(label string, value interface{}, scheme *colorScheme) string {
	return fmt.Sprintf("%s: %s", scheme.label.Sprint(label), scheme.value.Sprintf("%v", value))
}

// formatColorizedSummary renders the summary with a colored verb and metrics.
// Format: "Search completed. files: N, matches: M, errors: E (duration)"
func formatColorizedSummary(verb string, stats models.RunStatistics, scheme *colorScheme) string {
	verbColored := scheme.success.Sprint(verb)
	if verb != "completed" {
		verbColored = scheme.warn.Sprint(verb)
	}

	matches := scheme.value.Sprint(stats.MatchesFound)
	if stats.MatchesFound > 0 {
		matches = scheme.success.Sprint(stats.MatchesFound)
	}

	msg := fmt.Sprintf("Search %s. %s, %s: %s",
		verbColored,
		formatColorizedMetric("files", stats.FilesProcessed, scheme),
		scheme.label.Sprint("matches"), matches)

	if stats.FileErrors > 0 {
		msg += fmt.Sprintf(", %s: %s", scheme.label.Sprint("errors"), scheme.fail.Sprint(stats.FileErrors))
	}

	return msg + fmt.Sprintf(" (%s)", formatDuration(stats.Elapsed))
}
