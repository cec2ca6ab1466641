package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/NightKikko/datasearcher/internal/filelock"
	"github.com/NightKikko/datasearcher/internal/models"
	"github.com/mattn/go-isatty"
)

// Output formats
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Formats lists every supported format name.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatHTML}

// IsFormat reports whether name is a supported format.
func IsFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

// Report is the outcome of one search run, ready for rendering.
type Report struct {
	Term          string
	Root          string
	CaseSensitive bool
	Results       *models.ResultSet
	Stats         models.RunStatistics
	RunID         string
}

// results returns the ResultSet, never nil.
func (r *Report) results() *models.ResultSet {
	if r.Results == nil {
		return models.NewResultSet()
	}
	return r.Results
}

// relPath returns path relative to the search root when possible.
func (r *Report) relPath(path string) string {
	rel, err := filepath.Rel(r.Root, path)
	if err != nil {
		return path
	}
	return rel
}

// Render produces the report in the named format.
// Color only applies to the text format.
func (r *Report) Render(format string, color bool) ([]byte, error) {
	switch format {
	case FormatText, "":
		return r.Text(color), nil
	case FormatJSON:
		return r.JSON()
	case FormatYAML:
		return r.YAML()
	case FormatMarkdown:
		return r.Markdown(), nil
	case FormatHTML:
		return r.HTML()
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// Write renders the report to w. Text output is colorized when w is a terminal.
func (r *Report) Write(w io.Writer, format string) error {
	data, err := r.Render(format, UseColor(w))
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Export renders the report without color and writes it to path under a lock.
func (r *Report) Export(ctx context.Context, path, format string) error {
	data, err := r.Render(format, false)
	if err != nil {
		return err
	}
	if err := filelock.LockAndWrite(ctx, path, data); err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}
	return nil
}

// UseColor reports whether w is a color-capable terminal.
func UseColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
