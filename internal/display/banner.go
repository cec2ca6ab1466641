package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/NightKikko/datasearcher/internal/models"
	"github.com/fatih/color"
)

// Width is the column width of banners and separator rules.
const Width = 80

const (
	bannerTitle  = "DATASEARCHER - concurrent text and JSON search"
	bannerAuthor = "Made by NightKikko https://github.com/NightKikko"
)

// styles holds the colors shared by the banner and the parameter block.
type styles struct {
	banner *color.Color
	rule   *color.Color
	label  *color.Color
	value  *color.Color
}

func newStyles(enabled bool) styles {
	s := styles{
		banner: color.New(color.BgRed, color.FgWhite, color.Bold),
		rule:   color.New(color.FgRed, color.Bold),
		label:  color.New(color.FgRed),
		value:  color.New(color.FgWhite),
	}
	for _, c := range []*color.Color{s.banner, s.rule, s.label, s.value} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// center pads text with spaces on both sides to width.
func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	right := width - len(text) - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

// Rule returns a separator line of '=' characters.
func Rule() string {
	return strings.Repeat("=", Width)
}

// Banner prints the two-line title banner followed by a rule.
func Banner(w io.Writer, enableColor bool) {
	s := newStyles(enableColor)
	fmt.Fprintln(w, s.banner.Sprint(center(bannerTitle, Width)))
	fmt.Fprintln(w, s.banner.Sprint(center(bannerAuthor, Width)))
	fmt.Fprintln(w, s.rule.Sprint(Rule()))
}

// ShowParameters prints the SEARCH PARAMETERS block for cfg.
func ShowParameters(w io.Writer, cfg models.SearchConfig, enableColor bool) {
	s := newStyles(enableColor)

	extensions := "All files"
	if !cfg.AcceptsAllExtensions() {
		extensions = strings.Join(cfg.Extensions, ", ")
	}
	exclude := "(none)"
	if len(cfg.Exclude) > 0 {
		exclude = strings.Join(cfg.Exclude, ", ")
	}

	rows := []struct {
		label string
		value string
	}{
		{"Search term", cfg.Term},
		{"Directory", cfg.Root},
		{"Exclude patterns", exclude},
		{"File extensions", extensions},
		{"Max workers", fmt.Sprintf("%d", cfg.MaxWorkers)},
		{"Case sensitive", fmt.Sprintf("%t", cfg.CaseSensitive)},
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.banner.Sprint(" SEARCH PARAMETERS "))
	fmt.Fprintln(w, s.rule.Sprint(Rule()))
	for _, row := range rows {
		fmt.Fprintf(w, "%s %s\n", s.label.Sprint(row.label+":"), s.value.Sprint(row.value))
	}
	fmt.Fprintln(w, s.rule.Sprint(Rule()))
	fmt.Fprintln(w)
}
