package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/NightKikko/datasearcher/internal/config"
	"github.com/fatih/color"
)

// PromptReader defines interface for reading user input (for testing)
type PromptReader interface {
	ReadString(delim byte) (string, error)
}

// prompter asks for search parameters one line at a time.
type prompter struct {
	reader PromptReader
	out    io.Writer
	label  *color.Color
}

func newPrompter(in io.Reader, out io.Writer, enableColor bool) *prompter {
	label := color.New(color.BgRed, color.FgWhite)
	if enableColor {
		label.EnableColor()
	} else {
		label.DisableColor()
	}

	reader, ok := in.(PromptReader)
	if !ok {
		reader = bufio.NewReader(in)
	}
	return &prompter{reader: reader, out: out, label: label}
}

// ask prints the question and returns the trimmed answer.
// End of input is treated as an empty answer.
func (p *prompter) ask(question string) (string, error) {
	line, err := p.askRaw(question)
	return strings.TrimSpace(line), err
}

// askRaw is ask without trimming surrounding spaces; only the line ending is
// removed.
func (p *prompter) askRaw(question string) (string, error) {
	fmt.Fprintf(p.out, "%s ", p.label.Sprintf(" %s: ", question))

	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptSearch asks for every search parameter, showing the current value as
// the default. Non-empty answers are applied to cfg. It returns the term and
// directory to search.
func (p *prompter) promptSearch(cfg *config.Config, term, root string) (string, string, error) {
	question := "Enter search term"
	if term != "" {
		question = fmt.Sprintf("Enter search term [%s]", term)
	}
	answer, err := p.askRaw(question)
	if err != nil {
		return "", "", err
	}
	if answer != "" {
		term = answer
	}
	if term == "" {
		return "", "", fmt.Errorf("search term is required")
	}

	if root == "" {
		root = "."
	}
	answer, err = p.ask(fmt.Sprintf("Enter directory to search [%s]", root))
	if err != nil {
		return "", "", err
	}
	if answer != "" {
		root = answer
	}

	answer, err = p.ask(fmt.Sprintf("Enter patterns to exclude (comma separated) [%s]", strings.Join(cfg.Exclude, ",")))
	if err != nil {
		return "", "", err
	}
	if answer != "" {
		cfg.Exclude = config.SplitList(answer)
	}

	current := "all files"
	if !cfg.AllFiles {
		current = strings.Join(cfg.Extensions, ",")
	}
	answer, err = p.ask(fmt.Sprintf("Enter file extensions to search (comma separated, * for all) [%s]", current))
	if err != nil {
		return "", "", err
	}
	switch {
	case answer == "*":
		cfg.AllFiles = true
	case answer != "":
		cfg.AllFiles = false
		cfg.Extensions = config.SplitList(answer)
	}

	answer, err = p.ask(fmt.Sprintf("Enter maximum number of workers [%d]", cfg.MaxWorkers))
	if err != nil {
		return "", "", err
	}
	if n, convErr := strconv.Atoi(answer); convErr == nil && n > 0 {
		cfg.MaxWorkers = n
	}

	def := "n"
	if cfg.CaseSensitive {
		def = "y"
	}
	answer, err = p.ask(fmt.Sprintf("Case sensitive search? (y/n) [%s]", def))
	if err != nil {
		return "", "", err
	}
	if answer != "" {
		cfg.CaseSensitive = strings.HasPrefix(strings.ToLower(answer), "y")
	}

	return term, root, nil
}
