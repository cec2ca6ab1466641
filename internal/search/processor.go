package search

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/NightKikko/datasearcher/internal/fileutil"
	"github.com/NightKikko/datasearcher/internal/models"
	"github.com/NightKikko/datasearcher/internal/scanner"
)

// Processor searches a single file. It holds no per-file state and is safe
// for concurrent use by every worker.
type Processor struct {
	classifier *fileutil.Classifier
	matcher    scanner.Matcher
}

// NewProcessor creates a Processor from a classifier and a matcher.
func NewProcessor(classifier *fileutil.Classifier, matcher scanner.Matcher) *Processor {
	return &Processor{
		classifier: classifier,
		matcher:    matcher,
	}
}

// IsJSONFile reports whether path names a JSON document (case-insensitive suffix).
func IsJSONFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".json")
}

// Process returns the matches for path.
//
// searchable is false when the classifier rejected the file; such files are
// not scanned and must not be counted as processed. A non-nil error means the
// scan failed and the file contributes no matches. Malformed JSON is not an
// error: the structured pass is skipped and the line matches are kept.
func (p *Processor) Process(path string) (matches []models.MatchRecord, searchable bool, err error) {
	if !p.classifier.IsSearchable(path) {
		return nil, false, nil
	}

	defer func() {
		if r := recover(); r != nil {
			matches = nil
			searchable = true
			err = fmt.Errorf("panic while processing %s: %v", path, r)
		}
	}()

	matches, err = p.scanLines(path)
	if err != nil {
		return nil, true, err
	}

	if IsJSONFile(path) {
		structured, err := p.scanJSON(path)
		if err != nil {
			return nil, true, err
		}
		matches = append(matches, structured...)
	}

	return matches, true, nil
}

func (p *Processor) scanLines(path string) ([]models.MatchRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return scanner.ScanReader(f, path, p.matcher)
}

// scanJSON runs the structured pass. Only read failures are returned as errors.
func (p *Processor) scanJSON(path string) ([]models.MatchRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	root, err := scanner.ParseJSON(bytes.ToValidUTF8(data, nil))
	if err != nil {
		return nil, nil
	}

	return scanner.SearchJSON(root, path, p.matcher), nil
}
