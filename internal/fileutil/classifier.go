package fileutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// SniffSize is the number of leading bytes inspected for binary content.
const SniffSize = 1024

// Classifier decides whether a file is eligible for content scanning.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	exclude    []*regexp.Regexp
	extensions map[string]bool
}

// NewClassifier compiles the exclusion patterns and builds the extension set.
// Extensions are expected with a leading dot; they are lower-cased for lookup.
// An empty extension list accepts every extension.
func NewClassifier(exclude []string, extensions []string) (*Classifier, error) {
	c := &Classifier{
		exclude:    make([]*regexp.Regexp, 0, len(exclude)),
		extensions: make(map[string]bool, len(extensions)),
	}

	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		c.exclude = append(c.exclude, re)
	}

	for _, ext := range extensions {
		c.extensions[strings.ToLower(ext)] = true
	}

	return c, nil
}

// IsExcluded reports whether any exclusion pattern matches anywhere in path.
func (c *Classifier) IsExcluded(path string) bool {
	for _, re := range c.exclude {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// HasAcceptedExtension reports whether the lower-cased extension of path is accepted.
func (c *Classifier) HasAcceptedExtension(path string) bool {
	if len(c.extensions) == 0 {
		return true
	}
	return c.extensions[strings.ToLower(filepath.Ext(path))]
}

// IsSearchable reports whether path should be scanned.
// Unreadable and missing files are rejected, never reported as errors.
func (c *Classifier) IsSearchable(path string) bool {
	if c.IsExcluded(path) {
		return false
	}
	if !c.HasAcceptedExtension(path) {
		return false
	}
	return !IsBinary(path)
}

// IsBinary reports whether the first SniffSize bytes of the file contain a NUL byte.
// Any error opening or reading the file is treated as binary.
func IsBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	buf := make([]byte, SniffSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return true
	}
	return bytes.IndexByte(buf[:n], 0) >= 0
}
