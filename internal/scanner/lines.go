package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/NightKikko/datasearcher/internal/models"
)

// ScanLines opens path and returns one MatchRecord per line containing term.
// Invalid UTF-8 sequences are dropped before matching. Read errors are returned
// with no matches.
func ScanLines(path, term string, caseSensitive bool) ([]models.MatchRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return ScanReader(f, path, NewMatcher(term, caseSensitive))
}

// ScanReader scans r line by line using m, attributing matches to path.
// Lines end at "\n", "\r\n" or a lone "\r"; the terminator is not part of the text.
func ScanReader(r io.Reader, path string, m Matcher) ([]models.MatchRecord, error) {
	var matches []models.MatchRecord

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	sc.Split(splitLines)

	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.ToValidUTF8(sc.Text(), "")
		if m.Match(line) {
			matches = append(matches, models.MatchRecord{
				Path: path,
				Line: lineNum,
				Text: line,
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s at line %d: %w", path, lineNum+1, err)
	}

	return matches, nil
}

// splitLines is a bufio.SplitFunc recognizing "\n", "\r\n" and "\r" terminators.
func splitLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// Carriage return: need the next byte to tell "\r" from "\r\n"
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
