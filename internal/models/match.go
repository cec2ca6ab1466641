package models

import "sort"

// MatchRecord represents a single occurrence of the search term.
type MatchRecord struct {
	Path     string `json:"path" yaml:"path"`                              // File the match was found in
	Line     int    `json:"line" yaml:"line"`                              // 1-indexed line number, 0 for JSON matches
	Text     string `json:"text" yaml:"text"`                              // Matched line or "<json path>: <value>"
	JSONPath string `json:"json_path,omitempty" yaml:"json_path,omitempty"` // Structural path, JSON matches only
}

// IsStructured reports whether the record came from the JSON tree walk.
func (m MatchRecord) IsStructured() bool {
	return m.JSONPath != ""
}

// ResultSet maps file paths to the matches found in them.
// Each path is added at most once, with all of its matches in discovery order.
// A ResultSet is not safe for concurrent mutation.
type ResultSet struct {
	matches map[string][]MatchRecord
	order   []string
}

// NewResultSet creates an empty ResultSet.
func NewResultSet() *ResultSet {
	return &ResultSet{
		matches: make(map[string][]MatchRecord),
		order:   make([]string, 0),
	}
}

// Add stores the batch of matches for path. Empty batches and paths that
// were already added are ignored. Returns true if the batch was stored.
func (rs *ResultSet) Add(path string, batch []MatchRecord) bool {
	if len(batch) == 0 {
		return false
	}
	if _, exists := rs.matches[path]; exists {
		return false
	}
	rs.matches[path] = batch
	rs.order = append(rs.order, path)
	return true
}

// Get returns the matches for path and whether the path is present.
func (rs *ResultSet) Get(path string) ([]MatchRecord, bool) {
	m, ok := rs.matches[path]
	return m, ok
}

// Len returns the number of files with at least one match.
func (rs *ResultSet) Len() int {
	return len(rs.order)
}

// Total returns the number of matches across all files.
func (rs *ResultSet) Total() int {
	total := 0
	for _, m := range rs.matches {
		total += len(m)
	}
	return total
}

// Paths returns the file paths in the order they were merged.
func (rs *ResultSet) Paths() []string {
	out := make([]string, len(rs.order))
	copy(out, rs.order)
	return out
}

// SortedPaths returns the file paths in lexical order.
func (rs *ResultSet) SortedPaths() []string {
	out := rs.Paths()
	sort.Strings(out)
	return out
}

// Map returns a copy of the path to matches mapping.
func (rs *ResultSet) Map() map[string][]MatchRecord {
	out := make(map[string][]MatchRecord, len(rs.matches))
	for path, m := range rs.matches {
		out[path] = m
	}
	return out
}
