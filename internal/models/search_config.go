package models

// SearchConfig holds the immutable parameters of a single search run.
// It is built once before any concurrent work starts and is only read afterwards.
type SearchConfig struct {
	Term          string   // Literal search term
	Root          string   // Root directory of the walk
	Exclude       []string // Regular expressions tested against the full path
	Extensions    []string // Accepted extensions with leading dot, lower case (empty = all)
	CaseSensitive bool     // Compare without case folding
	MaxWorkers    int      // Upper bound on concurrent file workers
}

// AcceptsAllExtensions reports whether the extension filter is disabled.
func (c SearchConfig) AcceptsAllExtensions() bool {
	return len(c.Extensions) == 0
}
