// Package report renders the results of a search run.
//
// A Report bundles the search term, the root directory, the merged
// ResultSet and the run statistics. It can be rendered as colorized
// terminal text or exported as JSON, YAML, Markdown or HTML. Exports are
// written through filelock so concurrent runs never interleave output.
package report
