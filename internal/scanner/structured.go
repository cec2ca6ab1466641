package scanner

import (
	"strconv"

	"github.com/NightKikko/datasearcher/internal/models"
)

// RootPath is the structural path of the document root.
const RootPath = "$"

// SearchJSON walks root and returns a MatchRecord for every matching key and value.
//
// Keys and string values follow the matcher's case rule. Numbers, booleans and
// null are matched case-sensitively against their JSON literal text as it
// appears in the source (true, false, null, 1.5e3), not a language-specific
// rendering such as True, None or 1500.0. Records carry
// line number 0 and the structural path of the matched entry. A scalar root
// produces no matches.
func SearchJSON(root Value, path string, m Matcher) []models.MatchRecord {
	w := &jsonWalker{path: path, matcher: m}
	w.walk(root, RootPath)
	return w.matches
}

type jsonWalker struct {
	path    string
	matcher Matcher
	matches []models.MatchRecord
}

func (w *jsonWalker) walk(v Value, jsonPath string) {
	switch v.Kind {
	case KindObject:
		for _, field := range v.Fields {
			childPath := jsonPath + "." + field.Key
			if w.matcher.Match(field.Key) {
				w.emit(childPath, field.Key)
			}
			w.visit(field.Value, childPath)
		}
	case KindArray:
		for i, item := range v.Items {
			w.visit(item, jsonPath+"["+strconv.Itoa(i)+"]")
		}
	}
}

// visit applies the value rules to one object entry or array element.
func (w *jsonWalker) visit(v Value, childPath string) {
	switch {
	case v.IsContainer():
		w.walk(v, childPath)
	case v.Kind == KindString:
		if w.matcher.Match(v.Str) {
			w.emit(childPath, v.Str)
		}
	default:
		if w.matcher.MatchExact(v.Literal()) {
			w.emit(childPath, v.Literal())
		}
	}
}

func (w *jsonWalker) emit(childPath, text string) {
	w.matches = append(w.matches, models.MatchRecord{
		Path:     w.path,
		Line:     0,
		Text:     childPath + ": " + text,
		JSONPath: childPath,
	})
}
