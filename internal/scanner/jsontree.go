package scanner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MaxDepth caps the nesting of objects and arrays accepted by ParseJSON.
const MaxDepth = 512

var (
	// ErrTooDeep is returned when a document nests deeper than MaxDepth.
	ErrTooDeep = errors.New("json nesting exceeds maximum depth")
	// ErrTrailingData is returned when a document has content after its top-level value.
	ErrTrailingData = errors.New("json document has trailing data")
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a node of a parsed JSON document.
//
// Str holds the text of strings and the literal of numbers as written in the
// document. Object fields keep document order.
type Value struct {
	Kind   Kind
	Str    string
	Bool   bool
	Items  []Value
	Fields []Field
}

// Field is one key/value entry of a JSON object.
type Field struct {
	Key   string
	Value Value
}

// IsContainer reports whether v is an object or an array.
func (v Value) IsContainer() bool {
	return v.Kind == KindObject || v.Kind == KindArray
}

// Literal returns the default string form of a scalar: the string itself,
// the number as written, "true"/"false" or "null".
func (v Value) Literal() string {
	switch v.Kind {
	case KindString, KindNumber:
		return v.Str
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNull:
		return "null"
	default:
		return ""
	}
}

// ParseJSON parses a complete JSON document into a Value tree.
// Duplicate object keys keep the position of the first occurrence and the
// value of the last.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := parseValue(dec, 0)
	if err != nil {
		return Value{}, err
	}

	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return Value{}, fmt.Errorf("invalid json: %w", err)
		}
		return Value{}, ErrTrailingData
	}

	return root, nil
}

func parseValue(dec *json.Decoder, depth int) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return Value{}, fmt.Errorf("invalid json: %w", io.ErrUnexpectedEOF)
		}
		return Value{}, fmt.Errorf("invalid json: %w", err)
	}

	switch t := tok.(type) {
	case json.Delim:
		if depth >= MaxDepth {
			return Value{}, ErrTooDeep
		}
		switch t {
		case '{':
			return parseObject(dec, depth+1)
		case '[':
			return parseArray(dec, depth+1)
		default:
			return Value{}, fmt.Errorf("invalid json: unexpected delimiter %q", rune(t))
		}
	case string:
		return Value{Kind: KindString, Str: t}, nil
	case json.Number:
		return Value{Kind: KindNumber, Str: t.String()}, nil
	case bool:
		return Value{Kind: KindBool, Bool: t}, nil
	case nil:
		return Value{Kind: KindNull}, nil
	default:
		return Value{}, fmt.Errorf("invalid json: unexpected token %v", tok)
	}
}

func parseObject(dec *json.Decoder, depth int) (Value, error) {
	obj := Value{Kind: KindObject, Fields: make([]Field, 0)}
	index := make(map[string]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, fmt.Errorf("invalid json: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("invalid json: object key %v is not a string", keyTok)
		}

		val, err := parseValue(dec, depth)
		if err != nil {
			return Value{}, err
		}

		if i, seen := index[key]; seen {
			obj.Fields[i].Value = val
			continue
		}
		index[key] = len(obj.Fields)
		obj.Fields = append(obj.Fields, Field{Key: key, Value: val})
	}

	// Closing brace
	if _, err := dec.Token(); err != nil {
		return Value{}, fmt.Errorf("invalid json: %w", err)
	}
	return obj, nil
}

func parseArray(dec *json.Decoder, depth int) (Value, error) {
	arr := Value{Kind: KindArray, Items: make([]Value, 0)}

	for dec.More() {
		val, err := parseValue(dec, depth)
		if err != nil {
			return Value{}, err
		}
		arr.Items = append(arr.Items, val)
	}

	// Closing bracket
	if _, err := dec.Token(); err != nil {
		return Value{}, fmt.Errorf("invalid json: %w", err)
	}
	return arr, nil
}
