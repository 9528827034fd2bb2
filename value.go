package jsonbind

import (
	"bytes"
	"strconv"
)

// Kind enumerates the node kinds of a parsed JSON document.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// KindName returns the document-side name of a kind, used as the "found"
// half of type-mismatch reports. Expectation names like "integer" are the
// descriptor's business.
func KindName(k Kind) string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a single object member. Objects keep members in document order so
// that unknown-key reporting is deterministic ("first unknown in document
// order").
type Member struct {
	Key   string
	Value Value
}

// Value is a closed, immutable representation of a parsed JSON node.
// Numbers keep their literal text; width interpretation is deferred to the
// descriptor that consumes them. Offset records the byte position of the
// node's opening token when known (-1 otherwise).
type Value struct {
	Kind    Kind
	Bool    bool
	Number  string // literal text, e.g. "3.14", "-12"
	Str     string
	Items   []Value  // KindArray
	Members []Member // KindObject, document order, keys unique
	Offset  int64
}

// Null returns a null Value with no offset information.
func Null() Value { return Value{Kind: KindNull, Offset: -1} }

// Lookup returns the member value for key and whether it was present.
func (v Value) Lookup(key string) (Value, bool) {
	for _, m := range v.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// MarshalJSON re-serializes the value, preserving object member order.
func (v Value) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	appendJSON(&b, v)
	return b.Bytes(), nil
}

func appendJSON(b *bytes.Buffer, v Value) {
	switch v.Kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(v.Number)
	case KindString:
		b.WriteString(strconv.Quote(v.Str))
	case KindArray:
		b.WriteByte('[')
		for i, it := range v.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			appendJSON(b, it)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		for i, m := range v.Members {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(m.Key))
			b.WriteByte(':')
			appendJSON(b, m.Value)
		}
		b.WriteByte('}')
	}
}
