package jsonbind

import (
	"strconv"
	"strings"
)

// RootRendering is the stable sentinel produced when an empty Path is
// rendered. Clients pattern-match on it, so it must never change.
const RootRendering = "<root>"

// Segment is one step of a document path: either an object field or an array
// index. Construct via FieldSeg/IndexSeg.
type Segment struct {
	field string
	index int
	isIdx bool
}

// FieldSeg returns a field-name segment.
func FieldSeg(name string) Segment { return Segment{field: name} }

// IndexSeg returns a zero-based array-index segment.
func IndexSeg(i int) Segment { return Segment{index: i, isIdx: true} }

// IsIndex reports whether the segment is an array index.
func (s Segment) IsIndex() bool { return s.isIdx }

// Field returns the field name ("" for index segments).
func (s Segment) Field() string { return s.field }

// Index returns the array index (0 for field segments).
func (s Segment) Index() int { return s.index }

// Path is the ordered traversal from document root to a location. An empty
// Path denotes the root itself.
type Path []Segment

// String renders the path in dotted/bracketed form: field segments joined by
// ".", index segments appended as "[n]" with no separator, e.g.
// "items[2].name". The empty path renders as RootRendering.
func (p Path) String() string {
	if len(p) == 0 {
		return RootRendering
	}
	var b strings.Builder
	for i, s := range p {
		if s.isIdx {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.field)
	}
	return b.String()
}

// Pointer renders the path as an RFC 6901 JSON Pointer ("/" for root).
// Escapes "~" as "~0" and "/" as "~1".
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range p {
		b.WriteByte('/')
		if s.isIdx {
			b.WriteString(strconv.Itoa(s.index))
			continue
		}
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s.field, "~", "~0"), "/", "~1"))
	}
	return b.String()
}
