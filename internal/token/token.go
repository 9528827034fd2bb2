package token

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// Source is the minimal token stream interface the value builder requires.
type Source interface {
	NextToken() (Token, error)
	Location() int64
}

// ---- key/value position tracking shared by the JSON source drivers ----

type containerKind int

const (
	containerObject containerKind = iota
	containerArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

// Tracker classifies raw decoder tokens into key vs value positions. Decoder
// libraries emit object keys as plain strings; the tracker restores the
// distinction so downstream code sees KindKey tokens.
type Tracker struct {
	stack []frame
}

// PushObject records entry into an object; the next string token is a key.
func (t *Tracker) PushObject() { t.stack = append(t.stack, frame{kind: containerObject, expectingKey: true}) }

// PushArray records entry into an array.
func (t *Tracker) PushArray() { t.stack = append(t.stack, frame{kind: containerArray}) }

// Pop leaves the current container and completes it as a value of the parent.
func (t *Tracker) Pop() {
	if n := len(t.stack); n > 0 {
		t.stack = t.stack[:n-1]
	}
	t.ValueDone()
}

// ClassifyString reports whether a string token at the current position is an
// object key, consuming the key position when it is.
func (t *Tracker) ClassifyString() bool {
	if n := len(t.stack); n > 0 {
		top := &t.stack[n-1]
		if top.kind == containerObject && top.expectingKey {
			top.expectingKey = false
			return true
		}
	}
	return false
}

// ValueDone records that a complete value was emitted; inside an object the
// next token is again a key.
func (t *Tracker) ValueDone() {
	if n := len(t.stack); n > 0 {
		top := &t.stack[n-1]
		if top.kind == containerObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}
