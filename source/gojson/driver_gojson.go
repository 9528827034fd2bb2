//go:build gojson

package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	jsonbind "github.com/reoring/jsonbind"
	tok "github.com/reoring/jsonbind/internal/token"
)

// Driver returns a jsonbind.JSONDriver backed by goccy/go-json.
func Driver() jsonbind.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) jsonbind.Source {
	return jsonbind.SourceFromTokens(NewReader(r))
}
func (driverGoJSON) NewBytes(b []byte) jsonbind.Source {
	return jsonbind.SourceFromTokens(NewBytes(b))
}
func (driverGoJSON) Name() string { return "go-json" }

// ---- token.Source implementation using go-json Decoder ----

type source struct {
	dec     *j.Decoder
	tracker tok.Tracker
}

// NewReader wraps an io.Reader into a token.Source for JSON using go-json.
func NewReader(r io.Reader) tok.Source {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// NewBytes wraps a byte slice into a token.Source for JSON using go-json.
func NewBytes(b []byte) tok.Source { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (tok.Token, error) {
	t, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return tok.Token{}, io.EOF
		}
		return tok.Token{}, err
	}
	switch v := t.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.tracker.PushObject()
			return tok.Token{Kind: tok.KindBeginObject, Offset: -1}, nil
		case '}':
			s.tracker.Pop()
			return tok.Token{Kind: tok.KindEndObject, Offset: -1}, nil
		case '[':
			s.tracker.PushArray()
			return tok.Token{Kind: tok.KindBeginArray, Offset: -1}, nil
		case ']':
			s.tracker.Pop()
			return tok.Token{Kind: tok.KindEndArray, Offset: -1}, nil
		}
	case string:
		if s.tracker.ClassifyString() {
			return tok.Token{Kind: tok.KindKey, String: v, Offset: -1}, nil
		}
		s.tracker.ValueDone()
		return tok.Token{Kind: tok.KindString, String: v, Offset: -1}, nil
	case bool:
		s.tracker.ValueDone()
		return tok.Token{Kind: tok.KindBool, Bool: v, Offset: -1}, nil
	case j.Number:
		s.tracker.ValueDone()
		return tok.Token{Kind: tok.KindNumber, Number: string(v), Offset: -1}, nil
	case float64:
		s.tracker.ValueDone()
		return tok.Token{Kind: tok.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: -1}, nil
	case nil:
		s.tracker.ValueDone()
		return tok.Token{Kind: tok.KindNull, Offset: -1}, nil
	}
	s.tracker.ValueDone()
	return tok.Token{Kind: tok.KindNull, Offset: -1}, nil
}

func (s *source) Location() int64 { return -1 }
