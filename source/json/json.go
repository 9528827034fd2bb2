package json

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	tok "github.com/reoring/jsonbind/internal/token"
)

type jsonSource struct {
	dec        *json.Decoder
	tracker    tok.Tracker
	lastOffset int64
}

// NewReader wraps an io.Reader into a token.Source for JSON.
func NewReader(r io.Reader) tok.Source {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into a token.Source for JSON.
func NewBytes(b []byte) tok.Source { return NewReader(bytes.NewReader(b)) }

func (s *jsonSource) NextToken() (tok.Token, error) {
	t, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return tok.Token{}, io.EOF
		}
		return tok.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()

	switch v := t.(type) {
	case json.Delim:
		switch v {
		case '{':
			s.tracker.PushObject()
			return tok.Token{Kind: tok.KindBeginObject, Offset: s.lastOffset}, nil
		case '}':
			s.tracker.Pop()
			return tok.Token{Kind: tok.KindEndObject, Offset: s.lastOffset}, nil
		case '[':
			s.tracker.PushArray()
			return tok.Token{Kind: tok.KindBeginArray, Offset: s.lastOffset}, nil
		case ']':
			s.tracker.Pop()
			return tok.Token{Kind: tok.KindEndArray, Offset: s.lastOffset}, nil
		}
	case string:
		if s.tracker.ClassifyString() {
			return tok.Token{Kind: tok.KindKey, String: v, Offset: s.lastOffset}, nil
		}
		s.tracker.ValueDone()
		return tok.Token{Kind: tok.KindString, String: v, Offset: s.lastOffset}, nil
	case bool:
		s.tracker.ValueDone()
		return tok.Token{Kind: tok.KindBool, Bool: v, Offset: s.lastOffset}, nil
	case json.Number:
		s.tracker.ValueDone()
		return tok.Token{Kind: tok.KindNumber, Number: string(v), Offset: s.lastOffset}, nil
	case float64:
		s.tracker.ValueDone()
		return tok.Token{Kind: tok.KindNumber, Number: formatFloat(v), Offset: s.lastOffset}, nil
	case nil:
		s.tracker.ValueDone()
		return tok.Token{Kind: tok.KindNull, Offset: s.lastOffset}, nil
	}

	s.tracker.ValueDone()
	return tok.Token{Kind: tok.KindNull, Offset: s.lastOffset}, nil
}

func (s *jsonSource) Location() int64 { return s.lastOffset }

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
