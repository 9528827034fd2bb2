package jsonbind

import (
	"context"
	"fmt"
	"io"
)

// Parse is the primary generic entry point. It reads one document from the
// Source, builds a Value, and delegates the structural descent to the
// Descriptor. On failure the returned error is always a *Failure.
func Parse(ctx context.Context, d Descriptor, src Source) (any, error) {
	if d == nil {
		return nil, NewFailure(nil, CodeInvalidFormat, "detail", "nil descriptor")
	}
	v, err := ReadValue(src)
	if err != nil {
		return nil, err
	}
	return d.Decode(ctx, v)
}

// ParseBytes parses a raw JSON document from a byte slice.
func ParseBytes(ctx context.Context, d Descriptor, data []byte) (any, error) {
	return Parse(ctx, d, JSONBytes(data))
}

// ParseReader parses a raw JSON document from an io.Reader. Body size limits
// are the caller's concern (wrap with io.LimitReader at the transport edge).
func ParseReader(ctx context.Context, d Descriptor, r io.Reader) (any, error) {
	return Parse(ctx, d, JSONReader(r))
}

// ReadValue consumes one complete document from the Source and builds its
// Value tree. Object member order is preserved; duplicate keys inside an
// object fail with invalid_format at the owning container. A document that is
// not valid JSON at all fails with invalid_format at the root.
func ReadValue(src Source) (Value, error) {
	t, err := src.NextToken()
	if err != nil {
		return Value{}, malformed(src, err)
	}
	v, err := readValue(src, t)
	if err != nil {
		if f, ok := AsFailure(err); ok {
			return Value{}, f
		}
		return Value{}, malformed(src, err)
	}
	return v, nil
}

func malformed(src Source, err error) *Failure {
	detail := "unexpected end of input"
	if err != nil && err != io.EOF {
		detail = err.Error()
	}
	f := NewFailure(nil, CodeInvalidFormat, "detail", detail)
	f.Cause = err
	f.Offset = src.Location()
	return f
}

func readValue(src Source, t Token) (Value, error) {
	switch t.Kind {
	case _tokenBeginObject:
		return readObject(src, t.Offset)
	case _tokenBeginArray:
		return readArray(src, t.Offset)
	case _tokenString:
		return Value{Kind: KindString, Str: t.String, Offset: t.Offset}, nil
	case _tokenNumber:
		return Value{Kind: KindNumber, Number: t.Number, Offset: t.Offset}, nil
	case _tokenBool:
		return Value{Kind: KindBool, Bool: t.Bool, Offset: t.Offset}, nil
	case _tokenNull:
		return Value{Kind: KindNull, Offset: t.Offset}, nil
	default:
		return Value{}, io.ErrUnexpectedEOF
	}
}

func readObject(src Source, off int64) (Value, error) {
	out := Value{Kind: KindObject, Offset: off}
	seen := map[string]struct{}{}
	for {
		t, err := src.NextToken()
		if err != nil {
			return Value{}, err
		}
		if t.Kind == _tokenEndObject {
			return out, nil
		}
		if t.Kind != _tokenKey {
			return Value{}, io.ErrUnexpectedEOF
		}
		key := t.String
		if _, dup := seen[key]; dup {
			f := NewFailure(nil, CodeInvalidFormat, "detail", fmt.Sprintf("duplicate key %q", key))
			f.Offset = t.Offset
			return Value{}, f
		}
		seen[key] = struct{}{}
		vt, err := src.NextToken()
		if err != nil {
			return Value{}, err
		}
		v, err := readValue(src, vt)
		if err != nil {
			return Value{}, PrependSegment(err, FieldSeg(key))
		}
		out.Members = append(out.Members, Member{Key: key, Value: v})
	}
}

func readArray(src Source, off int64) (Value, error) {
	out := Value{Kind: KindArray, Offset: off}
	for {
		t, err := src.NextToken()
		if err != nil {
			return Value{}, err
		}
		if t.Kind == _tokenEndArray {
			return out, nil
		}
		v, err := readValue(src, t)
		if err != nil {
			return Value{}, PrependSegment(err, IndexSeg(len(out.Items)))
		}
		out.Items = append(out.Items, v)
	}
}
