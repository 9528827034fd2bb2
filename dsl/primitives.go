package dsl

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	jsonbind "github.com/reoring/jsonbind"
	js "github.com/reoring/jsonbind/jsonschema"
)

// failAt builds a Failure anchored at the offending node's byte offset. The
// path is left empty; containers rebase it on the way out.
func failAt(v jsonbind.Value, code string, kv ...string) *jsonbind.Failure {
	f := jsonbind.NewFailure(nil, code, kv...)
	f.Offset = v.Offset
	return f
}

func typeMismatch(v jsonbind.Value, expected string) *jsonbind.Failure {
	return failAt(v, jsonbind.CodeInvalidType, "expected", expected, "found", jsonbind.KindName(v.Kind))
}

// String returns a descriptor accepting JSON strings.
func String() jsonbind.Descriptor { return stringDesc{} }

type stringDesc struct{}

func (stringDesc) Decode(ctx context.Context, v jsonbind.Value) (any, error) {
	if v.Kind != jsonbind.KindString {
		return nil, typeMismatch(v, "string")
	}
	return v.Str, nil
}

func (stringDesc) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "string"}, nil }

// Bool returns a descriptor accepting JSON booleans.
func Bool() jsonbind.Descriptor { return boolDesc{} }

type boolDesc struct{}

func (boolDesc) Decode(ctx context.Context, v jsonbind.Value) (any, error) {
	if v.Kind != jsonbind.KindBool {
		return nil, typeMismatch(v, "boolean")
	}
	return v.Bool, nil
}

func (boolDesc) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

// IntBuilder chains optional bounds onto an integer descriptor.
type IntBuilder interface {
	jsonbind.Descriptor
	Min(n int64) IntBuilder
	Max(n int64) IntBuilder
}

// Int64 returns a descriptor accepting integers that fit in int64.
func Int64() IntBuilder { return &intDesc{bits: 64} }

// Int32 returns a descriptor accepting integers that fit in int32. Literals
// outside the width fail with out_of_range, not invalid_type.
func Int32() IntBuilder { return &intDesc{bits: 32} }

type intDesc struct {
	bits     int
	min, max *int64
}

func (d *intDesc) Min(n int64) IntBuilder { d.min = &n; return d }
func (d *intDesc) Max(n int64) IntBuilder { d.max = &n; return d }

func (d *intDesc) typeName() string { return "int" + strconv.Itoa(d.bits) }

func (d *intDesc) Decode(ctx context.Context, v jsonbind.Value) (any, error) {
	if v.Kind != jsonbind.KindNumber {
		return nil, typeMismatch(v, "integer")
	}
	n, err := strconv.ParseInt(v.Number, 10, d.bits)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return nil, failAt(v, jsonbind.CodeOutOfRange,
				"detail", fmt.Sprintf("%s does not fit in %s", v.Number, d.typeName()))
		}
		// fractional or exponent literal
		return nil, typeMismatch(v, "integer")
	}
	if d.min != nil && n < *d.min {
		return nil, failAt(v, jsonbind.CodeOutOfRange,
			"detail", fmt.Sprintf("%s is less than minimum %d", v.Number, *d.min))
	}
	if d.max != nil && n > *d.max {
		return nil, failAt(v, jsonbind.CodeOutOfRange,
			"detail", fmt.Sprintf("%s is greater than maximum %d", v.Number, *d.max))
	}
	return n, nil
}

func (d *intDesc) JSONSchema() (*js.Schema, error) {
	s := &js.Schema{Type: "integer"}
	if d.min != nil {
		s.Minimum = jsPtrFloat(float64(*d.min))
	}
	if d.max != nil {
		s.Maximum = jsPtrFloat(float64(*d.max))
	}
	return s, nil
}

// UintBuilder chains optional bounds onto an unsigned integer descriptor.
type UintBuilder interface {
	jsonbind.Descriptor
	Min(n uint64) UintBuilder
	Max(n uint64) UintBuilder
}

// Uint64 returns a descriptor accepting non-negative integers that fit in uint64.
func Uint64() UintBuilder { return &uintDesc{bits: 64} }

// Uint32 returns a descriptor accepting non-negative integers that fit in uint32.
func Uint32() UintBuilder { return &uintDesc{bits: 32} }

type uintDesc struct {
	bits     int
	min, max *uint64
}

func (d *uintDesc) Min(n uint64) UintBuilder { d.min = &n; return d }
func (d *uintDesc) Max(n uint64) UintBuilder { d.max = &n; return d }

func (d *uintDesc) typeName() string { return "uint" + strconv.Itoa(d.bits) }

func (d *uintDesc) Decode(ctx context.Context, v jsonbind.Value) (any, error) {
	if v.Kind != jsonbind.KindNumber {
		return nil, typeMismatch(v, "integer")
	}
	n, err := strconv.ParseUint(v.Number, 10, d.bits)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return nil, failAt(v, jsonbind.CodeOutOfRange,
				"detail", fmt.Sprintf("%s does not fit in %s", v.Number, d.typeName()))
		}
		if len(v.Number) > 0 && v.Number[0] == '-' {
			// negative literal against an unsigned width
			return nil, failAt(v, jsonbind.CodeOutOfRange,
				"detail", fmt.Sprintf("%s does not fit in %s", v.Number, d.typeName()))
		}
		return nil, typeMismatch(v, "integer")
	}
	if d.min != nil && n < *d.min {
		return nil, failAt(v, jsonbind.CodeOutOfRange,
			"detail", fmt.Sprintf("%s is less than minimum %d", v.Number, *d.min))
	}
	if d.max != nil && n > *d.max {
		return nil, failAt(v, jsonbind.CodeOutOfRange,
			"detail", fmt.Sprintf("%s is greater than maximum %d", v.Number, *d.max))
	}
	return n, nil
}

func (d *uintDesc) JSONSchema() (*js.Schema, error) {
	s := &js.Schema{Type: "integer", Minimum: jsPtrFloat(0)}
	if d.min != nil {
		s.Minimum = jsPtrFloat(float64(*d.min))
	}
	if d.max != nil {
		s.Maximum = jsPtrFloat(float64(*d.max))
	}
	return s, nil
}

// FloatBuilder chains optional bounds onto a float descriptor.
type FloatBuilder interface {
	jsonbind.Descriptor
	Min(n float64) FloatBuilder
	Max(n float64) FloatBuilder
}

// Float64 returns a descriptor accepting any JSON number representable as float64.
func Float64() FloatBuilder { return &floatDesc{} }

type floatDesc struct {
	min, max *float64
}

func (d *floatDesc) Min(n float64) FloatBuilder { d.min = &n; return d }
func (d *floatDesc) Max(n float64) FloatBuilder { d.max = &n; return d }

func (d *floatDesc) Decode(ctx context.Context, v jsonbind.Value) (any, error) {
	if v.Kind != jsonbind.KindNumber {
		return nil, typeMismatch(v, "number")
	}
	f, err := strconv.ParseFloat(v.Number, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return nil, failAt(v, jsonbind.CodeOutOfRange,
				"detail", fmt.Sprintf("%s does not fit in float64", v.Number))
		}
		return nil, typeMismatch(v, "number")
	}
	if d.min != nil && f < *d.min {
		return nil, failAt(v, jsonbind.CodeOutOfRange,
			"detail", fmt.Sprintf("%s is less than minimum %v", v.Number, *d.min))
	}
	if d.max != nil && f > *d.max {
		return nil, failAt(v, jsonbind.CodeOutOfRange,
			"detail", fmt.Sprintf("%s is greater than maximum %v", v.Number, *d.max))
	}
	return f, nil
}

func (d *floatDesc) JSONSchema() (*js.Schema, error) {
	s := &js.Schema{Type: "number"}
	if d.min != nil {
		s.Minimum = d.min
	}
	if d.max != nil {
		s.Maximum = d.max
	}
	return s, nil
}

// Number returns a descriptor that preserves the numeric literal as a
// json.Number, leaving width decisions to the caller.
func Number() jsonbind.Descriptor { return numberDesc{} }

type numberDesc struct{}

func (numberDesc) Decode(ctx context.Context, v jsonbind.Value) (any, error) {
	if v.Kind != jsonbind.KindNumber {
		return nil, typeMismatch(v, "number")
	}
	return json.Number(v.Number), nil
}

func (numberDesc) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "number"}, nil }

// TimeRFC3339 returns a descriptor accepting RFC 3339 timestamp strings and
// producing time.Time. Bad syntax is an invalid_format failure.
func TimeRFC3339() jsonbind.Descriptor { return timeDesc{} }

type timeDesc struct{}

func (timeDesc) Decode(ctx context.Context, v jsonbind.Value) (any, error) {
	if v.Kind != jsonbind.KindString {
		return nil, typeMismatch(v, "string")
	}
	t, err := time.Parse(time.RFC3339, v.Str)
	if err != nil {
		f := failAt(v, jsonbind.CodeInvalidFormat,
			"detail", fmt.Sprintf("%q is not an RFC3339 timestamp", v.Str))
		f.Cause = err
		return nil, f
	}
	return t, nil
}

func (timeDesc) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Format: "date-time"}, nil
}

// Any returns a descriptor that accepts any JSON node verbatim, converting it
// to the generic Go shape (map[string]any / []any / json.Number / primitives).
func Any() jsonbind.Descriptor { return anyDesc{} }

type anyDesc struct{}

func (anyDesc) Decode(ctx context.Context, v jsonbind.Value) (any, error) {
	return valueToAny(v), nil
}

func (anyDesc) JSONSchema() (*js.Schema, error) { return &js.Schema{}, nil }

func valueToAny(v jsonbind.Value) any {
	switch v.Kind {
	case jsonbind.KindNull:
		return nil
	case jsonbind.KindBool:
		return v.Bool
	case jsonbind.KindNumber:
		return json.Number(v.Number)
	case jsonbind.KindString:
		return v.Str
	case jsonbind.KindArray:
		out := make([]any, len(v.Items))
		for i, it := range v.Items {
			out[i] = valueToAny(it)
		}
		return out
	case jsonbind.KindObject:
		out := make(map[string]any, len(v.Members))
		for _, m := range v.Members {
			out[m.Key] = valueToAny(m.Value)
		}
		return out
	default:
		return nil
	}
}

// Nullable wraps a descriptor to additionally accept JSON null, decoding it
// to nil.
func Nullable(d jsonbind.Descriptor) jsonbind.Descriptor { return nullableDesc{inner: d} }

type nullableDesc struct{ inner jsonbind.Descriptor }

func (n nullableDesc) Decode(ctx context.Context, v jsonbind.Value) (any, error) {
	if v.Kind == jsonbind.KindNull {
		return nil, nil
	}
	return n.inner.Decode(ctx, v)
}

func (n nullableDesc) JSONSchema() (*js.Schema, error) {
	s, err := n.inner.JSONSchema()
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = &js.Schema{}
	}
	s.Nullable = true
	return s, nil
}

// ---- helpers ----
func jsPtrFloat(v float64) *float64 { return &v }
