package jsonbind

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
)

// Schema binds a Descriptor to a concrete Go type T. On success the caller
// receives a fully-populated T; on failure a single *Failure locating the
// first mismatch. T is typically a struct (fields resolved via
// ResolveStructKey) or map[string]any.
type Schema[T any] struct {
	desc Descriptor
}

// NewSchema wraps a Descriptor for target type T.
func NewSchema[T any](d Descriptor) (*Schema[T], error) {
	if d == nil {
		return nil, NewFailure(nil, CodeInvalidFormat, "detail", "nil descriptor")
	}
	return &Schema[T]{desc: d}, nil
}

// MustSchema is like NewSchema but panics on error.
func MustSchema[T any](d Descriptor) *Schema[T] {
	s, err := NewSchema[T](d)
	if err != nil {
		panic(err)
	}
	return s
}

// Descriptor returns the underlying shape description.
func (s *Schema[T]) Descriptor() Descriptor { return s.desc }

// Parse reads one document from src and binds it into T.
func (s *Schema[T]) Parse(ctx context.Context, src Source) (T, error) {
	var zero T
	tree, err := Parse(ctx, s.desc, src)
	if err != nil {
		return zero, err
	}
	if direct, ok := tree.(T); ok {
		return direct, nil
	}
	rt := reflect.TypeOf(zero)
	if rt == nil {
		// T is an interface type; the direct assertion above is the only path.
		return zero, NewFailure(nil, CodeInvalidType,
			"expected", reflect.TypeOf(&zero).Elem().String(), "found", fmt.Sprintf("%T", tree))
	}
	rv := reflect.New(rt).Elem()
	if f := assignValue(rv, tree, nil); f != nil {
		return zero, f
	}
	return rv.Interface().(T), nil
}

// ParseBytes binds a raw JSON byte slice into T.
func (s *Schema[T]) ParseBytes(ctx context.Context, data []byte) (T, error) {
	return s.Parse(ctx, JSONBytes(data))
}

// ParseReader binds a JSON document read from r into T.
func (s *Schema[T]) ParseReader(ctx context.Context, r io.Reader) (T, error) {
	return s.Parse(ctx, JSONReader(r))
}

// assignValue writes a decoded tree value into rv. path tracks the location
// for mismatch reports (these indicate a schema/struct disagreement, not bad
// input, but they are still located precisely).
func assignValue(rv reflect.Value, v any, path Path) *Failure {
	if v == nil {
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	}
	switch rv.Kind() {
	case reflect.Pointer:
		pv := reflect.New(rv.Type().Elem())
		if f := assignValue(pv.Elem(), v, path); f != nil {
			return f
		}
		rv.Set(pv)
		return nil
	case reflect.Interface:
		vv := reflect.ValueOf(v)
		if !vv.Type().AssignableTo(rv.Type()) {
			return bindMismatch(path, v, rv.Type())
		}
		rv.Set(vv)
		return nil
	case reflect.Struct:
		return assignStruct(rv, v, path)
	case reflect.Slice:
		return assignSlice(rv, v, path)
	case reflect.Map:
		return assignMap(rv, v, path)
	}
	return assignScalar(rv, v, path)
}

func assignStruct(rv reflect.Value, v any, path Path) *Failure {
	vv := reflect.ValueOf(v)
	if vv.Type().AssignableTo(rv.Type()) { // e.g. time.Time
		rv.Set(vv)
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return bindMismatch(path, v, rv.Type())
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := ResolveStructKey(sf)
		if key == "-" || key == "" {
			continue
		}
		val, exists := m[key]
		if !exists {
			continue
		}
		if f := assignValue(rv.Field(i), val, append(path, FieldSeg(key))); f != nil {
			return f
		}
	}
	return nil
}

func assignSlice(rv reflect.Value, v any, path Path) *Failure {
	items, ok := v.([]any)
	if !ok {
		vv := reflect.ValueOf(v)
		if vv.Type().AssignableTo(rv.Type()) {
			rv.Set(vv)
			return nil
		}
		return bindMismatch(path, v, rv.Type())
	}
	out := reflect.MakeSlice(rv.Type(), len(items), len(items))
	for i, it := range items {
		if f := assignValue(out.Index(i), it, append(path, IndexSeg(i))); f != nil {
			return f
		}
	}
	rv.Set(out)
	return nil
}

func assignMap(rv reflect.Value, v any, path Path) *Failure {
	m, ok := v.(map[string]any)
	if !ok {
		return bindMismatch(path, v, rv.Type())
	}
	rt := rv.Type()
	if rt.Key().Kind() != reflect.String {
		return bindMismatch(path, v, rt)
	}
	out := reflect.MakeMapWithSize(rt, len(m))
	for k, val := range m {
		ev := reflect.New(rt.Elem()).Elem()
		if f := assignValue(ev, val, append(path, FieldSeg(k))); f != nil {
			return f
		}
		out.SetMapIndex(reflect.ValueOf(k).Convert(rt.Key()), ev)
	}
	rv.Set(out)
	return nil
}

func assignScalar(rv reflect.Value, v any, path Path) *Failure {
	// json.Number needs explicit conversion; reflect's string->int conversion
	// would reinterpret code points.
	if n, ok := v.(json.Number); ok {
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i, err := strconv.ParseInt(string(n), 10, 64)
			if err != nil {
				return bindMismatch(path, v, rv.Type())
			}
			if rv.OverflowInt(i) {
				return rangeMismatch(path, string(n), rv.Type())
			}
			rv.SetInt(i)
			return nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u, err := strconv.ParseUint(string(n), 10, 64)
			if err != nil {
				return bindMismatch(path, v, rv.Type())
			}
			if rv.OverflowUint(u) {
				return rangeMismatch(path, string(n), rv.Type())
			}
			rv.SetUint(u)
			return nil
		case reflect.Float32, reflect.Float64:
			f, err := strconv.ParseFloat(string(n), 64)
			if err != nil {
				return bindMismatch(path, v, rv.Type())
			}
			if rv.OverflowFloat(f) {
				return rangeMismatch(path, string(n), rv.Type())
			}
			rv.SetFloat(f)
			return nil
		}
	}
	vv := reflect.ValueOf(v)
	if vv.Type().AssignableTo(rv.Type()) {
		rv.Set(vv)
		return nil
	}
	if isNumeric(vv.Kind()) && isNumeric(rv.Kind()) {
		return convertNumeric(rv, vv, path)
	}
	if vv.Kind() == reflect.String && rv.Kind() == reflect.String {
		rv.Set(vv.Convert(rv.Type()))
		return nil
	}
	return bindMismatch(path, v, rv.Type())
}

// convertNumeric crosses numeric kinds with explicit bounds checks;
// reflect.Convert would silently wrap narrow targets.
func convertNumeric(rv, vv reflect.Value, path Path) *Failure {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var i int64
		switch vv.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u := vv.Uint()
			if u > math.MaxInt64 {
				return rangeMismatch(path, strconv.FormatUint(u, 10), rv.Type())
			}
			i = int64(u)
		case reflect.Float32, reflect.Float64:
			f := vv.Float()
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return rangeMismatch(path, strconv.FormatFloat(f, 'g', -1, 64), rv.Type())
			}
			i = int64(f)
		default:
			i = vv.Int()
		}
		if rv.OverflowInt(i) {
			return rangeMismatch(path, strconv.FormatInt(i, 10), rv.Type())
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var u uint64
		switch vv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i := vv.Int()
			if i < 0 {
				return rangeMismatch(path, strconv.FormatInt(i, 10), rv.Type())
			}
			u = uint64(i)
		case reflect.Float32, reflect.Float64:
			f := vv.Float()
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
				return rangeMismatch(path, strconv.FormatFloat(f, 'g', -1, 64), rv.Type())
			}
			u = uint64(f)
		default:
			u = vv.Uint()
		}
		if rv.OverflowUint(u) {
			return rangeMismatch(path, strconv.FormatUint(u, 10), rv.Type())
		}
		rv.SetUint(u)
	default:
		var f float64
		switch vv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			f = float64(vv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			f = float64(vv.Uint())
		default:
			f = vv.Float()
		}
		if rv.OverflowFloat(f) {
			return rangeMismatch(path, strconv.FormatFloat(f, 'g', -1, 64), rv.Type())
		}
		rv.SetFloat(f)
	}
	return nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func bindMismatch(path Path, v any, want reflect.Type) *Failure {
	return NewFailure(append(Path(nil), path...), CodeInvalidType,
		"expected", want.String(), "found", fmt.Sprintf("%T", v))
}

func rangeMismatch(path Path, literal string, want reflect.Type) *Failure {
	return NewFailure(append(Path(nil), path...), CodeOutOfRange,
		"detail", fmt.Sprintf("%s does not fit in %s", literal, want))
}
