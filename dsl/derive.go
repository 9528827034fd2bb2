package dsl

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"time"

	jsonbind "github.com/reoring/jsonbind"
)

// DeriveOption tweaks FromStruct derivation.
type DeriveOption func(*deriveConfig)

type deriveConfig struct {
	strict bool
}

// WithUnknownStrict makes every derived object reject unknown fields.
func WithUnknownStrict() DeriveOption {
	return func(c *deriveConfig) { c.strict = true }
}

// FromStruct derives a typed schema from T's exported fields: field keys via
// json tags, nested structs become nested objects, slices become arrays, and
// pointer fields are optional and nullable. Everything else is required.
func FromStruct[T any](opts ...DeriveOption) (*jsonbind.Schema[T], error) {
	var cfg deriveConfig
	for _, o := range opts {
		o(&cfg)
	}
	var zero T
	rt := reflect.TypeOf(zero)
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, jsonbind.NewFailure(nil, jsonbind.CodeInvalidFormat,
			"detail", "FromStruct requires a struct type")
	}
	d, err := deriveObject(rt, cfg)
	if err != nil {
		return nil, err
	}
	return jsonbind.NewSchema[T](d)
}

// MustFromStruct is like FromStruct but panics on error.
func MustFromStruct[T any](opts ...DeriveOption) *jsonbind.Schema[T] {
	s, err := FromStruct[T](opts...)
	if err != nil {
		panic(err)
	}
	return s
}

var (
	timeType   = reflect.TypeOf(time.Time{})
	numberType = reflect.TypeOf(json.Number(""))
)

func deriveObject(rt reflect.Type, cfg deriveConfig) (jsonbind.Descriptor, error) {
	b := Object()
	if cfg.strict {
		b.UnknownStrict()
	}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := jsonbind.ResolveStructKey(sf)
		if key == "-" || key == "" {
			continue
		}
		ft := sf.Type
		optional := ft.Kind() == reflect.Pointer
		d, err := deriveDescriptor(ft, cfg)
		if err != nil {
			return nil, fmt.Errorf("derive field %q: %w", key, err)
		}
		step := b.Field(key, d)
		if optional {
			step.Optional()
		} else {
			step.Required()
		}
	}
	return b.Build()
}

func deriveDescriptor(rt reflect.Type, cfg deriveConfig) (jsonbind.Descriptor, error) {
	switch rt {
	case timeType:
		return TimeRFC3339(), nil
	case numberType:
		return Number(), nil
	}
	switch rt.Kind() {
	case reflect.Pointer:
		inner, err := deriveDescriptor(rt.Elem(), cfg)
		if err != nil {
			return nil, err
		}
		return Nullable(inner), nil
	case reflect.String:
		return String(), nil
	case reflect.Bool:
		return Bool(), nil
	case reflect.Int8:
		return Int32().Min(math.MinInt8).Max(math.MaxInt8), nil
	case reflect.Int16:
		return Int32().Min(math.MinInt16).Max(math.MaxInt16), nil
	case reflect.Int32:
		return Int32(), nil
	case reflect.Int, reflect.Int64:
		return Int64(), nil
	case reflect.Uint8:
		return Uint32().Max(math.MaxUint8), nil
	case reflect.Uint16:
		return Uint32().Max(math.MaxUint16), nil
	case reflect.Uint32:
		return Uint32(), nil
	case reflect.Uint, reflect.Uint64:
		return Uint64(), nil
	case reflect.Float32, reflect.Float64:
		return Float64(), nil
	case reflect.Slice:
		elem, err := deriveDescriptor(rt.Elem(), cfg)
		if err != nil {
			return nil, err
		}
		return Array(elem), nil
	case reflect.Struct:
		return deriveObject(rt, cfg)
	case reflect.Map:
		if rt.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key kind %s", rt.Key().Kind())
		}
		if rt.Elem().Kind() == reflect.Interface {
			return Any(), nil
		}
		elem, err := deriveDescriptor(rt.Elem(), cfg)
		if err != nil {
			return nil, err
		}
		return Map(elem), nil
	case reflect.Interface:
		return Any(), nil
	default:
		return nil, fmt.Errorf("unsupported kind %s", rt.Kind())
	}
}
