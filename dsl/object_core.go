package dsl

import (
	"context"
	"sort"

	jsonbind "github.com/reoring/jsonbind"
	js "github.com/reoring/jsonbind/jsonschema"
)

type objectDesc struct {
	fields []fieldSpec // declaration order
	known  map[string]struct{}
	strict bool
}

var _ jsonbind.Descriptor = (*objectDesc)(nil)

// Decode walks the object shape. Declared fields are visited in declaration
// order; the first mismatch aborts. Missing-required is detected during that
// visit, so it always wins over an unknown-field violation in the same
// object. Failures are reported relative to this object: a missing or
// unknown field sits at the object itself (empty path here), a bad field
// value one level deeper via rebasing.
func (o *objectDesc) Decode(ctx context.Context, v jsonbind.Value) (any, error) {
	if v.Kind != jsonbind.KindObject {
		return nil, typeMismatch(v, "object")
	}
	out := make(map[string]any, len(o.fields))
	for _, f := range o.fields {
		mv, exists := v.Lookup(f.name)
		if exists {
			child, err := f.desc.Decode(ctx, mv)
			if err != nil {
				return nil, jsonbind.PrependSegment(err, jsonbind.FieldSeg(f.name))
			}
			out[f.name] = child
			continue
		}
		if f.hasDefault {
			out[f.name] = f.def
			continue
		}
		if f.required {
			return nil, failAt(v, jsonbind.CodeRequired, "name", f.name)
		}
	}
	if o.strict {
		for _, m := range v.Members {
			if _, ok := o.known[m.Key]; !ok {
				return nil, failAt(v, jsonbind.CodeUnknownKey, "name", m.Key)
			}
		}
	}
	return out, nil
}

func (o *objectDesc) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(o.fields))
	var required []string
	for _, f := range o.fields {
		ps, err := f.desc.JSONSchema()
		if err != nil {
			return nil, err
		}
		if ps == nil {
			ps = &js.Schema{}
		}
		if f.hasDefault {
			ps.Default = f.def
		}
		props[f.name] = ps
		if f.required {
			required = append(required, f.name)
		}
	}
	sort.Strings(required) // deterministic export
	var additional any
	if o.strict {
		additional = false
	} else {
		additional = true
	}
	return &js.Schema{Type: "object", Properties: props, Required: required, AdditionalProperties: additional}, nil
}
