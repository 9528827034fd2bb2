package dsl

import (
	"context"

	jsonbind "github.com/reoring/jsonbind"
	js "github.com/reoring/jsonbind/jsonschema"
)

// Array returns a descriptor accepting a JSON array whose elements all match
// elem. Element failures carry zero-based index segments.
func Array(elem jsonbind.Descriptor) jsonbind.Descriptor {
	return &arrayDesc{elem: elem}
}

type arrayDesc struct {
	elem jsonbind.Descriptor
}

func (a *arrayDesc) Decode(ctx context.Context, v jsonbind.Value) (any, error) {
	if v.Kind != jsonbind.KindArray {
		return nil, typeMismatch(v, "array")
	}
	out := make([]any, 0, len(v.Items))
	for i, it := range v.Items {
		child, err := a.elem.Decode(ctx, it)
		if err != nil {
			return nil, jsonbind.PrependSegment(err, jsonbind.IndexSeg(i))
		}
		out = append(out, child)
	}
	return out, nil
}

func (a *arrayDesc) JSONSchema() (*js.Schema, error) {
	es, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: es}, nil
}
