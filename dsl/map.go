package dsl

import (
	"context"

	jsonbind "github.com/reoring/jsonbind"
	js "github.com/reoring/jsonbind/jsonschema"
)

// Map returns a descriptor for JSON objects with arbitrary keys whose values
// all match elem. Keys pass through untouched; a bad value fails at its
// field path.
func Map(elem jsonbind.Descriptor) jsonbind.Descriptor {
	return &mapDesc{elem: elem}
}

type mapDesc struct {
	elem jsonbind.Descriptor
}

func (m *mapDesc) Decode(ctx context.Context, v jsonbind.Value) (any, error) {
	if v.Kind != jsonbind.KindObject {
		return nil, typeMismatch(v, "object")
	}
	out := make(map[string]any, len(v.Members))
	for _, mem := range v.Members {
		child, err := m.elem.Decode(ctx, mem.Value)
		if err != nil {
			return nil, jsonbind.PrependSegment(err, jsonbind.FieldSeg(mem.Key))
		}
		out[mem.Key] = child
	}
	return out, nil
}

func (m *mapDesc) JSONSchema() (*js.Schema, error) {
	es, err := m.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "object", AdditionalProperties: es}, nil
}
