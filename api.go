package jsonbind

import (
	"context"

	js "github.com/reoring/jsonbind/jsonschema"
)

// Descriptor is the queryable description of an expected shape. Builders live
// in the dsl package; the core only requires the two capabilities below.
//
// Decode walks a parsed Value against the descriptor's shape and returns the
// normalized Go value (map[string]any / []any / primitives). Failures are
// reported relative to the descriptor itself: a descriptor never knows where
// it sits in the document, containers rebase child failures with
// PrependSegment on the way out. The first mismatch aborts the descent.
type Descriptor interface {
	Decode(ctx context.Context, v Value) (any, error)
	JSONSchema() (*js.Schema, error)
}

// Validate reports whether the raw document conforms to the descriptor,
// returning the *Failure describing the first mismatch otherwise.
func Validate(ctx context.Context, d Descriptor, data []byte) error {
	_, err := ParseBytes(ctx, d, data)
	return err
}
