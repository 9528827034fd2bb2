// Package dsl provides the descriptor builders for jsonbind.
//
// Overview
//   - Builder API: declare JSON object shape (required/default/unknown policy)
//     with Object()/Field()/Required()/UnknownStrict()/MustBuild().
//   - Typed binding: Bind[T]/MustBind[T] project a built object descriptor
//     onto a struct T (keys resolved via json tags).
//   - Derivation: FromStruct[T] builds the whole descriptor from T's fields,
//     so simple handlers need no hand-written builder at all.
//   - Primitives: String()/Bool()/Int64()/Int32()/Uint64()/Uint32()/Float64()/
//     Number()/Any()/TimeRFC3339(), plus Array(elem) and Nullable(d).
//
// Error model: every descriptor reports at most one failure, relative to
// itself; containers rebase child failures with jsonbind.PrependSegment so the
// caller always sees a document-root path. Missing required fields and
// unknown fields are reported at the containing object, type mismatches at
// the offending node.
//
// Example (quickstart)
//
//	type CreateUser struct {
//	    Name string `json:"name"`
//	    Age  int    `json:"age"`
//	}
//
//	s := dsl.MustBind[CreateUser](dsl.Object().
//	    Field("name", dsl.String()).Required().
//	    Field("age", dsl.Int64()).Required())
//	u, err := s.ParseBytes(ctx, body)
//
// Example (derived)
//
//	s := dsl.MustFromStruct[CreateUser](dsl.WithUnknownStrict())
//	u, err := s.ParseBytes(ctx, body)
package dsl
