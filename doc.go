package jsonbind

// Package jsonbind provides:
//
// - Path-tracked JSON body binding: bytes + descriptor -> typed value or a
//   single Failure locating the first mismatch (dotted path + code)
// - A stable error model via Failure/ErrorRecord (path, code, message)
// - Descriptor builders under dsl/ with reflection-derived descriptors
// - Pluggable token sources via Source/JSONDriver (encoding/json, go-json)
//
// Design policy:
// - Keep only public contracts in the root package; put builders under dsl/
//   and detailed implementations under internal/.
// - Fail fast: descent stops at the first mismatch, never aggregates.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := dsl.MustBind[CreateUser](dsl.Object().
//		Field("name", dsl.String()).Required().
//		Field("age", dsl.Int64()).Required())
//	v, err := s.ParseBytes(ctx, body)
//	if rec, ok := jsonbind.TranslateError(err); ok {
//		// rec.Path == "age", rec.Message == "expected integer, found string"
//	}
