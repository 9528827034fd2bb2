package jsonbind_test

import (
	"errors"
	"testing"

	jsonbind "github.com/reoring/jsonbind"
)

func TestTranslate_Templates(t *testing.T) {
	cases := []struct {
		name    string
		failure *jsonbind.Failure
		want    jsonbind.ErrorRecord
	}{
		{
			"type mismatch",
			jsonbind.NewFailure(
				jsonbind.Path{jsonbind.FieldSeg("user"), jsonbind.FieldSeg("age")},
				jsonbind.CodeInvalidType, "expected", "integer", "found", "string"),
			jsonbind.ErrorRecord{Path: "user.age", Message: "expected integer, found string"},
		},
		{
			"missing field at container",
			jsonbind.NewFailure(
				jsonbind.Path{jsonbind.FieldSeg("user")},
				jsonbind.CodeRequired, "name", "age"),
			jsonbind.ErrorRecord{Path: "user", Message: `missing required field "age"`},
		},
		{
			"unknown field at root",
			jsonbind.NewFailure(nil, jsonbind.CodeUnknownKey, "name", "extra"),
			jsonbind.ErrorRecord{Path: "<root>", Message: `unknown field "extra"`},
		},
		{
			"out of range",
			jsonbind.NewFailure(
				jsonbind.Path{jsonbind.FieldSeg("count")},
				jsonbind.CodeOutOfRange, "detail", "3000000000 does not fit in int32"),
			jsonbind.ErrorRecord{Path: "count", Message: "value out of range: 3000000000 does not fit in int32"},
		},
		{
			"invalid format",
			jsonbind.NewFailure(nil, jsonbind.CodeInvalidFormat, "detail", "unexpected end of input"),
			jsonbind.ErrorRecord{Path: "<root>", Message: "invalid format: unexpected end of input"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := jsonbind.Translate(tc.failure); got != tc.want {
				t.Fatalf("Translate() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestTranslate_Deterministic(t *testing.T) {
	f := jsonbind.NewFailure(
		jsonbind.Path{jsonbind.FieldSeg("items"), jsonbind.IndexSeg(2)},
		jsonbind.CodeInvalidType, "expected", "integer", "found", "string")
	first := jsonbind.Translate(f)
	for i := 0; i < 100; i++ {
		if got := jsonbind.Translate(f); got != first {
			t.Fatalf("call %d produced %+v, first was %+v", i, got, first)
		}
	}
}

func TestTranslateError(t *testing.T) {
	if _, ok := jsonbind.TranslateError(errors.New("plain")); ok {
		t.Fatalf("plain error should not translate")
	}
	f := jsonbind.NewFailure(nil, jsonbind.CodeRequired, "name", "id")
	rec, ok := jsonbind.TranslateError(f)
	if !ok || rec.Path != "<root>" {
		t.Fatalf("TranslateError = %+v, %v", rec, ok)
	}
}
