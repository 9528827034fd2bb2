package dsl_test

import (
	"context"
	"testing"

	jsonbind "github.com/reoring/jsonbind"
	"github.com/reoring/jsonbind/dsl"
)

func TestMap_Decode(t *testing.T) {
	d := dsl.Map(dsl.Int64())
	got, err := jsonbind.ParseBytes(context.Background(), d, []byte(`{"a":1,"b":2}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := got.(map[string]any)
	if m["a"] != int64(1) || m["b"] != int64(2) {
		t.Fatalf("map = %v", m)
	}
}

func TestMap_BadValuePath(t *testing.T) {
	d := dsl.Map(dsl.Int64())
	_, err := jsonbind.ParseBytes(context.Background(), d, []byte(`{"a":1,"b":"x"}`))
	f, ok := jsonbind.AsFailure(err)
	if !ok {
		t.Fatalf("expected failure, got %v", err)
	}
	if f.Path.String() != "b" || f.Code != jsonbind.CodeInvalidType {
		t.Fatalf("failure = %v", f)
	}
}

func TestMap_NotObject(t *testing.T) {
	_, err := jsonbind.ParseBytes(context.Background(), dsl.Map(dsl.String()), []byte(`[1]`))
	f, ok := jsonbind.AsFailure(err)
	if !ok || f.Code != jsonbind.CodeInvalidType || f.Param("found") != "array" {
		t.Fatalf("failure = %v", f)
	}
}

func TestMap_TypedTarget(t *testing.T) {
	s := jsonbind.MustSchema[map[string]int64](dsl.Map(dsl.Int64()))
	got, err := s.ParseBytes(context.Background(), []byte(`{"x":7}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got["x"] != 7 {
		t.Fatalf("got = %v", got)
	}
}
