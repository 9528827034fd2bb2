package jsonbind_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	jsonbind "github.com/reoring/jsonbind"
	"github.com/reoring/jsonbind/dsl"
)

type address struct {
	City string `json:"city"`
	Zip  string `json:"zip"`
}

type account struct {
	ID        string      `json:"id"`
	Age       int64       `json:"age"`
	Score     float64     `json:"score"`
	Admin     bool        `json:"admin"`
	Nickname  *string     `json:"nickname"`
	Address   address     `json:"address"`
	Tags      []string    `json:"tags"`
	Balance   json.Number `json:"balance"`
	CreatedAt time.Time   `json:"created_at"`
}

func accountSchema() *jsonbind.Schema[account] {
	return dsl.MustBind[account](dsl.Object().
		Field("id", dsl.String()).Required().
		Field("age", dsl.Int64()).Required().
		Field("score", dsl.Float64()).Optional().
		Field("admin", dsl.Bool()).Default(false).
		Field("nickname", dsl.Nullable(dsl.String())).Optional().
		Field("address", dsl.Object().
			Field("city", dsl.String()).Required().
			Field("zip", dsl.String()).Optional().
			MustBuild()).Required().
		Field("tags", dsl.Array(dsl.String())).Optional().
		Field("balance", dsl.Number()).Optional().
		Field("created_at", dsl.TimeRFC3339()).Optional())
}

func TestSchemaBind_Struct(t *testing.T) {
	doc := `{
		"id": "u-1",
		"age": 41,
		"score": 9.5,
		"nickname": "nick",
		"address": {"city": "Kyoto", "zip": "600"},
		"tags": ["a", "b"],
		"balance": 10.25,
		"created_at": "2026-01-02T03:04:05Z"
	}`
	got, err := accountSchema().ParseBytes(context.Background(), []byte(doc))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if got.ID != "u-1" || got.Age != 41 || got.Score != 9.5 {
		t.Fatalf("scalars = %+v", got)
	}
	if got.Admin {
		t.Fatalf("admin default should be false")
	}
	if got.Nickname == nil || *got.Nickname != "nick" {
		t.Fatalf("nickname = %v", got.Nickname)
	}
	if got.Address.City != "Kyoto" || got.Address.Zip != "600" {
		t.Fatalf("address = %+v", got.Address)
	}
	if len(got.Tags) != 2 || got.Tags[1] != "b" {
		t.Fatalf("tags = %v", got.Tags)
	}
	if got.Balance.String() != "10.25" {
		t.Fatalf("balance = %q", got.Balance)
	}
	want := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if !got.CreatedAt.Equal(want) {
		t.Fatalf("created_at = %v", got.CreatedAt)
	}
}

func TestSchemaBind_NullPointer(t *testing.T) {
	doc := `{"id":"u-2","age":1,"nickname":null,"address":{"city":"x"}}`
	got, err := accountSchema().ParseBytes(context.Background(), []byte(doc))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if got.Nickname != nil {
		t.Fatalf("nickname = %v, want nil", got.Nickname)
	}
}

func TestSchemaBind_NestedFailurePath(t *testing.T) {
	doc := `{"id":"u-3","age":1,"address":{"city":42}}`
	_, err := accountSchema().ParseBytes(context.Background(), []byte(doc))
	f, ok := jsonbind.AsFailure(err)
	if !ok {
		t.Fatalf("expected failure, got %v", err)
	}
	if f.Path.String() != "address.city" {
		t.Fatalf("path = %q", f.Path.String())
	}
}

func TestSchemaBind_BadTimestamp(t *testing.T) {
	doc := `{"id":"u-4","age":1,"address":{"city":"x"},"created_at":"not a time"}`
	_, err := accountSchema().ParseBytes(context.Background(), []byte(doc))
	f, ok := jsonbind.AsFailure(err)
	if !ok {
		t.Fatalf("expected failure, got %v", err)
	}
	if f.Code != jsonbind.CodeInvalidFormat || f.Path.String() != "created_at" {
		t.Fatalf("failure = %v", f)
	}
}

func TestSchemaBind_MapTarget(t *testing.T) {
	d := dsl.Object().
		Field("a", dsl.Int64()).Required().
		Field("b", dsl.String()).Required().
		MustBuild()
	s := jsonbind.MustSchema[map[string]any](d)
	got, err := s.ParseBytes(context.Background(), []byte(`{"a":1,"b":"x"}`))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if got["a"] != int64(1) || got["b"] != "x" {
		t.Fatalf("map = %v", got)
	}
}

func TestSchemaBind_ParseReader(t *testing.T) {
	s := jsonbind.MustSchema[map[string]any](
		dsl.Object().Field("ok", dsl.Bool()).Required().MustBuild())
	got, err := s.ParseReader(context.Background(), strings.NewReader(`{"ok":true}`))
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	if got["ok"] != true {
		t.Fatalf("got = %v", got)
	}
}

func TestSchemaBind_StructKeyResolution(t *testing.T) {
	type tagged struct {
		A string `jsonbind:"name=alpha" json:"ignored"`
		B string `json:"beta"`
		C string
	}
	s := dsl.MustBind[tagged](dsl.Object().
		Field("alpha", dsl.String()).Required().
		Field("beta", dsl.String()).Required().
		Field("C", dsl.String()).Required())
	got, err := s.ParseBytes(context.Background(), []byte(`{"alpha":"1","beta":"2","C":"3"}`))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if got.A != "1" || got.B != "2" || got.C != "3" {
		t.Fatalf("got = %+v", got)
	}
}

func TestSchemaBind_NarrowFieldOverflow(t *testing.T) {
	// descriptor is wider than the struct field; the binder must reject
	// values the field cannot hold instead of wrapping them
	type tiny struct {
		N int8  `json:"n"`
		U uint8 `json:"u"`
	}
	s := dsl.MustBind[tiny](dsl.Object().
		Field("n", dsl.Int64()).Required().
		Field("u", dsl.Uint64()).Required())

	_, err := s.ParseBytes(context.Background(), []byte(`{"n":300,"u":1}`))
	f, ok := jsonbind.AsFailure(err)
	if !ok {
		t.Fatalf("expected failure, got %v", err)
	}
	if f.Code != jsonbind.CodeOutOfRange || f.Path.String() != "n" {
		t.Fatalf("failure = %v", f)
	}

	_, err = s.ParseBytes(context.Background(), []byte(`{"n":1,"u":300}`))
	f, ok = jsonbind.AsFailure(err)
	if !ok || f.Code != jsonbind.CodeOutOfRange || f.Path.String() != "u" {
		t.Fatalf("failure = %v", f)
	}

	got, err := s.ParseBytes(context.Background(), []byte(`{"n":-128,"u":255}`))
	if err != nil {
		t.Fatalf("in-range values: %v", err)
	}
	if got.N != -128 || got.U != 255 {
		t.Fatalf("got = %+v", got)
	}
}

func TestSchemaBind_NegativeIntoUnsignedField(t *testing.T) {
	type counted struct {
		N uint16 `json:"n"`
	}
	s := dsl.MustBind[counted](dsl.Object().Field("n", dsl.Int64()).Required())
	_, err := s.ParseBytes(context.Background(), []byte(`{"n":-1}`))
	f, ok := jsonbind.AsFailure(err)
	if !ok || f.Code != jsonbind.CodeOutOfRange || f.Path.String() != "n" {
		t.Fatalf("failure = %v", f)
	}
}

func TestSchemaBind_MismatchMessage(t *testing.T) {
	// descriptor and struct disagree; the translated message must still be
	// fully rendered
	type wrong struct {
		N int64 `json:"n"`
	}
	s := dsl.MustBind[wrong](dsl.Object().Field("n", dsl.String()).Required())
	_, err := s.ParseBytes(context.Background(), []byte(`{"n":"x"}`))
	f, ok := jsonbind.AsFailure(err)
	if !ok {
		t.Fatalf("expected failure, got %v", err)
	}
	if f.Code != jsonbind.CodeInvalidType || f.Path.String() != "n" {
		t.Fatalf("failure = %v", f)
	}
	rec := jsonbind.Translate(f)
	if rec.Message != "expected int64, found string" {
		t.Fatalf("message = %q", rec.Message)
	}
	if strings.Contains(rec.Message, "{") {
		t.Fatalf("unrendered placeholder in %q", rec.Message)
	}
}

func TestNewSchema_NilDescriptor(t *testing.T) {
	if _, err := jsonbind.NewSchema[struct{}](nil); err == nil {
		t.Fatalf("NewSchema(nil) should fail")
	}
}
