package jsonbind_test

import (
	"testing"

	jsonbind "github.com/reoring/jsonbind"
)

func TestPath_String(t *testing.T) {
	cases := []struct {
		name string
		path jsonbind.Path
		want string
	}{
		{"root", nil, "<root>"},
		{"single field", jsonbind.Path{jsonbind.FieldSeg("user")}, "user"},
		{"nested fields", jsonbind.Path{jsonbind.FieldSeg("user"), jsonbind.FieldSeg("age")}, "user.age"},
		{"index after field", jsonbind.Path{jsonbind.FieldSeg("items"), jsonbind.IndexSeg(2)}, "items[2]"},
		{"field after index", jsonbind.Path{jsonbind.FieldSeg("items"), jsonbind.IndexSeg(2), jsonbind.FieldSeg("name")}, "items[2].name"},
		{"leading index", jsonbind.Path{jsonbind.IndexSeg(0), jsonbind.FieldSeg("id")}, "[0].id"},
		{"double index", jsonbind.Path{jsonbind.FieldSeg("grid"), jsonbind.IndexSeg(1), jsonbind.IndexSeg(3)}, "grid[1][3]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.path.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPath_Pointer(t *testing.T) {
	cases := []struct {
		name string
		path jsonbind.Path
		want string
	}{
		{"root", nil, "/"},
		{"nested", jsonbind.Path{jsonbind.FieldSeg("items"), jsonbind.IndexSeg(2), jsonbind.FieldSeg("name")}, "/items/2/name"},
		{"escaping", jsonbind.Path{jsonbind.FieldSeg("a/b"), jsonbind.FieldSeg("c~d")}, "/a~1b/c~0d"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.path.Pointer(); got != tc.want {
				t.Fatalf("Pointer() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSegment_Accessors(t *testing.T) {
	f := jsonbind.FieldSeg("name")
	if f.IsIndex() || f.Field() != "name" {
		t.Fatalf("unexpected field segment: %+v", f)
	}
	i := jsonbind.IndexSeg(4)
	if !i.IsIndex() || i.Index() != 4 {
		t.Fatalf("unexpected index segment: %+v", i)
	}
}
