package dsl

import (
	jsonbind "github.com/reoring/jsonbind"
)

// Bind builds the object descriptor and binds it to type T.
func Bind[T any](b *objectBuilder) (*jsonbind.Schema[T], error) {
	d, err := b.Build()
	if err != nil {
		return nil, err
	}
	return jsonbind.NewSchema[T](d)
}

// MustBind is like Bind but panics on error.
func MustBind[T any](b *objectBuilder) *jsonbind.Schema[T] {
	s, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return s
}
