package dsl

import (
	jsonbind "github.com/reoring/jsonbind"
)

type objectBuilder struct {
	fields []fieldSpec
	index  map[string]int
	strict bool
}

type fieldSpec struct {
	name       string
	desc       jsonbind.Descriptor
	required   bool
	hasDefault bool
	def        any
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new object builder. Unknown fields are ignored by default;
// call UnknownStrict to reject them.
func Object() *objectBuilder {
	return &objectBuilder{index: map[string]int{}}
}

// Field registers a field with its descriptor. Declaration order is
// significant: descent visits fields in the order they were declared.
// Re-declaring a name replaces the earlier descriptor in place.
func (b *objectBuilder) Field(name string, d jsonbind.Descriptor) *fieldStep {
	if i, ok := b.index[name]; ok {
		b.fields[i].desc = d
	} else {
		b.index[name] = len(b.fields)
		b.fields = append(b.fields, fieldSpec{name: name, desc: d})
	}
	return &fieldStep{b: b, name: name}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder {
	f.b.fields[f.b.index[f.name]].required = true
	return f.b
}

// Optional marks the field as optional (the default) and returns the builder.
func (f *fieldStep) Optional() *objectBuilder {
	f.b.fields[f.b.index[f.name]].required = false
	return f.b
}

// Default registers a fallback Go value materialized when the field is absent.
// A defaulted field is implicitly optional. The value is trusted as-is; it is
// not re-validated against the field descriptor.
func (f *fieldStep) Default(v any) *objectBuilder {
	fs := &f.b.fields[f.b.index[f.name]]
	fs.hasDefault = true
	fs.def = v
	fs.required = false
	return f.b
}

// Chaining conveniences so Field(...).Field(...) reads naturally.
func (f *fieldStep) Field(name string, d jsonbind.Descriptor) *fieldStep { return f.b.Field(name, d) }
func (f *fieldStep) Require(names ...string) *objectBuilder             { return f.b.Require(names...) }
func (f *fieldStep) UnknownStrict() *objectBuilder                      { return f.b.UnknownStrict() }
func (f *fieldStep) UnknownIgnore() *objectBuilder                      { return f.b.UnknownIgnore() }
func (f *fieldStep) Build() (jsonbind.Descriptor, error)                { return f.b.Build() }
func (f *fieldStep) MustBuild() jsonbind.Descriptor                     { return f.b.MustBuild() }

// Require marks one or more fields as required.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	for _, n := range names {
		if i, ok := b.index[n]; ok {
			b.fields[i].required = true
		}
	}
	return b
}

// UnknownStrict rejects the first unknown field (in document order).
func (b *objectBuilder) UnknownStrict() *objectBuilder {
	b.strict = true
	return b
}

// UnknownIgnore silently discards unknown fields (the default).
func (b *objectBuilder) UnknownIgnore() *objectBuilder {
	b.strict = false
	return b
}

// Build returns the object descriptor.
func (b *objectBuilder) Build() (jsonbind.Descriptor, error) {
	fields := make([]fieldSpec, len(b.fields))
	copy(fields, b.fields)
	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f.name] = struct{}{}
	}
	return &objectDesc{fields: fields, known: known, strict: b.strict}, nil
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() jsonbind.Descriptor {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}
