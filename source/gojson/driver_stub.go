//go:build !gojson

package gojson

import (
	"io"

	jsonbind "github.com/reoring/jsonbind"
	jsonsrc "github.com/reoring/jsonbind/source/json"
)

// Driver returns a stub driver description when the gojson tag is not enabled.
// It delegates to the encoding/json-based source directly to avoid recursion.
func Driver() jsonbind.JSONDriver { return stub{} }

type stub struct{}

func (stub) NewReader(r io.Reader) jsonbind.Source {
	return jsonbind.SourceFromTokens(jsonsrc.NewReader(r))
}
func (stub) NewBytes(b []byte) jsonbind.Source {
	return jsonbind.SourceFromTokens(jsonsrc.NewBytes(b))
}
func (stub) Name() string { return "encoding/json (gojson stub)" }
