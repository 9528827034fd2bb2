package jsonbind

import (
	"github.com/reoring/jsonbind/i18n"
)

// ErrorRecord is the user-facing rendition of a Failure: a rendered path plus
// a human-readable message. It is derived deterministically from the Failure;
// for identical inputs (and an unchanged translator) repeated calls produce
// byte-identical records, so clients may pattern-match on both fields.
type ErrorRecord struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Translate converts a Failure into its stable ErrorRecord. The path renders
// per Path.String (root as RootRendering); the message comes from the current
// i18n translator with the failure's params interpolated.
func Translate(f *Failure) ErrorRecord {
	return ErrorRecord{
		Path:    f.Path.String(),
		Message: i18n.T(f.Code, f.Params),
	}
}

// TranslateError is a convenience over Translate for plain error values.
// It reports false when err carries no *Failure.
func TranslateError(err error) (ErrorRecord, bool) {
	f, ok := AsFailure(err)
	if !ok {
		return ErrorRecord{}, false
	}
	return Translate(f), true
}
