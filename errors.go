package jsonbind

import (
	"errors"
	"fmt"
)

// Failure codes (exported consts for IDE completion and type safety by
// convention). The set is closed: every failure a parse can produce carries
// exactly one of these.
const (
	CodeInvalidType   = "invalid_type"   // wrong node kind for the expected shape
	CodeRequired      = "required"       // required object field missing
	CodeUnknownKey    = "unknown_key"    // unknown field under a strict object
	CodeOutOfRange    = "out_of_range"   // numeric value outside the declared width/bounds
	CodeInvalidFormat = "invalid_format" // malformed document, duplicate key, or bad formatted string
)

// Failure describes the first irrecoverable mismatch of a parse: where it was
// detected and why. A failed parse produces exactly one Failure; descent stops
// at the first mismatch and never aggregates.
type Failure struct {
	Path   Path              // root-to-failure traversal; empty = root
	Code   string            // one of the codes above
	Params map[string]string // structured details ("expected", "found", "name", "detail", ...)
	Offset int64             // byte offset in the input when known (-1 otherwise)
	Cause  error             // optional underlying error
}

// Error summarizes the failure, e.g. "invalid_type at user.age".
func (f *Failure) Error() string {
	return fmt.Sprintf("%s at %s", f.Code, f.Path.String())
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (f *Failure) Unwrap() error { return f.Cause }

// Param returns the named param ("" when absent).
func (f *Failure) Param(key string) string {
	if f.Params == nil {
		return ""
	}
	return f.Params[key]
}

// AsFailure extracts a *Failure from an error using errors.As internally.
func AsFailure(err error) (*Failure, bool) {
	if err == nil {
		return nil, false
	}
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// NewFailure constructs a Failure at the given path. kv pairs populate Params.
func NewFailure(path Path, code string, kv ...string) *Failure {
	f := &Failure{Path: path, Code: code, Offset: -1}
	if len(kv) > 0 {
		f.Params = make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			f.Params[kv[i]] = kv[i+1]
		}
	}
	return f
}

// PrependSegment rebases err under seg when it is a *Failure, so that child
// descriptors can report paths relative to themselves and containers restore
// the document-root view on the way out. Non-Failure errors pass through.
func PrependSegment(err error, seg Segment) error {
	if err == nil {
		return nil
	}
	f, ok := AsFailure(err)
	if !ok {
		return err
	}
	rebased := *f
	rebased.Path = append(Path{seg}, f.Path...)
	return &rebased
}
