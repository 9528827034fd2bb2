package middleware

import (
	"context"

	jsonbind "github.com/reoring/jsonbind"
)

// ctxKeyBody is a typed context key for storing the bound body value.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyBody[T any] struct{}

// ContextWithBody attaches a bound body value to the context.
func ContextWithBody[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyBody[T]{}, v)
}

// BodyFromContext retrieves the bound body value from context.
func BodyFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyBody[T]{}).(T)
	return v, ok
}

// ErrorPayload shapes an ErrorRecord for JSON responses:
// {"error":{"path":"items[2].name","message":"expected string, found number"}}.
func ErrorPayload(rec jsonbind.ErrorRecord) map[string]any {
	return map[string]any{"error": rec}
}

// PayloadFromError renders any binder error as a response payload. Failures
// become the structured ErrorPayload; anything else degrades to a plain
// message.
func PayloadFromError(err error) map[string]any {
	if rec, ok := jsonbind.TranslateError(err); ok {
		return ErrorPayload(rec)
	}
	return map[string]any{"error": map[string]any{"path": jsonbind.RootRendering, "message": err.Error()}}
}
