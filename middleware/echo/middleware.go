package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"
	jsonbind "github.com/reoring/jsonbind"
	"github.com/reoring/jsonbind/middleware"
)

// BindJSON parses the request body via schema s, stores the typed value in the
// request context on success, or returns 400 with the translated ErrorRecord
// when binding fails.
func BindJSON[T any](s *jsonbind.Schema[T]) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v, err := s.ParseReader(c.Request().Context(), c.Request().Body)
			if err != nil {
				return c.JSON(http.StatusBadRequest, middleware.PayloadFromError(err))
			}
			ctx := middleware.ContextWithBody(c.Request().Context(), v)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetBody fetches the bound body value from echo.Context.
func GetBody[T any](c echo.Context) (T, bool) {
	return middleware.BodyFromContext[T](c.Request().Context())
}
