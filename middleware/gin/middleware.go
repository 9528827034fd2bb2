package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"
	jsonbind "github.com/reoring/jsonbind"
	"github.com/reoring/jsonbind/middleware"
)

// BindJSON parses the incoming JSON body using schema s, stores the typed
// value in the request context, and on failure aborts with 400 and the
// translated ErrorRecord payload.
func BindJSON[T any](s *jsonbind.Schema[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := s.ParseReader(c.Request.Context(), c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, middleware.PayloadFromError(err))
			c.Abort()
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithBody(c.Request.Context(), v))
		c.Next()
	}
}

// GetBody fetches the bound body value from gin.Context.
func GetBody[T any](c *gin.Context) (T, bool) {
	return middleware.BodyFromContext[T](c.Request.Context())
}
