// Package requestid tags every request with a correlation id.
package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerKey  = "X-Request-ID"
	contextKey = "request_id"
)

// Middleware assigns a request id, keeping a caller-supplied one so ids
// correlate across the SPA and the API logs.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerKey)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(contextKey, id)
		c.Writer.Header().Set(headerKey, id)

		c.Next()
	}
}

// Value returns the id assigned to the request, empty outside the
// middleware.
func Value(c *gin.Context) string {
	return c.GetString(contextKey)
}
