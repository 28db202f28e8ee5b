package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodyBytes 限制请求体大小. Binding code turns the resulting
// *http.MaxBytesError into a 413.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	if n <= 0 {
		return passThrough
	}
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
