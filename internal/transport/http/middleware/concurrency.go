package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	resp "gin-user-rpc/internal/transport/http/response"
)

// ConcurrencyLimit caps in-flight requests; a request that cannot get a
// slot before its context ends gets 503.
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	if max <= 0 {
		return passThrough
	}
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c.Request.Context(), 1); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, resp.Error(http.StatusServiceUnavailable, ""))
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
