package ratelimit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware rejects requests over the client's quota with a plain-text 429
// and a Retry-After header. The client key is the remote address as seen by
// gin, so quotas are partitioned per caller.
func Middleware(limiter *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := limiter.Allow(c.ClientIP())
		if !res.Allowed {
			retryAfter := int(res.RetryAfter/time.Second) + 1
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.String(http.StatusTooManyRequests, "Too Many Requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
