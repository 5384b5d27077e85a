package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestTimeoutMiddleware caps how long a request may wait on the
// store, pool acquisition included. Expiry surfaces downstream as
// context.DeadlineExceeded, which the service layer reports as a
// transient store failure.
func RequestTimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
