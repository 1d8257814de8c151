package middleware

import (
	"context"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
)

// Timeout bounds the request context. Store calls made with
// c.Request.Context() then fail once d has elapsed. A zero d disables it.
func Timeout(d time.Duration) drift.HandlerFunc {
	return func(c *drift.Context) {
		if d <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
