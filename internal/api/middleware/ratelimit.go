// internal/api/middleware/ratelimit.go
package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hades874/10MS-Req-Dash/internal/constants"
	"github.com/hades874/10MS-Req-Dash/internal/ratelimit"
)

func RateLimitMiddleware(rl *ratelimit.RateLimiter, key string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, count, err := rl.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
			c.Abort()
			return
		}

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", limit-count))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(window).Unix()))

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": window.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func AuthRateLimit(rl *ratelimit.RateLimiter) gin.HandlerFunc {
	return RateLimitMiddleware(rl, "global:auth", constants.GlobalAuthLimit, time.Minute)
}

func FeedRateLimit(rl *ratelimit.RateLimiter) gin.HandlerFunc {
	return RateLimitMiddleware(rl, "global:feed", constants.PublicFeedLimit, time.Minute)
}
