// middleware/rate_limiter.go

package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/andreyques41/lyfter-store/logging"
)

// Limiter is the sliding-window check the rate limiter middleware runs per
// request. The Redis cache adapter implements it.
type Limiter interface {
	RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error)
}

func RateLimiter(limiter Limiter, limit int, per time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		allowed, err := limiter.RateLimit(c, key, limit, per)
		if err != nil {
			// A broken limiter must not take the API down with it.
			logger.Warn("Rate limiting unavailable, allowing request", zap.Error(err), zap.String("ip", key))
			c.Next()
			return
		}

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Duration", per.String())

		if !allowed {
			logger.Warn("Rate limit exceeded",
				zap.String("ip", key),
				zap.Int("limit", limit),
				zap.Duration("per", per))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
