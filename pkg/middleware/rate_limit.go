package middleware

import (
	"fmt"
	"net/http"
	"time"

	"guestbook/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyFmt = "guestbook:rate:%s:%s"

// RateLimitMiddleware caps each caller at limit requests per window, counted
// per path in Redis. Authenticated callers are keyed by user id, anonymous
// ones by client IP. When Redis is unreachable the limiter fails open; a
// degraded cache must not take the API down with it.
func RateLimitMiddleware(redisClient *redis.Client, log *logger.Logger, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := c.GetString("user_id")
		if caller == "" {
			caller = c.ClientIP()
		}

		key := fmt.Sprintf(rateLimitKeyFmt, c.Request.URL.Path, caller)

		ctx := c.Request.Context()
		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			log.Warn("Rate limiter unavailable, letting request through: %v", err)
			c.Next()
			return
		}

		if count == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
