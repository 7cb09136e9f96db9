package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/pkg/logger"
)

// RateLimit enforces `limit` requests per `window` per caller on the wrapped
// routes, keyed by user ID when authenticated and remote IP otherwise. A nil
// redis client disables limiting entirely, and redis failures fail open: a
// broken limiter must not take down writes.
func RateLimit(rdb *redis.Client, resource string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		id := "ip:" + c.ClientIP()
		if user, ok := CurrentUser(c); ok {
			id = "user:" + user.ID.String()
		}
		key := fmt.Sprintf("rl:%s:%s", resource, id)

		ctx := c.Request.Context()
		cnt, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn().Err(err).Str("resource", resource).Msg("Rate limit check failed, allowing request")
			c.Next()
			return
		}
		if cnt == 1 {
			rdb.Expire(ctx, key, window)
		}
		if cnt > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(http.StatusTooManyRequests, "Rate limit exceeded"))
			return
		}
		c.Next()
	}
}
