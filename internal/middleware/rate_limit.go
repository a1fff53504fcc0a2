package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/country-gallery-api/internal/config"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
)

type RateLimitMiddleware struct {
	redis  redis.Cmdable
	config *config.Config
	logger *logger.Logger
	now    func() time.Time
}

func NewRateLimitMiddleware(redis redis.Cmdable, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
		now:    time.Now,
	}
}

// GlobalRateLimit bounds requests per client IP per minute across the API.
func (m *RateLimitMiddleware) GlobalRateLimit() gin.HandlerFunc {
	limit := m.config.RateLimit.Global
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:global:%s", c.ClientIP())
		m.enforce(c, key, limit, time.Minute, "Global rate limit exceeded")
	}
}

// AttemptRateLimit bounds attempts at a code-protected action, such as login,
// upload or delete, per client IP. Each scope has its own counter.
func (m *RateLimitMiddleware) AttemptRateLimit(scope string) gin.HandlerFunc {
	limit := m.config.RateLimit.Attempts
	window := m.config.RateLimit.Window
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s:%s", scope, c.ClientIP())
		m.enforce(c, key, limit, window, "Too many attempts, try again later")
	}
}

func (m *RateLimitMiddleware) enforce(c *gin.Context, key string, limit int, window time.Duration, message string) {
	if limit <= 0 {
		c.Next()
		return
	}

	current, err := m.hit(c.Request.Context(), key, window)
	if err != nil {
		// fail open
		m.logger.Error("Redis error in rate limiting", err)
		c.Next()
		return
	}

	reset := m.now().Add(window).Unix()
	remaining := limit - int(current)
	if remaining < 0 {
		remaining = 0
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

	if int(current) > limit {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": message,
			"limit": limit,
			"reset": reset,
		})
		return
	}

	c.Next()
}

// hit counts one request in a fixed window that starts with the first hit.
func (m *RateLimitMiddleware) hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := m.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
