package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/adipras/campusfound/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // Key prefix for Redis
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
	Message     string        // 429 body message
}

// RateLimiterMiddleware creates a middleware for fixed-window rate limiting
// backed by Redis. Counters are keyed per client IP; the window starts on the
// first request and INCR keeps the check atomic under concurrency.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			key := fmt.Sprintf("ratelimit:%s:%s", config.Key, identifier)

			ctx := context.Background()

			count, err := config.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				return utils.InternalServerErrorResponse(c, "Rate limiter error")
			}

			// First hit of the window sets the expiry
			if count == 1 {
				if err := config.RedisClient.Expire(ctx, key, config.Period).Err(); err != nil {
					return utils.InternalServerErrorResponse(c, "Rate limiter error")
				}
			}

			if count > int64(config.Limit) {
				ttl, err := config.RedisClient.TTL(ctx, key).Result()
				if err != nil {
					ttl = config.Period
				}

				c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))

				message := config.Message
				if message == "" {
					message = http.StatusText(http.StatusTooManyRequests)
				}
				return utils.TooManyRequestsResponse(c, message)
			}

			remaining := int64(config.Limit) - count
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			return next(c)
		}
	}
}

// IPRateLimiter creates an IP-based rate limiter with the given key prefix
func IPRateLimiter(key string, limit int, period time.Duration, message string, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         key,
		Limit:       limit,
		Period:      period,
		Message:     message,
	})
}
