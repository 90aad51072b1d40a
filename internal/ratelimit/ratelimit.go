package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "ratelimit:"

// Limiter is a fixed-window request counter kept in Redis
type Limiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
}

// NewLimiter creates a limiter allowing limit requests per window for each key
func NewLimiter(client *redis.Client, limit int, window time.Duration) *Limiter {
	return &Limiter{
		redis:  client,
		limit:  limit,
		window: window,
	}
}

// Allow counts a request for key and reports whether it is within the limit.
// The window TTL is set on every call unless the key already has one, so a
// counter left without a TTL still expires.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	key = keyPrefix + key

	var incr *redis.IntCmd
	_, err := l.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit: %w", err)
	}

	return incr.Val() <= int64(l.limit), nil
}

// Middleware rejects clients over the limit with 429. Requests are keyed by client IP.
// Redis failures are logged and the request is let through.
func Middleware(l *Limiter, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := l.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn("rate limit check failed", zap.Error(err))
				return next(c)
			}
			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests)
			}
			return next(c)
		}
	}
}
