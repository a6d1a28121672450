package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/car-rental-admin/internal/config"
)

// SubmitLimit throttles POST requests per admin with a fixed window counter
// in Redis.  Other methods pass untouched.  Without Redis, or when Redis
// fails, requests are let through.
func SubmitLimit(cfg config.SubmitLimitConfig, rdb *redis.Client, log *slog.Logger) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodPost {
				return next(c)
			}
			now := time.Now()
			window := now.Truncate(cfg.Window)
			key := fmt.Sprintf("%s:%s:%d", cfg.Prefix, AdminID(c), window.Unix())

			ctx := c.Request().Context()
			var incr *redis.IntCmd
			_, err := rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
				incr = p.Incr(ctx, key)
				p.Expire(ctx, key, cfg.Window)
				return nil
			})
			if err != nil {
				log.WarnContext(ctx, "submit limit: redis unavailable", "key", key, "error", err)
				return next(c)
			}

			count := incr.Val()
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Max))
			if remaining := int64(cfg.Max) - count; remaining >= 0 {
				c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
				return next(c)
			}
			retry := window.Add(cfg.Window).Sub(now)
			c.Response().Header().Set("Retry-After", strconv.Itoa(int(retry.Seconds())+1))
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many submissions")
		}
	}
}
