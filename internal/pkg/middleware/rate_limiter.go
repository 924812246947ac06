package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/onestop/internal/pkg/constants"
	"github.com/piresc/onestop/internal/pkg/logger"
	"github.com/piresc/onestop/internal/pkg/metrics"
	"github.com/piresc/onestop/internal/utils"
)

// WindowCounter counts hits inside a fixed expiry window
type WindowCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Counter WindowCounter
	Limit   int           // Maximum number of requests
	Period  time.Duration // Time period for the limit
	Metrics *metrics.Collector
	Timeout time.Duration // bound on the counter call, defaults to 500ms
}

// RateLimiterMiddleware limits requests per client IP over a fixed window.
// Counter failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	if config.Timeout <= 0 {
		config.Timeout = 500 * time.Millisecond
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			key := fmt.Sprintf(constants.KeyRateLimit, identifier)

			ctx, cancel := context.WithTimeout(c.Request().Context(), config.Timeout)
			count, err := config.Counter.IncrWindow(ctx, key, config.Period)
			cancel()

			if err != nil {
				logger.WarnCtx(c.Request().Context(), "Rate limiter unavailable, allowing request",
					logger.String("client_ip", identifier),
					logger.Err(err))
				if config.Metrics != nil {
					config.Metrics.CacheErrors.WithLabelValues("rate_limit").Inc()
				}
				return next(c)
			}

			remaining := config.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if count > int64(config.Limit) {
				if config.Metrics != nil {
					config.Metrics.RateLimitRejected.Inc()
				}
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(config.Period.Seconds()), 10))
				return utils.TooManyRequestsResponse(c)
			}

			return next(c)
		}
	}
}

// IPRateLimiter creates a simple IP-based rate limiter
func IPRateLimiter(limit int, period time.Duration, counter WindowCounter, m *metrics.Collector) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		Counter: counter,
		Limit:   limit,
		Period:  period,
		Metrics: m,
	})
}
