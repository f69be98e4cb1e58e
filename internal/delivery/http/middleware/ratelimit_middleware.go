package middleware

import (
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const defaultPublicRate = "60-M"

// RateLimitMiddleware throttles unauthenticated routes per client IP using an
// in-memory store.
type RateLimitMiddleware struct {
	limiter *limiter.Limiter
}

// NewRateLimitMiddleware creates the rate limiter from the configured rate
// string, e.g. "60-M" for sixty requests per minute.
func NewRateLimitMiddleware(cfg *config.Config) (*RateLimitMiddleware, error) {
	rateSpec := defaultPublicRate
	if cfg.RateLimit != nil && cfg.RateLimit.Public != "" {
		rateSpec = cfg.RateLimit.Public
	}

	rate, err := limiter.NewRateFromFormatted(rateSpec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse rate limit")
	}

	return &RateLimitMiddleware{
		limiter: limiter.New(memory.NewStore(), rate),
	}, nil
}

// Limit rejects requests over the configured rate with 429.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		limiterCtx, err := m.limiter.Get(c.Request().Context(), c.RealIP())
		if err != nil {
			return errors.Wrap(err, "failed to check rate limit")
		}

		if limiterCtx.Reached {
			return response.Error(c, http.StatusTooManyRequests, "Too many requests")
		}

		return next(c)
	}
}
