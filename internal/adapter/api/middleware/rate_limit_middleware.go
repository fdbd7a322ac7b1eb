package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"pixelmart/internal/infrastructure/ratelimit"
	"pixelmart/pkg/errors"
	"pixelmart/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles an action per visitor session, falling back to the
// remote address for visitors without a session yet.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			visitorID := c.RealIP()
			if sess := CurrentSession(c); sess != nil {
				visitorID = sess.ID
			}

			allowed, wait := m.limiter.Allow(visitorID, action)
			if !allowed {
				return response.Error(c, errors.TooManyRequests(
					fmt.Sprintf("Too many attempts, try again in %.0f seconds", wait.Seconds())))
			}

			return next(c)
		}
	}
}
