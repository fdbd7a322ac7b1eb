package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := CurrentSession(c)
		if sess == nil || !sess.Authenticated() {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		if !sess.User.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		return next(c)
	}
}
