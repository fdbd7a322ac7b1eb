package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pixelmart/internal/infrastructure/session"
	"pixelmart/pkg/logger"
)

type AuthMiddleware struct {
	store *session.Store
}

func NewAuthMiddleware(store *session.Store) *AuthMiddleware {
	return &AuthMiddleware{
		store: store,
	}
}

// Authenticate requires a signed-in session. An anonymous visitor gets a
// 401 pointing at /login, with the requested page remembered so login can
// send them back.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := CurrentSession(c)
		if sess == nil || !sess.Authenticated() {
			if sess != nil {
				sess.RedirectAfterLogin = c.Request().URL.RequestURI()
				if err := m.store.Save(c.Request().Context(), sess); err != nil {
					logger.Warn("Failed to remember redirect for session %s: %v", sess.ID, err)
				}
			}
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"message":  "Please log in to continue",
				"redirect": "/login",
			})
		}

		return next(c)
	}
}
