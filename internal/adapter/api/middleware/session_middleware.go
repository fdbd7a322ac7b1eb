package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pixelmart/internal/infrastructure/session"
)

const (
	sessionCookie = "pm_session"
	sessionKey    = "session"
)

type SessionMiddleware struct {
	store *session.Store
}

func NewSessionMiddleware(store *session.Store) *SessionMiddleware {
	return &SessionMiddleware{
		store: store,
	}
}

// Attach loads (or starts) the visitor's session from the cookie and puts
// it on the echo context. A missing or unreadable session just becomes a
// fresh one.
func (m *SessionMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var id string
		if cookie, err := c.Cookie(sessionCookie); err == nil {
			id = cookie.Value
		}

		sess := m.store.Load(c.Request().Context(), id)
		if sess.ID != id {
			c.SetCookie(&http.Cookie{
				Name:     sessionCookie,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(sessionKey, sess)
		return next(c)
	}
}

// CurrentSession returns the session the middleware attached, or nil when
// the route skipped the middleware.
func CurrentSession(c echo.Context) *session.Session {
	sess, _ := c.Get(sessionKey).(*session.Session)
	return sess
}
