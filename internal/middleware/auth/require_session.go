package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/beingsaumyadeep/py-commerce/internal/session"
)

type SessionMiddleware struct {
	Sessions *session.Store
}

// RequireSession resolves the bearer token against the session cache and
// stores the authenticated email under "user_email".
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}
		token := strings.TrimSpace(header[len(prefix):])
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "empty token")
		}

		email, err := m.Sessions.Resolve(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrUnauthenticated) {
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}

		c.Set("user_email", email)
		return next(c)
	}
}
