package middleware

import (
	"net/http"
	"strings"

	"github.com/financas-app/financas-backend/internal/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// protectedPrefixes are the page sections that require a session.
var protectedPrefixes = []string{"/dashboard", "/categorias", "/lancamentos"}

func isProtectedPage(path string) bool {
	for _, prefix := range protectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// PageGuard gates browser page routes on session state. Rules, first match
// wins:
//  1. no session + protected path: redirect to /login
//  2. session + /login or /signup: redirect to /dashboard
//  3. root: redirect to /dashboard or /login depending on session
//  4. otherwise proceed, re-issuing the cookie once the token is past half
//     its lifetime
//
// Any session validation error counts as no session (fail closed).
func PageGuard(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var claims *session.Claims
			if token := extractToken(c); token != "" {
				parsed, err := sessions.Validate(token)
				if err != nil {
					log.Debug().Err(err).Msg("Page guard treating request as unauthenticated")
				} else {
					claims = parsed
				}
			}

			path := c.Request().URL.Path
			switch {
			case claims == nil && isProtectedPage(path):
				return c.Redirect(http.StatusFound, "/login")
			case claims != nil && (path == "/login" || path == "/signup"):
				return c.Redirect(http.StatusFound, "/dashboard")
			case path == "/":
				if claims != nil {
					return c.Redirect(http.StatusFound, "/dashboard")
				}
				return c.Redirect(http.StatusFound, "/login")
			}

			if claims != nil && sessions.ShouldRefresh(claims) {
				userID, err := claims.UserID()
				if err == nil {
					if token, err := sessions.Issue(userID, claims.Email); err == nil {
						sessions.WriteCookie(c, token)
					}
				}
			}

			return next(c)
		}
	}
}
