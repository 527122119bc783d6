package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/reelhub/reelhub-api/internal/api/metrics"
	"github.com/reelhub/reelhub-api/internal/core/ports"
)

// SessionCookie is the cookie the login handler sets for browser clients.
// API clients may present the same token as an Authorization bearer header.
const SessionCookie = "reelhub_session"

// publicRoutes is the explicit allow-list of method+path pairs that need no
// session. Everything not listed here is protected (fail-closed), including
// paths the router does not know.
var publicRoutes = map[string]struct{}{
	"POST /auth/register": {},
	"POST /auth/login":    {},
	"GET /":               {},
	"GET /login":          {},
	"GET /register":       {},
	"GET /api/videos":     {},
	"GET /health":         {},
	"GET /health/ready":   {},
	"GET /metrics":        {},
}

// Gate is the access gate: it classifies every request as public or protected
// and, for protected ones, admits the request only when the presented token
// resolves to a valid session. On success the session's user id is stored in
// the request context under "user_id".
func Gate(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if _, ok := publicRoutes[req.Method+" "+req.URL.Path]; ok {
				return next(c)
			}

			token := extractToken(c)
			if token == "" {
				return deny(c)
			}

			session, err := sessions.Resolve(token)
			if err != nil {
				return deny(c)
			}

			c.Set("user_id", session.UserID)
			c.Set("session", session)
			return next(c)
		}
	}
}

// extractToken pulls the session token from the Authorization header or,
// failing that, the session cookie.
func extractToken(c echo.Context) string {
	if header := c.Request().Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// deny rejects an unauthenticated request. Browser navigations are sent to
// the login page; API clients get a JSON 401 they can actually parse.
func deny(c echo.Context) error {
	if isBrowserNavigation(c) {
		metrics.GateDeniedTotal.WithLabelValues("redirect").Inc()
		return c.Redirect(http.StatusFound, "/login")
	}
	metrics.GateDeniedTotal.WithLabelValues("unauthorized").Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
}

// isBrowserNavigation reports whether the request looks like a page load
// rather than an API call: a GET outside /api and /auth that accepts HTML.
func isBrowserNavigation(c echo.Context) bool {
	req := c.Request()
	if req.Method != http.MethodGet {
		return false
	}
	path := req.URL.Path
	if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/auth/") {
		return false
	}
	return strings.Contains(req.Header.Get("Accept"), "text/html")
}
