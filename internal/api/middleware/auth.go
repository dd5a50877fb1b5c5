package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inovaindustria/industria-api/internal/auth"
	"github.com/inovaindustria/industria-api/internal/metrics"
)

const (
	authScheme  = "Bearer"
	realm       = "inova-industria"
	loginPath   = "/auth/login"
	identityKey = "identity"
)

// Auth gates every request except the allow-list: CORS preflight, the login
// route, and the unauthenticated infrastructure probes. On success it
// attaches the caller's Identity to the request context; on any failure it
// answers 401 with a WWW-Authenticate challenge and a deliberately generic
// body. The specific rejection reason goes to the server log only.
func Auth(tokens *auth.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			// CORS preflight never carries credentials.
			if req.Method == http.MethodOptions {
				return next(c)
			}

			if isPublicPath(req.URL.Path) {
				return next(c)
			}

			authHeader := req.Header.Get(echo.HeaderAuthorization)
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], authScheme) {
				log.Debug().Str("path", req.URL.Path).Msg("missing or malformed authorization header")
				metrics.AuthRejectionsTotal.WithLabelValues("missing_credentials").Inc()
				return unauthorized(c)
			}

			claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				log.Warn().Err(err).Str("path", req.URL.Path).Msg("token rejected")
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return unauthorized(c)
			}

			c.Set(identityKey, auth.IdentityFromClaims(claims))
			return next(c)
		}
	}
}

// isPublicPath reports whether the path bypasses authentication. The login
// match is deliberately tolerant of a leading slash and of mount-prefix
// variations (exact, slash-stripped, prefix, suffix).
func isPublicPath(path string) bool {
	trimmed := strings.TrimPrefix(path, "/")
	login := strings.TrimPrefix(loginPath, "/")
	if trimmed == login || strings.HasPrefix(trimmed, login) || strings.HasSuffix(trimmed, login) {
		return true
	}

	// Infrastructure endpoints: probes, metrics, API docs.
	switch {
	case path == "/health", strings.HasPrefix(path, "/health/"):
		return true
	case path == "/metrics":
		return true
	case strings.HasPrefix(path, "/swagger"):
		return true
	}
	return false
}

// unauthorized renders the rejection contract: 401 plus the Bearer
// challenge. The body never reveals which check failed.
func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, fmt.Sprintf("%s realm=%q", authScheme, realm))
	return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing credentials")
}

// IdentityFrom returns the Identity attached by Auth, if any.
func IdentityFrom(c echo.Context) (auth.Identity, bool) {
	identity, ok := c.Get(identityKey).(auth.Identity)
	return identity, ok
}
