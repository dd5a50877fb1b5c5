package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inovaindustria/industria-api/internal/api/middleware"
	"github.com/inovaindustria/industria-api/internal/auth"
)

// callerIdentity extracts the Identity injected by the Auth middleware and
// fast-fails before any service call. A missing identity on a protected
// route means the filter did not run; treat it as unauthenticated.
func callerIdentity(c echo.Context) (auth.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}

// companyFilter reads the optional `empresa` query parameter used to scope
// listings to one tenant. nil means the parameter is absent.
func companyFilter(c echo.Context) *string {
	if v := c.QueryParam("empresa"); v != "" {
		return &v
	}
	return nil
}
