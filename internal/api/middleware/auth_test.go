package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inovaindustria/industria-api/internal/auth"
	"github.com/inovaindustria/industria-api/internal/core/domain"
)

func issueToken(t *testing.T, tokens *auth.TokenService) string {
	t.Helper()
	company := "company_1"
	signed, err := tokens.Issue(&domain.Client{
		ID:        "client_1",
		Role:      domain.RoleAdmin,
		CompanyID: &company,
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return signed
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := auth.NewTokenService("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/empresas", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, tokens))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		called = true
		identity, ok := IdentityFrom(c)
		if !ok {
			t.Fatalf("identity not set")
		}
		if identity.AccountID != "client_1" {
			t.Fatalf("account = %q", identity.AccountID)
		}
		if identity.Role != domain.RoleAdmin {
			t.Fatalf("role = %q", identity.Role)
		}
		if identity.TenantID == nil || *identity.TenantID != "company_1" {
			t.Fatalf("tenant missing or wrong")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_CaseInsensitiveScheme(t *testing.T) {
	e := echo.New()
	tokens := auth.NewTokenService("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/empresas", nil)
	req.Header.Set(echo.HeaderAuthorization, "bearer "+issueToken(t, tokens))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("lowercase scheme rejected: %v", err)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	tokens := auth.NewTokenService("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/empresas", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	challenge := rec.Header().Get(echo.HeaderWWWAuthenticate)
	if !strings.HasPrefix(challenge, "Bearer realm=") {
		t.Fatalf("missing challenge header, got %q", challenge)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	e := echo.New()
	tokens := auth.NewTokenService("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/empresas", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	// The body must stay generic regardless of the failure reason.
	if httpErr.Message != "invalid or missing credentials" {
		t.Fatalf("body leaks failure detail: %v", httpErr.Message)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	e := echo.New()
	tokens := auth.NewTokenService("secret", time.Hour)

	// Well-formed and correctly signed, but the expiry is in the past.
	issued := time.Now().Add(-2 * time.Hour)
	stale := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":  auth.Issuer,
		"sub":  "client_1",
		"role": string(domain.RoleAdmin),
		"iat":  issued.Unix(),
		"exp":  issued.Add(time.Hour).Unix(),
	})
	signed, err := stale.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/empresas", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err = handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	challenge := rec.Header().Get(echo.HeaderWWWAuthenticate)
	if !strings.HasPrefix(challenge, "Bearer realm=") {
		t.Fatalf("missing challenge header, got %q", challenge)
	}
	if httpErr.Message != "invalid or missing credentials" {
		t.Fatalf("body leaks failure detail: %v", httpErr.Message)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	e := echo.New()
	tokens := auth.NewTokenService("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/empresas", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_OptionsBypasses(t *testing.T) {
	e := echo.New()
	tokens := auth.NewTokenService("secret", time.Hour)

	req := httptest.NewRequest(http.MethodOptions, "/empresas", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusNoContent)
	})
	if err := handler(c); err != nil {
		t.Fatalf("preflight rejected: %v", err)
	}
	if !called {
		t.Fatalf("preflight did not reach next")
	}
}

func TestAuth_PublicPaths(t *testing.T) {
	e := echo.New()
	tokens := auth.NewTokenService("secret", time.Hour)

	paths := []string{
		"/auth/login",
		"auth/login",
		"/api/auth/login",
		"/health",
		"/health/ready",
		"/metrics",
		"/swagger/index.html",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.URL.Path = path
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		called := false
		handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("path %q rejected: %v", path, err)
		}
		if !called {
			t.Fatalf("path %q did not reach next", path)
		}
	}
}
