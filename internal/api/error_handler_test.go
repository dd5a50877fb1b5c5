package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inovaindustria/industria-api/internal/auth"
	"github.com/inovaindustria/industria-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"invalid token", auth.ErrTokenInvalid, http.StatusUnauthorized, "invalid credentials"},
		{"throttled", domain.ErrLoginThrottled, http.StatusTooManyRequests, "too many login attempts"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"company required", domain.ErrCompanyRequired, http.StatusBadRequest, "company id is required"},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest, "invalid role"},
		{"client not found", domain.ErrClientNotFound, http.StatusNotFound, "client not found"},
		{"project not found", domain.ErrProjectNotFound, http.StatusNotFound, "project not found"},
		{"client exists", domain.ErrClientExists, http.StatusConflict, "client already exists"},
		{"company exists", domain.ErrCompanyExists, http.StatusConflict, "company already exists"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("code = %d, want %d", code, tc.code)
			}
			if msg != tc.msg {
				t.Fatalf("msg = %q, want %q", msg, tc.msg)
			}
		})
	}
}

func TestErrorHandler_WrappedErrorsStillMap(t *testing.T) {
	wrapped := errors.Join(errors.New("mongo: lookup"), domain.ErrClientNotFound)
	code, _ := renderError(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("wrapped sentinel lost: code = %d", code)
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, msg := renderError(t, errors.New("pool exhausted: 10.0.0.3:27017"))
	if code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing credentials"))
	if code != http.StatusUnauthorized || msg != "invalid or missing credentials" {
		t.Fatalf("got %d %q", code, msg)
	}
}
