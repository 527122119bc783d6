package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/reelhub/reelhub-api/internal/core/domain"
)

func render(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err       error
		wantCode  int
		wantError string
	}{
		{domain.ErrUserExists, http.StatusConflict, "email already taken"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{domain.ErrUserNotFound, http.StatusUnauthorized, "invalid email or password"},
		{domain.ErrInvalidSession, http.StatusUnauthorized, "authentication required"},
		{domain.ErrVideoNotFound, http.StatusNotFound, "video not found"},
	}

	for _, tc := range cases {
		code, resp := render(t, fmt.Errorf("wrapped: %w", tc.err))
		if code != tc.wantCode {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.wantCode, code)
		}
		if resp.Error != tc.wantError {
			t.Fatalf("%v: expected %q, got %q", tc.err, tc.wantError, resp.Error)
		}
	}
}

func TestErrorHandler_CredentialErrorsShareOneMessage(t *testing.T) {
	_, missing := render(t, domain.ErrUserNotFound)
	_, badPass := render(t, domain.ErrInvalidCredentials)

	if missing.Error != badPass.Error {
		t.Fatalf("credential errors leak distinct messages: %q vs %q", missing.Error, badPass.Error)
	}
}

func TestErrorHandler_UpstreamError(t *testing.T) {
	code, resp := render(t, &domain.UpstreamError{
		Category: domain.UpstreamNetworkError,
		Err:      errors.New("dial tcp: timeout"),
	})

	if code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", code)
	}
	if resp.Category != domain.UpstreamNetworkError {
		t.Fatalf("expected category %q, got %q", domain.UpstreamNetworkError, resp.Category)
	}
	// The raw cause must never reach the client.
	if resp.Error == "dial tcp: timeout" {
		t.Fatalf("upstream cause leaked to client")
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	code, resp := render(t, errors.New("mongo topology closed"))

	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if resp.Error != "internal server error" {
		t.Fatalf("internal detail leaked: %q", resp.Error)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, resp := render(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if resp.Error != "Not Found" {
		t.Fatalf("unexpected message: %q", resp.Error)
	}
}
