package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/reelhub/reelhub-api/internal/core/ports"
)

type stubUploadService struct {
	ticket *ports.UploadTicket
	err    error
}

func (s *stubUploadService) IssueTicket(_ context.Context) (*ports.UploadTicket, error) {
	return s.ticket, s.err
}

func TestUploadHandler_Auth_ReturnsTicket(t *testing.T) {
	e := echo.New()
	expire := time.Now().Add(30 * time.Minute).Unix()
	h := NewUploadHandler(&stubUploadService{
		ticket: &ports.UploadTicket{Token: "tok-1", Expire: expire, Signature: "sig-1"},
	}, "imagekit", "public_abc")

	rec := doJSON(e, h.Auth, http.MethodGet, "/api/upload/auth", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp uploadAuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "tok-1" || resp.Signature != "sig-1" || resp.Expire != expire {
		t.Fatalf("unexpected ticket: %+v", resp)
	}
	if resp.PublicKey != "public_abc" {
		t.Fatalf("public key missing from response")
	}
}

func TestUploadHandler_Auth_ProviderFailure(t *testing.T) {
	e := echo.New()
	h := NewUploadHandler(&stubUploadService{err: errors.New("boom")}, "s3", "")

	// The handler propagates provider errors to the central error handler.
	req := httptest.NewRequest(http.MethodGet, "/api/upload/auth", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Auth(c); err == nil {
		t.Fatalf("expected error to propagate")
	}
}
