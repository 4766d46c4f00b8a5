package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
)

type stubTokenService struct {
	issued []string
}

func (s *stubTokenService) Issue(email string) (string, error) {
	s.issued = append(s.issued, email)
	return "signed-token-for-" + email, nil
}

func (s *stubTokenService) Verify(_ string) (*domain.Claims, error) {
	return nil, domain.ErrUnauthorized
}

func TestTokenHandler_Issue(t *testing.T) {
	stub := &stubTokenService{}
	h := NewTokenHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/jwt", `{"email":"alice@example.com"}`)
	if err := h.Issue(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token-for-alice@example.com" {
		t.Fatalf("unexpected token: %s", resp["token"])
	}
	if len(stub.issued) != 1 || stub.issued[0] != "alice@example.com" {
		t.Fatalf("unexpected issue calls: %v", stub.issued)
	}
}

func TestTokenHandler_Issue_InvalidEmail(t *testing.T) {
	stub := &stubTokenService{}
	h := NewTokenHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/jwt", `{"email":"nope"}`)
	err := h.Issue(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if len(stub.issued) != 0 {
		t.Fatalf("no token must be issued for an invalid payload")
	}
}
