package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/ports"
)

type stubUserService struct {
	registerFn   func(ctx context.Context, name, email, photoURL string) (*ports.RegisterResult, error)
	roles        map[string]domain.Role
	resolveCalls int
}

func (s *stubUserService) Register(ctx context.Context, name, email, photoURL string) (*ports.RegisterResult, error) {
	return s.registerFn(ctx, name, email, photoURL)
}

func (s *stubUserService) List(_ context.Context) ([]*domain.User, error) {
	return []*domain.User{}, nil
}

func (s *stubUserService) UpdateRole(_ context.Context, id, role string) error {
	if !domain.IsAssignable(role) {
		return domain.ErrInvalidRole
	}
	return nil
}

func (s *stubUserService) ResolveRole(_ context.Context, email string) (domain.Role, error) {
	s.resolveCalls++
	return s.roles[email], nil
}

func newTestContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func setIdentity(c echo.Context, email string) {
	c.Set("identity", &domain.Claims{Email: email, RegisteredClaims: jwt.RegisteredClaims{}})
}

func TestUserHandler_Register_New(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, name, email, _ string) (*ports.RegisterResult, error) {
			return &ports.RegisterResult{User: &domain.User{ID: "u1", Name: name, Email: email}}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users", `{"name":"Alice","email":"alice@example.com"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestUserHandler_Register_Exists(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, _, email, _ string) (*ports.RegisterResult, error) {
			return &ports.RegisterResult{User: &domain.User{Email: email}, AlreadyExisted: true}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users", `{"name":"Alice","email":"alice@example.com"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "user exists..." {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestUserHandler_Register_InvalidEmail(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, _, _, _ string) (*ports.RegisterResult, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/users", `{"name":"Alice","email":"not-an-email"}`)
	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

// The caller may only ask about their own identity; a mismatch answers
// false immediately and must not trigger a role lookup.
func TestUserHandler_CheckAdmin_IdentityMismatch(t *testing.T) {
	stub := &stubUserService{roles: map[string]domain.Role{"b@x.com": domain.RoleAdmin}}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/users/checkAdmin/b@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("b@x.com")
	setIdentity(c, "a@x.com")

	if err := h.CheckAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["admin"] {
		t.Fatalf("mismatched identity must answer false")
	}
	if stub.resolveCalls != 0 {
		t.Fatalf("role lookup must not run on identity mismatch")
	}
}

func TestUserHandler_CheckAdmin_Match(t *testing.T) {
	stub := &stubUserService{roles: map[string]domain.Role{"a@x.com": domain.RoleAdmin}}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/users/checkAdmin/a@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("a@x.com")
	setIdentity(c, "a@x.com")

	if err := h.CheckAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp["admin"] {
		t.Fatalf("expected admin true")
	}
	if stub.resolveCalls != 1 {
		t.Fatalf("expected exactly one role lookup, got %d", stub.resolveCalls)
	}
}

func TestUserHandler_CheckInstructor_IdentityMismatch(t *testing.T) {
	stub := &stubUserService{roles: map[string]domain.Role{"b@x.com": domain.RoleInstructor}}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/users/checkInstructor/b@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("b@x.com")
	setIdentity(c, "a@x.com")

	if err := h.CheckInstructor(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["instructor"] {
		t.Fatalf("mismatched identity must answer false")
	}
	if stub.resolveCalls != 0 {
		t.Fatalf("role lookup must not run on identity mismatch")
	}
}

func TestUserHandler_CheckAdmin_NoIdentity(t *testing.T) {
	stub := &stubUserService{roles: map[string]domain.Role{}}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/users/checkAdmin/a@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("a@x.com")

	if err := h.CheckAdmin(c); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized without identity, got %v", err)
	}
}
