package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/docqa-api/internal/core/domain"
)

type stubUserService struct {
	listFn       func(ctx context.Context, offset, limit int) ([]*domain.User, error)
	updateRoleFn func(ctx context.Context, userID string, role domain.Role) (*domain.User, error)
	deleteFn     func(ctx context.Context, userID string) error
}

func (s *stubUserService) ListUsers(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	return s.listFn(ctx, offset, limit)
}

func (s *stubUserService) UpdateRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error) {
	return s.updateRoleFn(ctx, userID, role)
}

func (s *stubUserService) DeleteUser(ctx context.Context, userID string) error {
	return s.deleteFn(ctx, userID)
}

func TestUserHandler_List(t *testing.T) {
	stub := &stubUserService{
		listFn: func(context.Context, int, int) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "u1", Username: "alice", Role: domain.RoleAdmin},
				{ID: "u2", Username: "bob", Role: domain.RoleUser},
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/users", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp))
	}
	if _, leaked := resp[0]["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestUserHandler_UpdateRole(t *testing.T) {
	stub := &stubUserService{
		updateRoleFn: func(_ context.Context, userID string, role domain.Role) (*domain.User, error) {
			if userID != "u2" || role != domain.RoleAdmin {
				t.Fatalf("unexpected args: %s %s", userID, role)
			}
			return &domain.User{ID: userID, Username: "bob", Role: role}, nil
		},
	}
	h := NewUserHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPut, "/v1/users/u2/role", strings.NewReader(`{"role":"admin"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u2")

	if err := h.UpdateRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_UpdateRole_RejectsUnknownRole(t *testing.T) {
	stub := &stubUserService{
		updateRoleFn: func(context.Context, string, domain.Role) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPut, "/v1/users/u2/role", strings.NewReader(`{"role":"superuser"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u2")

	err := h.UpdateRole(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(_ context.Context, userID string) error {
			if userID != "u2" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/v1/users/u2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u2")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(context.Context, string) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/v1/users/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.Delete(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}
