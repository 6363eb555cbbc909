package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/docuvault/docqa-api/internal/core/domain"
)

func TestUserService_UpdateRole(t *testing.T) {
	repo := newStubUserRepo()
	created, _ := repo.Create(context.Background(), &domain.User{Username: "bob", Email: "bob@example.com", Role: domain.RoleUser})
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.UpdateRole(context.Background(), created.ID, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected admin, got %s", user.Role)
	}
}

func TestUserService_UpdateRole_Invalid(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.UpdateRole(context.Background(), "some-id", "superuser"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_UpdateRole_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.UpdateRole(context.Background(), "missing", domain.RoleAdmin); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	repo := newStubUserRepo()
	created, _ := repo.Create(context.Background(), &domain.User{Username: "bob", Email: "bob@example.com", Role: domain.RoleUser})
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.DeleteUser(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if err := svc.DeleteUser(context.Background(), created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestUserService_ListUsers_ClampsLimit(t *testing.T) {
	repo := newStubUserRepo()
	for _, name := range []string{"a", "b", "c"} {
		_, _ = repo.Create(context.Background(), &domain.User{Username: name, Email: name + "@example.com", Role: domain.RoleUser})
	}
	svc := NewUserService(repo, zerolog.Nop())

	users, err := svc.ListUsers(context.Background(), -5, 0)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
}
