package ports

import (
	"context"

	"github.com/docuvault/docqa-api/internal/core/domain"
)

// UserService covers the admin-only user management operations.
type UserService interface {
	ListUsers(ctx context.Context, offset, limit int) ([]*domain.User, error)
	UpdateRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
}
