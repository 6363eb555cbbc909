package ports

import (
	"context"
	"time"

	"github.com/docuvault/docqa-api/internal/core/domain"
)

// TokenResult is the outcome of a successful authentication.
type TokenResult struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService is the authentication and authorization gate: credential
// verification, token issuance, token validation, and role checks.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*TokenResult, *domain.User, error)
	// Validate checks the token signature and expiry, then re-reads the user
	// from the store so role changes bind on the very next request.
	Validate(ctx context.Context, token string) (*domain.User, error)
	RequireAdmin(user *domain.User) error
}
