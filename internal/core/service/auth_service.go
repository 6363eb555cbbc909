package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/docuvault/docqa-api/internal/core/domain"
	"github.com/docuvault/docqa-api/internal/core/ports"
)

const defaultTokenTTL = 30 * time.Minute

// signingMethods maps the configured algorithm identifier to a JWT signing
// method. Only the HMAC family is accepted; anything else is a config error.
var signingMethods = map[string]jwt.SigningMethod{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// AuthService implements registration, login, token validation and role checks.
// Tokens are stateless: expiry is the only bound on their lifetime, and the
// subject's role is re-read from the store on every validation.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret []byte
	method    jwt.SigningMethod
	tokenTTL  time.Duration
	now       func() time.Time
}

// NewAuthService builds an AuthService. algorithm must be one of HS256, HS384,
// HS512 (empty defaults to HS256). tokenTTL <= 0 falls back to 30 minutes.
func NewAuthService(repo ports.UserRepository, jwtSecret, algorithm string, tokenTTL time.Duration) (*AuthService, error) {
	if algorithm == "" {
		algorithm = "HS256"
	}
	method, ok := signingMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		method:    method,
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*ports.TokenResult, *domain.User, error) {
	if username == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, nil, err
	}
	return result, user, nil
}

// Validate verifies signature and expiry, then resolves the current user
// record from the store. The role is never trusted from the token itself, so
// a downgrade takes effect on the next request even for live tokens.
func (s *AuthService) Validate(ctx context.Context, tokenString string) (*domain.User, error) {
	if tokenString == "" {
		return nil, domain.ErrInvalidToken
	}

	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) RequireAdmin(user *domain.User) error {
	if user == nil || !user.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

func (s *AuthService) issueToken(user *domain.User) (*ports.TokenResult, error) {
	issuedAt := s.now().UTC()
	expiresAt := issuedAt.Add(s.tokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &ports.TokenResult{Token: signed, ExpiresAt: expiresAt}, nil
}
