package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/forgeline/content-studio/internal/domain"
	"github.com/forgeline/content-studio/internal/security"
	"github.com/forgeline/content-studio/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles authentication operations
type AuthService struct {
	users      store.UserStore
	jwtManager *security.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(users store.UserStore, jwtManager *security.JWTManager) *AuthService {
	return &AuthService{
		users:      users,
		jwtManager: jwtManager,
	}
}

// Signup creates a new account and returns a bearer token for it
func (s *AuthService) Signup(ctx context.Context, input domain.UserSignup) (*domain.AuthResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		FullName:     input.FullName,
		CreatedAt:    time.Now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.jwtManager.GenerateToken(user.Email, user.FullName)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResponse{Token: token, User: user.Public()}, nil
}

// Login authenticates a user and returns a bearer token. Unknown email and
// wrong password yield the same error to avoid user enumeration.
func (s *AuthService) Login(ctx context.Context, input domain.UserLogin) (*domain.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrUnauthorized
	}

	token, err := s.jwtManager.GenerateToken(user.Email, user.FullName)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResponse{Token: token, User: user.Public()}, nil
}

// Validate checks a bearer token and re-checks that the embedded identity
// still exists
func (s *AuthService) Validate(ctx context.Context, token string) (*domain.PublicUser, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.users.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	pub := user.Public()
	return &pub, nil
}
