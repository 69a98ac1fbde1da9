package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/forgeline/content-studio/internal/domain"
	"github.com/forgeline/content-studio/internal/store"
)

// UserStore is the persistent variant of store.UserStore. The primary key
// on email makes the duplicate check atomic at the database level.
type UserStore struct {
	db *DB
}

// NewUserStore creates a sqlite-backed user store
func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

// Create stores a new user, or returns store.ErrDuplicateEmail
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	_, err := s.db.db.ExecContext(ctx, `
		INSERT INTO users (email, password_hash, full_name, created_at)
		VALUES (?, ?, ?, ?)
	`, user.Email, user.PasswordHash, user.FullName, user.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") ||
			strings.Contains(err.Error(), "constraint failed") {
			return store.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail returns the user for an email, or store.ErrNotFound
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var (
		user      domain.User
		createdAt string
	)
	err := s.db.db.QueryRowContext(ctx, `
		SELECT email, password_hash, full_name, created_at
		FROM users
		WHERE email = ?
	`, email).Scan(&user.Email, &user.PasswordHash, &user.FullName, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at for user: %w", err)
	}
	user.CreatedAt = ts

	return &user, nil
}
