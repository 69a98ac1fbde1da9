package store

import (
	"context"
	"errors"

	"github.com/forgeline/content-studio/internal/domain"
	"github.com/google/uuid"
)

// DefaultHistoryLimit caps the number of retained generation results
const DefaultHistoryLimit = 50

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned on signup with a registered email
	ErrDuplicateEmail = errors.New("email already registered")
)

// HistoryStore records generation results in chronological order, bounded
// by a fixed capacity with FIFO eviction. Reads never affect order.
type HistoryStore interface {
	// Append records a result, evicting the oldest entry at capacity
	Append(ctx context.Context, result *domain.GenerationResult) error

	// List returns all retained results in insertion order
	List(ctx context.Context) ([]*domain.GenerationResult, error)

	// Get returns the result with the given id, or ErrNotFound
	Get(ctx context.Context, id uuid.UUID) (*domain.GenerationResult, error)
}

// UserStore maps emails to registered users. Create must be atomic with
// the duplicate check.
type UserStore interface {
	// Create stores a new user, or returns ErrDuplicateEmail
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail returns the user for an email, or ErrNotFound
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
