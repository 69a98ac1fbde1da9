package store

import (
	"context"
	"sync"

	"github.com/forgeline/content-studio/internal/domain"
	"github.com/google/uuid"
)

// MemoryHistory is the process-lifetime HistoryStore. Nothing survives a
// restart. A single mutex guards append+evict so completion order equals
// insertion order under concurrent requests.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []*domain.GenerationResult
	limit   int
}

// NewMemoryHistory creates an in-memory history bounded to limit entries
func NewMemoryHistory(limit int) *MemoryHistory {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &MemoryHistory{limit: limit}
}

// Append records a result, dropping the oldest entry at capacity
func (s *MemoryHistory) Append(_ context.Context, result *domain.GenerationResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, result)
	if len(s.entries) > s.limit {
		s.entries = s.entries[1:]
	}
	return nil
}

// List returns a snapshot of retained results in insertion order
func (s *MemoryHistory) List(_ context.Context) ([]*domain.GenerationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.GenerationResult, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Get returns the result with the given id, or ErrNotFound
func (s *MemoryHistory) Get(_ context.Context, id uuid.UUID) (*domain.GenerationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return nil, ErrNotFound
}

// MemoryUsers is the process-lifetime UserStore. The mutex makes the
// check-then-insert on Create atomic.
type MemoryUsers struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

// NewMemoryUsers creates an in-memory user store
func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{users: make(map[string]*domain.User)}
}

// Create stores a new user, or returns ErrDuplicateEmail
func (s *MemoryUsers) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return ErrDuplicateEmail
	}
	s.users[user.Email] = user
	return nil
}

// GetByEmail returns the user for an email, or ErrNotFound
func (s *MemoryUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}
