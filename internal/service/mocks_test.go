package service

import (
	"context"

	"github.com/forgeline/content-studio/internal/domain"
	"github.com/forgeline/content-studio/internal/generator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockHistoryStore mocks the HistoryStore interface
type MockHistoryStore struct {
	mock.Mock
}

func (m *MockHistoryStore) Append(ctx context.Context, result *domain.GenerationResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockHistoryStore) List(ctx context.Context) ([]*domain.GenerationResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GenerationResult), args.Error(1)
}

func (m *MockHistoryStore) Get(ctx context.Context, id uuid.UUID) (*domain.GenerationResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GenerationResult), args.Error(1)
}

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockTextProvider mocks generator.Provider
type MockTextProvider struct {
	mock.Mock
}

func (m *MockTextProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockTextProvider) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockTextProvider) Generate(ctx context.Context, req generator.Request) (*generator.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generator.Response), args.Error(1)
}

// MockImageProvider mocks image.Provider
type MockImageProvider struct {
	mock.Mock
}

func (m *MockImageProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockImageProvider) Provide(ctx context.Context, prompt, style, size string) (*domain.ImageDescriptor, error) {
	args := m.Called(ctx, prompt, style, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImageDescriptor), args.Error(1)
}
