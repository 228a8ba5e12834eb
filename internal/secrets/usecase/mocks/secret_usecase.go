package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	secretsDomain "github.com/allisson/filebucket/internal/secrets/domain"
)

// MockSecretUseCase is a mock implementation of SecretUseCase for testing.
type MockSecretUseCase struct {
	mock.Mock
}

// Create mocks the Create method of SecretUseCase.
func (m *MockSecretUseCase) Create(
	ctx context.Context,
	userID uuid.UUID,
	value string,
	expiresAt *time.Time,
	validationURI *string,
) (*secretsDomain.Secret, error) {
	args := m.Called(ctx, userID, value, expiresAt, validationURI)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsDomain.Secret), args.Error(1)
}

// Get mocks the Get method of SecretUseCase.
func (m *MockSecretUseCase) Get(ctx context.Context, id, userID uuid.UUID) (*secretsDomain.Secret, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsDomain.Secret), args.Error(1)
}

// List mocks the List method of SecretUseCase.
func (m *MockSecretUseCase) List(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*secretsDomain.Secret, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*secretsDomain.Secret), args.Error(1)
}

// Delete mocks the Delete method of SecretUseCase.
func (m *MockSecretUseCase) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// DeleteExpiredForUser mocks the DeleteExpiredForUser method of SecretUseCase.
func (m *MockSecretUseCase) DeleteExpiredForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// DeleteExpired mocks the DeleteExpired method of SecretUseCase.
func (m *MockSecretUseCase) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// ResolveByValue mocks the ResolveByValue method of SecretUseCase.
func (m *MockSecretUseCase) ResolveByValue(ctx context.Context, rawValue string) (*secretsDomain.Secret, error) {
	args := m.Called(ctx, rawValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsDomain.Secret), args.Error(1)
}

// ResolveByID mocks the ResolveByID method of SecretUseCase.
func (m *MockSecretUseCase) ResolveByID(ctx context.Context, id, userID uuid.UUID) (*secretsDomain.Secret, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsDomain.Secret), args.Error(1)
}

// ResolveByIDAnyUser mocks the ResolveByIDAnyUser method of SecretUseCase.
func (m *MockSecretUseCase) ResolveByIDAnyUser(ctx context.Context, id uuid.UUID) (*secretsDomain.Secret, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsDomain.Secret), args.Error(1)
}
