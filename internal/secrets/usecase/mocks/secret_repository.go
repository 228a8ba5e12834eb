// Package mocks provides mock implementations for testing the secrets use case.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	secretsDomain "github.com/allisson/filebucket/internal/secrets/domain"
)

// MockSecretRepository is a mock implementation of SecretRepository for testing.
type MockSecretRepository struct {
	mock.Mock
}

// Create mocks the Create method of SecretRepository.
func (m *MockSecretRepository) Create(ctx context.Context, secret *secretsDomain.Secret) error {
	args := m.Called(ctx, secret)
	return args.Error(0)
}

// GetByID mocks the GetByID method of SecretRepository.
func (m *MockSecretRepository) GetByID(
	ctx context.Context,
	id, userID uuid.UUID,
) (*secretsDomain.Secret, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsDomain.Secret), args.Error(1)
}

// GetByIDAnyUser mocks the GetByIDAnyUser method of SecretRepository.
func (m *MockSecretRepository) GetByIDAnyUser(
	ctx context.Context,
	id uuid.UUID,
) (*secretsDomain.Secret, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsDomain.Secret), args.Error(1)
}

// GetByEncryptedValue mocks the GetByEncryptedValue method of SecretRepository.
func (m *MockSecretRepository) GetByEncryptedValue(
	ctx context.Context,
	encryptedValue string,
) (*secretsDomain.Secret, error) {
	args := m.Called(ctx, encryptedValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsDomain.Secret), args.Error(1)
}

// ListByUser mocks the ListByUser method of SecretRepository.
func (m *MockSecretRepository) ListByUser(
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

// Delete mocks the Delete method of SecretRepository.
func (m *MockSecretRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// DeleteExpiredByUser mocks the DeleteExpiredByUser method of SecretRepository.
func (m *MockSecretRepository) DeleteExpiredByUser(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) (int64, error) {
	args := m.Called(ctx, userID, now)
	return args.Get(0).(int64), args.Error(1)
}

// DeleteExpired mocks the DeleteExpired method of SecretRepository.
func (m *MockSecretRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
