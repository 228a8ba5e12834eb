// Package mocks provides mock implementations for testing the credentials
// use case.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	assetsDomain "github.com/allisson/filebucket/internal/assets/domain"
	bucketsDomain "github.com/allisson/filebucket/internal/buckets/domain"
	secretsDomain "github.com/allisson/filebucket/internal/secrets/domain"
)

// MockSecretResolver is a mock implementation of SecretResolver for testing.
type MockSecretResolver struct {
	mock.Mock
}

// ResolveByValue mocks the ResolveByValue method of SecretResolver.
func (m *MockSecretResolver) ResolveByValue(
	ctx context.Context,
	rawValue string,
) (*secretsDomain.Secret, error) {
	args := m.Called(ctx, rawValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsDomain.Secret), args.Error(1)
}

// ResolveByID mocks the ResolveByID method of SecretResolver.
func (m *MockSecretResolver) ResolveByID(
	ctx context.Context,
	id, userID uuid.UUID,
) (*secretsDomain.Secret, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsDomain.Secret), args.Error(1)
}

// ResolveByIDAnyUser mocks the ResolveByIDAnyUser method of SecretResolver.
func (m *MockSecretResolver) ResolveByIDAnyUser(
	ctx context.Context,
	id uuid.UUID,
) (*secretsDomain.Secret, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsDomain.Secret), args.Error(1)
}

// MockBucketGetter is a mock implementation of BucketGetter for testing.
type MockBucketGetter struct {
	mock.Mock
}

// GetByID mocks the GetByID method of BucketGetter.
func (m *MockBucketGetter) GetByID(
	ctx context.Context,
	id, userID uuid.UUID,
) (*bucketsDomain.Bucket, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bucketsDomain.Bucket), args.Error(1)
}

// MockAssetFinder is a mock implementation of AssetFinder for testing.
type MockAssetFinder struct {
	mock.Mock
}

// GetByID mocks the GetByID method of AssetFinder.
func (m *MockAssetFinder) GetByID(ctx context.Context, id uuid.UUID) (*assetsDomain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assetsDomain.Asset), args.Error(1)
}

// GetByIDInBucket mocks the GetByIDInBucket method of AssetFinder.
func (m *MockAssetFinder) GetByIDInBucket(
	ctx context.Context,
	id, bucketID uuid.UUID,
) (*assetsDomain.Asset, error) {
	args := m.Called(ctx, id, bucketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assetsDomain.Asset), args.Error(1)
}
