// Package mocks provides mock implementations for testing the assets use case.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	assetsDomain "github.com/allisson/filebucket/internal/assets/domain"
	bucketsDomain "github.com/allisson/filebucket/internal/buckets/domain"
)

// MockAssetRepository is a mock implementation of AssetRepository for testing.
type MockAssetRepository struct {
	mock.Mock
}

// Create mocks the Create method of AssetRepository.
func (m *MockAssetRepository) Create(ctx context.Context, asset *assetsDomain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

// GetByID mocks the GetByID method of AssetRepository.
func (m *MockAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*assetsDomain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assetsDomain.Asset), args.Error(1)
}

// GetByIDInBucket mocks the GetByIDInBucket method of AssetRepository.
func (m *MockAssetRepository) GetByIDInBucket(
	ctx context.Context,
	id, bucketID uuid.UUID,
) (*assetsDomain.Asset, error) {
	args := m.Called(ctx, id, bucketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assetsDomain.Asset), args.Error(1)
}

// ListByBucket mocks the ListByBucket method of AssetRepository.
func (m *MockAssetRepository) ListByBucket(
	ctx context.Context,
	bucketID uuid.UUID,
	limit, offset int,
) ([]*assetsDomain.Asset, error) {
	args := m.Called(ctx, bucketID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assetsDomain.Asset), args.Error(1)
}

// CountByBucket mocks the CountByBucket method of AssetRepository.
func (m *MockAssetRepository) CountByBucket(ctx context.Context, bucketID uuid.UUID) (int64, error) {
	args := m.Called(ctx, bucketID)
	return args.Get(0).(int64), args.Error(1)
}

// Delete mocks the Delete method of AssetRepository.
func (m *MockAssetRepository) Delete(ctx context.Context, id, bucketID uuid.UUID) error {
	args := m.Called(ctx, id, bucketID)
	return args.Error(0)
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
