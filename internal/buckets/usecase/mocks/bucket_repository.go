// Package mocks provides mock implementations for testing the buckets use case.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	bucketsDomain "github.com/allisson/filebucket/internal/buckets/domain"
)

// MockBucketRepository is a mock implementation of BucketRepository for testing.
type MockBucketRepository struct {
	mock.Mock
}

// Create mocks the Create method of BucketRepository.
func (m *MockBucketRepository) Create(ctx context.Context, bucket *bucketsDomain.Bucket) error {
	args := m.Called(ctx, bucket)
	return args.Error(0)
}

// GetByID mocks the GetByID method of BucketRepository.
func (m *MockBucketRepository) GetByID(
	ctx context.Context,
	id, userID uuid.UUID,
) (*bucketsDomain.Bucket, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bucketsDomain.Bucket), args.Error(1)
}

// ListByUser mocks the ListByUser method of BucketRepository.
func (m *MockBucketRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*bucketsDomain.Bucket, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bucketsDomain.Bucket), args.Error(1)
}

// Delete mocks the Delete method of BucketRepository.
func (m *MockBucketRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockAssetCounter is a mock implementation of AssetCounter for testing.
type MockAssetCounter struct {
	mock.Mock
}

// CountByBucket mocks the CountByBucket method of AssetCounter.
func (m *MockAssetCounter) CountByBucket(ctx context.Context, bucketID uuid.UUID) (int64, error) {
	args := m.Called(ctx, bucketID)
	return args.Get(0).(int64), args.Error(1)
}
