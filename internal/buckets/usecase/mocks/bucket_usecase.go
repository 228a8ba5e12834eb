package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	bucketsDomain "github.com/allisson/filebucket/internal/buckets/domain"
)

// MockBucketUseCase is a mock implementation of BucketUseCase for testing.
type MockBucketUseCase struct {
	mock.Mock
}

// Create mocks the Create method of BucketUseCase.
func (m *MockBucketUseCase) Create(
	ctx context.Context,
	userID uuid.UUID,
	name string,
	config *bucketsDomain.Config,
) (*bucketsDomain.Bucket, error) {
	args := m.Called(ctx, userID, name, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bucketsDomain.Bucket), args.Error(1)
}

// Get mocks the Get method of BucketUseCase.
func (m *MockBucketUseCase) Get(ctx context.Context, id, userID uuid.UUID) (*bucketsDomain.Bucket, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bucketsDomain.Bucket), args.Error(1)
}

// List mocks the List method of BucketUseCase.
func (m *MockBucketUseCase) List(
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

// Delete mocks the Delete method of BucketUseCase.
func (m *MockBucketUseCase) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
