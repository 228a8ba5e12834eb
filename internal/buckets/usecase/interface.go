// Package usecase implements business logic for bucket management.
package usecase

import (
	"context"

	"github.com/google/uuid"

	bucketsDomain "github.com/allisson/filebucket/internal/buckets/domain"
)

// BucketRepository defines the persistence operations required by the bucket use case.
type BucketRepository interface {
	// Create inserts a new bucket.
	Create(ctx context.Context, bucket *bucketsDomain.Bucket) error

	// GetByID retrieves a bucket by id, scoped to the owning user.
	GetByID(ctx context.Context, id, userID uuid.UUID) (*bucketsDomain.Bucket, error)

	// ListByUser retrieves buckets owned by the user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*bucketsDomain.Bucket, error)

	// Delete removes a bucket owned by the user.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// AssetCounter reports how many assets a bucket holds. The bucket use case
// needs only the count to enforce the no-delete-while-populated rule.
type AssetCounter interface {
	// CountByBucket returns the number of assets in the bucket.
	CountByBucket(ctx context.Context, bucketID uuid.UUID) (int64, error)
}

// BucketUseCase defines the operations for managing buckets.
type BucketUseCase interface {
	// Create creates a new bucket with an optional upload policy.
	Create(
		ctx context.Context,
		userID uuid.UUID,
		name string,
		config *bucketsDomain.Config,
	) (*bucketsDomain.Bucket, error)

	// Get retrieves a bucket by id for its owner.
	Get(ctx context.Context, id, userID uuid.UUID) (*bucketsDomain.Bucket, error)

	// List retrieves buckets owned by the user.
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*bucketsDomain.Bucket, error)

	// Delete removes an empty bucket; a bucket with assets cannot be deleted.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
