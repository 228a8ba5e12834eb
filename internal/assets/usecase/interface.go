// Package usecase implements business logic for asset management, including
// the write-then-persist-then-compensate sequencing between file storage and
// the metadata store.
package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"

	assetsDomain "github.com/allisson/filebucket/internal/assets/domain"
	bucketsDomain "github.com/allisson/filebucket/internal/buckets/domain"
)

// AssetRepository defines the persistence operations required by the asset
// use case.
type AssetRepository interface {
	// Create inserts a new asset metadata row.
	Create(ctx context.Context, asset *assetsDomain.Asset) error

	// GetByID retrieves an asset by id regardless of bucket.
	GetByID(ctx context.Context, id uuid.UUID) (*assetsDomain.Asset, error)

	// GetByIDInBucket retrieves an asset by id, scoped to the owning bucket.
	GetByIDInBucket(ctx context.Context, id, bucketID uuid.UUID) (*assetsDomain.Asset, error)

	// ListByBucket retrieves assets in the bucket, newest first.
	ListByBucket(ctx context.Context, bucketID uuid.UUID, limit, offset int) ([]*assetsDomain.Asset, error)

	// CountByBucket returns the number of assets in the bucket.
	CountByBucket(ctx context.Context, bucketID uuid.UUID) (int64, error)

	// Delete removes an asset metadata row.
	Delete(ctx context.Context, id, bucketID uuid.UUID) error
}

// BucketGetter resolves a bucket for its owner. The asset use case needs it
// to confirm ownership and to apply the bucket's upload policy.
type BucketGetter interface {
	GetByID(ctx context.Context, id, userID uuid.UUID) (*bucketsDomain.Bucket, error)
}

// CreateAssetInput carries everything needed to store one file.
type CreateAssetInput struct {
	UserID   uuid.UUID
	BucketID uuid.UUID
	Name     string
	Size     int64
	Keys     []string
	Content  io.Reader
}

// AssetUseCase defines the operations for managing assets.
type AssetUseCase interface {
	// Create stores the file bytes and persists the asset metadata. The file
	// write happens first; if the metadata insert fails the file is removed
	// and the insert error is returned.
	Create(ctx context.Context, input CreateAssetInput) (*assetsDomain.Asset, error)

	// Get retrieves an asset in a bucket owned by the user.
	Get(ctx context.Context, userID, bucketID, id uuid.UUID) (*assetsDomain.Asset, error)

	// List retrieves assets in a bucket owned by the user.
	List(ctx context.Context, userID, bucketID uuid.UUID, limit, offset int) ([]*assetsDomain.Asset, error)

	// Delete removes the asset's file bytes and metadata row.
	Delete(ctx context.Context, userID, bucketID, id uuid.UUID) error

	// Download retrieves an asset in a bucket owned by the user together
	// with a reader over its content. The caller closes the reader.
	Download(ctx context.Context, userID, bucketID, id uuid.UUID) (*assetsDomain.Asset, io.ReadCloser, error)
}
