package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	bucketsDomain "github.com/allisson/filebucket/internal/buckets/domain"
	"github.com/allisson/filebucket/internal/database"
	apperrors "github.com/allisson/filebucket/internal/errors"
)

// bucketUseCase implements BucketUseCase.
type bucketUseCase struct {
	txManager    database.TxManager
	bucketRepo   BucketRepository
	assetCounter AssetCounter
}

// NewBucketUseCase creates a new BucketUseCase.
func NewBucketUseCase(
	txManager database.TxManager,
	bucketRepo BucketRepository,
	assetCounter AssetCounter,
) BucketUseCase {
	return &bucketUseCase{
		txManager:    txManager,
		bucketRepo:   bucketRepo,
		assetCounter: assetCounter,
	}
}

// Create creates a new bucket with an optional upload policy.
func (b *bucketUseCase) Create(
	ctx context.Context,
	userID uuid.UUID,
	name string,
	config *bucketsDomain.Config,
) (*bucketsDomain.Bucket, error) {
	if name == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "bucket name cannot be empty")
	}

	now := time.Now().UTC()
	bucket := &bucketsDomain.Bucket{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		UserID:    userID,
		Config:    config,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := b.bucketRepo.Create(ctx, bucket); err != nil {
		return nil, err
	}

	return bucket, nil
}

// Get retrieves a bucket by id for its owner.
func (b *bucketUseCase) Get(ctx context.Context, id, userID uuid.UUID) (*bucketsDomain.Bucket, error) {
	bucket, err := b.bucketRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, bucketsDomain.ErrBucketNotFound
		}
		return nil, err
	}
	return bucket, nil
}

// List retrieves buckets owned by the user.
func (b *bucketUseCase) List(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*bucketsDomain.Bucket, error) {
	return b.bucketRepo.ListByUser(ctx, userID, limit, offset)
}

// Delete removes an empty bucket. A bucket that still holds assets cannot be
// deleted; assets must be removed first. The emptiness check and the delete
// run in one transaction so a concurrent upload cannot slip between them.
func (b *bucketUseCase) Delete(ctx context.Context, id, userID uuid.UUID) error {
	// Ownership check before the emptiness check so a foreign bucket reads
	// as not-found rather than leaking its asset count.
	if _, err := b.Get(ctx, id, userID); err != nil {
		return err
	}

	return b.txManager.WithTx(ctx, func(ctx context.Context) error {
		count, err := b.assetCounter.CountByBucket(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return bucketsDomain.ErrBucketNotEmpty
		}

		if err := b.bucketRepo.Delete(ctx, id, userID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return bucketsDomain.ErrBucketNotFound
			}
			return err
		}
		return nil
	})
}
