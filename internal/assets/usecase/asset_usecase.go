package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	assetsDomain "github.com/allisson/filebucket/internal/assets/domain"
	bucketsDomain "github.com/allisson/filebucket/internal/buckets/domain"
	apperrors "github.com/allisson/filebucket/internal/errors"
	"github.com/allisson/filebucket/internal/storage"
)

// assetUseCase implements AssetUseCase.
type assetUseCase struct {
	assetRepo          AssetRepository
	bucketGetter       BucketGetter
	fileStore          storage.FileStore
	defaultMaxFileSize int64
	logger             *slog.Logger
}

// NewAssetUseCase creates a new AssetUseCase. defaultMaxFileSize applies to
// buckets without an explicit size limit in their config.
func NewAssetUseCase(
	assetRepo AssetRepository,
	bucketGetter BucketGetter,
	fileStore storage.FileStore,
	defaultMaxFileSize int64,
	logger *slog.Logger,
) AssetUseCase {
	return &assetUseCase{
		assetRepo:          assetRepo,
		bucketGetter:       bucketGetter,
		fileStore:          fileStore,
		defaultMaxFileSize: defaultMaxFileSize,
		logger:             logger,
	}
}

// Create stores the file bytes and persists the asset metadata. The two
// stores share no transaction, so the ordering is: write file, insert row,
// and on insert failure delete the file and return the insert error.
func (a *assetUseCase) Create(ctx context.Context, input CreateAssetInput) (*assetsDomain.Asset, error) {
	if input.Name == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "asset name cannot be empty")
	}
	if input.Content == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "asset content cannot be nil")
	}
	if err := validateKeys(input.Keys); err != nil {
		return nil, err
	}

	bucket, err := a.resolveBucket(ctx, input.BucketID, input.UserID)
	if err != nil {
		return nil, err
	}

	config := bucket.ResolveConfig(a.defaultMaxFileSize)
	if !config.AllowsFile(input.Name) {
		return nil, bucketsDomain.ErrFileTypeNotAllowed
	}
	if !config.AllowsSize(input.Size) {
		return nil, bucketsDomain.ErrFileTooLarge
	}

	now := time.Now().UTC()
	asset := &assetsDomain.Asset{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      input.Name,
		Size:      input.Size,
		Keys:      input.Keys,
		BucketID:  bucket.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	asset.StoragePath = storage.BuildPath(
		input.UserID.String(),
		bucket.ID.String(),
		asset.Keys,
		asset.ID.String(),
		asset.Extension(),
	)

	if err := a.fileStore.Write(ctx, asset.StoragePath, input.Content); err != nil {
		return nil, err
	}

	if err := a.assetRepo.Create(ctx, asset); err != nil {
		// Compensate the file write. A failed compensation is logged and
		// swallowed; the insert error is what the caller must see.
		if delErr := a.fileStore.Delete(ctx, asset.StoragePath); delErr != nil {
			a.logger.Error("failed to remove file after metadata insert failure",
				slog.String("storage_path", asset.StoragePath),
				slog.String("error", delErr.Error()))
		}
		return nil, err
	}

	return asset, nil
}

// Get retrieves an asset in a bucket owned by the user.
func (a *assetUseCase) Get(ctx context.Context, userID, bucketID, id uuid.UUID) (*assetsDomain.Asset, error) {
	if _, err := a.resolveBucket(ctx, bucketID, userID); err != nil {
		return nil, err
	}
	return a.getAsset(ctx, id, bucketID)
}

// List retrieves assets in a bucket owned by the user.
func (a *assetUseCase) List(
	ctx context.Context,
	userID, bucketID uuid.UUID,
	limit, offset int,
) ([]*assetsDomain.Asset, error) {
	if _, err := a.resolveBucket(ctx, bucketID, userID); err != nil {
		return nil, err
	}
	return a.assetRepo.ListByBucket(ctx, bucketID, limit, offset)
}

// Delete removes the asset's file bytes and metadata row. The file goes
// first; a file that is already absent does not block the row delete.
func (a *assetUseCase) Delete(ctx context.Context, userID, bucketID, id uuid.UUID) error {
	if _, err := a.resolveBucket(ctx, bucketID, userID); err != nil {
		return err
	}

	asset, err := a.getAsset(ctx, id, bucketID)
	if err != nil {
		return err
	}

	if err := a.fileStore.Delete(ctx, asset.StoragePath); err != nil {
		return err
	}

	if err := a.assetRepo.Delete(ctx, id, bucketID); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return assetsDomain.ErrAssetNotFound
		}
		return err
	}
	return nil
}

// Download retrieves an asset together with a reader over its content.
func (a *assetUseCase) Download(
	ctx context.Context,
	userID, bucketID, id uuid.UUID,
) (*assetsDomain.Asset, io.ReadCloser, error) {
	asset, err := a.Get(ctx, userID, bucketID, id)
	if err != nil {
		return nil, nil, err
	}

	reader, err := a.fileStore.Open(ctx, asset.StoragePath)
	if err != nil {
		return nil, nil, err
	}
	return asset, reader, nil
}

func (a *assetUseCase) resolveBucket(ctx context.Context, bucketID, userID uuid.UUID) (*bucketsDomain.Bucket, error) {
	bucket, err := a.bucketGetter.GetByID(ctx, bucketID, userID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, bucketsDomain.ErrBucketNotFound
		}
		return nil, err
	}
	return bucket, nil
}

func (a *assetUseCase) getAsset(ctx context.Context, id, bucketID uuid.UUID) (*assetsDomain.Asset, error) {
	asset, err := a.assetRepo.GetByIDInBucket(ctx, id, bucketID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, assetsDomain.ErrAssetNotFound
		}
		return nil, err
	}
	return asset, nil
}

// validateKeys rejects tag keys that would break the storage filename
// encoding or the tilde-joined persisted form.
func validateKeys(keys []string) error {
	for _, key := range keys {
		if key == "" {
			return apperrors.Wrap(apperrors.ErrInvalidInput, "tag key cannot be empty")
		}
		if strings.ContainsAny(key, assetsDomain.KeySeparator+"/") {
			return apperrors.Wrapf(apperrors.ErrInvalidInput, "tag key %q contains a reserved character", key)
		}
	}
	return nil
}
