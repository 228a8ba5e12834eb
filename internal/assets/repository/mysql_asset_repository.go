package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	assetsDomain "github.com/allisson/filebucket/internal/assets/domain"
	"github.com/allisson/filebucket/internal/database"
	apperrors "github.com/allisson/filebucket/internal/errors"
)

// MySQLAssetRepository implements Asset persistence for MySQL databases.
type MySQLAssetRepository struct {
	db *sql.DB
}

// NewMySQLAssetRepository creates a new MySQL asset repository.
func NewMySQLAssetRepository(db *sql.DB) *MySQLAssetRepository {
	return &MySQLAssetRepository{db: db}
}

// Create inserts a new asset into the MySQL database.
func (m *MySQLAssetRepository) Create(ctx context.Context, asset *assetsDomain.Asset) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO assets (id, name, size, storage_path, tag_keys, bucket_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		asset.ID,
		asset.Name,
		asset.Size,
		asset.StoragePath,
		keysValue(asset.Keys),
		asset.BucketID,
		asset.CreatedAt,
		asset.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create asset")
	}
	return nil
}

// GetByID retrieves an asset by its id regardless of bucket.
func (m *MySQLAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*assetsDomain.Asset, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, size, storage_path, tag_keys, bucket_id, created_at, updated_at
			  FROM assets
			  WHERE id = ?
			  LIMIT 1`

	return scanAsset(querier.QueryRowContext(ctx, query, id))
}

// GetByIDInBucket retrieves an asset by its id, scoped to the owning bucket.
func (m *MySQLAssetRepository) GetByIDInBucket(
	ctx context.Context,
	id, bucketID uuid.UUID,
) (*assetsDomain.Asset, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, size, storage_path, tag_keys, bucket_id, created_at, updated_at
			  FROM assets
			  WHERE id = ? AND bucket_id = ?
			  LIMIT 1`

	return scanAsset(querier.QueryRowContext(ctx, query, id, bucketID))
}

// ListByBucket retrieves assets in the bucket, newest first.
func (m *MySQLAssetRepository) ListByBucket(
	ctx context.Context,
	bucketID uuid.UUID,
	limit, offset int,
) ([]*assetsDomain.Asset, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, size, storage_path, tag_keys, bucket_id, created_at, updated_at
			  FROM assets
			  WHERE bucket_id = ?
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, bucketID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list assets")
	}
	defer func() { _ = rows.Close() }()

	var assets []*assetsDomain.Asset
	for rows.Next() {
		asset, err := scanAssetRow(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate assets")
	}

	return assets, nil
}

// CountByBucket returns the number of assets in the bucket.
func (m *MySQLAssetRepository) CountByBucket(ctx context.Context, bucketID uuid.UUID) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT COUNT(*) FROM assets WHERE bucket_id = ?`

	var count int64
	if err := querier.QueryRowContext(ctx, query, bucketID).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count assets")
	}
	return count, nil
}

// Delete removes an asset from the bucket.
func (m *MySQLAssetRepository) Delete(ctx context.Context, id, bucketID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM assets WHERE id = ? AND bucket_id = ?`

	result, err := querier.ExecContext(ctx, query, id, bucketID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete asset")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
