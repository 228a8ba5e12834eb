// Package repository implements data persistence for assets.
// Repositories support both PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	assetsDomain "github.com/allisson/filebucket/internal/assets/domain"
	"github.com/allisson/filebucket/internal/database"
	apperrors "github.com/allisson/filebucket/internal/errors"
)

// PostgreSQLAssetRepository implements Asset persistence for PostgreSQL databases.
type PostgreSQLAssetRepository struct {
	db *sql.DB
}

// NewPostgreSQLAssetRepository creates a new PostgreSQL asset repository.
func NewPostgreSQLAssetRepository(db *sql.DB) *PostgreSQLAssetRepository {
	return &PostgreSQLAssetRepository{db: db}
}

// Create inserts a new asset into the PostgreSQL database.
func (p *PostgreSQLAssetRepository) Create(ctx context.Context, asset *assetsDomain.Asset) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO assets (id, name, size, storage_path, tag_keys, bucket_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

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

// GetByID retrieves an asset by its id regardless of bucket. Used by
// credential verification, which re-checks bucket ownership separately.
func (p *PostgreSQLAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*assetsDomain.Asset, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, size, storage_path, tag_keys, bucket_id, created_at, updated_at
			  FROM assets
			  WHERE id = $1
			  LIMIT 1`

	return scanAsset(querier.QueryRowContext(ctx, query, id))
}

// GetByIDInBucket retrieves an asset by its id, scoped to the owning bucket.
func (p *PostgreSQLAssetRepository) GetByIDInBucket(
	ctx context.Context,
	id, bucketID uuid.UUID,
) (*assetsDomain.Asset, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, size, storage_path, tag_keys, bucket_id, created_at, updated_at
			  FROM assets
			  WHERE id = $1 AND bucket_id = $2
			  LIMIT 1`

	return scanAsset(querier.QueryRowContext(ctx, query, id, bucketID))
}

// ListByBucket retrieves assets in the bucket, newest first.
func (p *PostgreSQLAssetRepository) ListByBucket(
	ctx context.Context,
	bucketID uuid.UUID,
	limit, offset int,
) ([]*assetsDomain.Asset, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, size, storage_path, tag_keys, bucket_id, created_at, updated_at
			  FROM assets
			  WHERE bucket_id = $1
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`

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
func (p *PostgreSQLAssetRepository) CountByBucket(ctx context.Context, bucketID uuid.UUID) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT COUNT(*) FROM assets WHERE bucket_id = $1`

	var count int64
	if err := querier.QueryRowContext(ctx, query, bucketID).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count assets")
	}
	return count, nil
}

// Delete removes an asset from the bucket.
func (p *PostgreSQLAssetRepository) Delete(ctx context.Context, id, bucketID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM assets WHERE id = $1 AND bucket_id = $2`

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

// keysValue serializes tag keys into a nullable column value.
func keysValue(keys []string) any {
	if len(keys) == 0 {
		return nil
	}
	return assetsDomain.JoinKeys(keys)
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAsset scans a single asset row, mapping sql.ErrNoRows to ErrNotFound.
func scanAsset(row *sql.Row) (*assetsDomain.Asset, error) {
	asset, err := scanAssetRow(row)
	if err != nil {
		if apperrors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return asset, nil
}

func scanAssetRow(scanner rowScanner) (*assetsDomain.Asset, error) {
	var (
		asset assetsDomain.Asset
		keys  sql.NullString
	)
	err := scanner.Scan(
		&asset.ID,
		&asset.Name,
		&asset.Size,
		&asset.StoragePath,
		&keys,
		&asset.BucketID,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "failed to scan asset")
	}
	if keys.Valid {
		asset.Keys = assetsDomain.SplitKeys(keys.String)
	}

	return &asset, nil
}
