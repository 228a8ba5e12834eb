// Package repository implements data persistence for buckets.
// Repositories support both PostgreSQL and MySQL; the optional bucket
// config is persisted as a nullable JSON column.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	bucketsDomain "github.com/allisson/filebucket/internal/buckets/domain"
	"github.com/allisson/filebucket/internal/database"
	apperrors "github.com/allisson/filebucket/internal/errors"
)

// PostgreSQLBucketRepository implements Bucket persistence for PostgreSQL databases.
type PostgreSQLBucketRepository struct {
	db *sql.DB
}

// NewPostgreSQLBucketRepository creates a new PostgreSQL bucket repository.
func NewPostgreSQLBucketRepository(db *sql.DB) *PostgreSQLBucketRepository {
	return &PostgreSQLBucketRepository{db: db}
}

// Create inserts a new bucket into the PostgreSQL database.
func (p *PostgreSQLBucketRepository) Create(ctx context.Context, bucket *bucketsDomain.Bucket) error {
	querier := database.GetTx(ctx, p.db)

	configJSON, err := marshalConfig(bucket.Config)
	if err != nil {
		return err
	}

	query := `INSERT INTO buckets (id, name, user_id, config, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = querier.ExecContext(
		ctx,
		query,
		bucket.ID,
		bucket.Name,
		bucket.UserID,
		configJSON,
		bucket.CreatedAt,
		bucket.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create bucket")
	}
	return nil
}

// GetByID retrieves a bucket by id, scoped to the owning user.
func (p *PostgreSQLBucketRepository) GetByID(
	ctx context.Context,
	id, userID uuid.UUID,
) (*bucketsDomain.Bucket, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, user_id, config, created_at, updated_at
			  FROM buckets
			  WHERE id = $1 AND user_id = $2
			  LIMIT 1`

	return scanBucket(querier.QueryRowContext(ctx, query, id, userID))
}

// ListByUser retrieves buckets owned by the user, newest first.
func (p *PostgreSQLBucketRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*bucketsDomain.Bucket, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, user_id, config, created_at, updated_at
			  FROM buckets
			  WHERE user_id = $1
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list buckets")
	}
	defer func() { _ = rows.Close() }()

	var buckets []*bucketsDomain.Bucket
	for rows.Next() {
		bucket, err := scanBucketRow(rows)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate buckets")
	}

	return buckets, nil
}

// Delete removes a bucket owned by the user.
func (p *PostgreSQLBucketRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM buckets WHERE id = $1 AND user_id = $2`

	result, err := querier.ExecContext(ctx, query, id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete bucket")
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

// marshalConfig serializes an optional bucket config to a nullable JSON value.
func marshalConfig(config *bucketsDomain.Config) (any, error) {
	if config == nil {
		return nil, nil
	}
	raw, err := json.Marshal(config)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal bucket config")
	}
	return raw, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanBucket scans a single bucket row, mapping sql.ErrNoRows to ErrNotFound.
func scanBucket(row *sql.Row) (*bucketsDomain.Bucket, error) {
	bucket, err := scanBucketRow(row)
	if err != nil {
		if apperrors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return bucket, nil
}

// scanBucketRow scans one bucket from any scanner, decoding the JSON config.
func scanBucketRow(scanner rowScanner) (*bucketsDomain.Bucket, error) {
	var bucket bucketsDomain.Bucket
	var configJSON []byte

	err := scanner.Scan(
		&bucket.ID,
		&bucket.Name,
		&bucket.UserID,
		&configJSON,
		&bucket.CreatedAt,
		&bucket.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "failed to scan bucket")
	}

	if len(configJSON) > 0 {
		var config bucketsDomain.Config
		if err := json.Unmarshal(configJSON, &config); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal bucket config")
		}
		bucket.Config = &config
	}

	return &bucket, nil
}
