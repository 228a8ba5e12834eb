package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	bucketsDomain "github.com/allisson/filebucket/internal/buckets/domain"
	"github.com/allisson/filebucket/internal/database"
	apperrors "github.com/allisson/filebucket/internal/errors"
)

// MySQLBucketRepository implements Bucket persistence for MySQL databases.
type MySQLBucketRepository struct {
	db *sql.DB
}

// NewMySQLBucketRepository creates a new MySQL bucket repository.
func NewMySQLBucketRepository(db *sql.DB) *MySQLBucketRepository {
	return &MySQLBucketRepository{db: db}
}

// Create inserts a new bucket into the MySQL database.
func (m *MySQLBucketRepository) Create(ctx context.Context, bucket *bucketsDomain.Bucket) error {
	querier := database.GetTx(ctx, m.db)

	configJSON, err := marshalConfig(bucket.Config)
	if err != nil {
		return err
	}

	query := `INSERT INTO buckets (id, name, user_id, config, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

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
func (m *MySQLBucketRepository) GetByID(
	ctx context.Context,
	id, userID uuid.UUID,
) (*bucketsDomain.Bucket, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, user_id, config, created_at, updated_at
			  FROM buckets
			  WHERE id = ? AND user_id = ?
			  LIMIT 1`

	return scanBucket(querier.QueryRowContext(ctx, query, id, userID))
}

// ListByUser retrieves buckets owned by the user, newest first.
func (m *MySQLBucketRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*bucketsDomain.Bucket, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, user_id, config, created_at, updated_at
			  FROM buckets
			  WHERE user_id = ?
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

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
func (m *MySQLBucketRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM buckets WHERE id = ? AND user_id = ?`

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
