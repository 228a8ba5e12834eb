package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bucketsDomain "github.com/allisson/filebucket/internal/buckets/domain"
	apperrors "github.com/allisson/filebucket/internal/errors"
)

func newBucketFixture() *bucketsDomain.Bucket {
	now := time.Now().UTC()
	return &bucketsDomain.Bucket{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "photos",
		UserID:    uuid.Must(uuid.NewV7()),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPostgreSQLBucketRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewPostgreSQLBucketRepository(db)

	t.Run("without config", func(t *testing.T) {
		bucket := newBucketFixture()

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO buckets`)).
			WithArgs(bucket.ID, bucket.Name, bucket.UserID, nil, bucket.CreatedAt, bucket.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(context.Background(), bucket)
		require.NoError(t, err)
	})

	t.Run("with config", func(t *testing.T) {
		bucket := newBucketFixture()
		bucket.Config = &bucketsDomain.Config{
			AllowedFileTypes: []string{"image/*"},
			MaxFileSize:      1024,
		}

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO buckets`)).
			WithArgs(
				bucket.ID, bucket.Name, bucket.UserID,
				[]byte(`{"allowed_file_types":["image/*"],"max_file_size":1024}`),
				bucket.CreatedAt, bucket.UpdatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(context.Background(), bucket)
		require.NoError(t, err)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLBucketRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewPostgreSQLBucketRepository(db)
	bucket := newBucketFixture()

	t.Run("found with config", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "user_id", "config", "created_at", "updated_at"}).
			AddRow(
				bucket.ID, bucket.Name, bucket.UserID,
				[]byte(`{"allowed_file_types":[".png"],"max_file_size":2048}`),
				bucket.CreatedAt, bucket.UpdatedAt,
			)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, user_id, config`)).
			WithArgs(bucket.ID, bucket.UserID).
			WillReturnRows(rows)

		got, err := repo.GetByID(context.Background(), bucket.ID, bucket.UserID)
		require.NoError(t, err)
		assert.Equal(t, bucket.ID, got.ID)
		require.NotNil(t, got.Config)
		assert.Equal(t, []string{".png"}, got.Config.AllowedFileTypes)
		assert.Equal(t, int64(2048), got.Config.MaxFileSize)
	})

	t.Run("found without config", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "user_id", "config", "created_at", "updated_at"}).
			AddRow(bucket.ID, bucket.Name, bucket.UserID, nil, bucket.CreatedAt, bucket.UpdatedAt)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, user_id, config`)).
			WithArgs(bucket.ID, bucket.UserID).
			WillReturnRows(rows)

		got, err := repo.GetByID(context.Background(), bucket.ID, bucket.UserID)
		require.NoError(t, err)
		assert.Nil(t, got.Config)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, user_id, config`)).
			WithArgs(bucket.ID, bucket.UserID).
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "name", "user_id", "config", "created_at", "updated_at"},
			))

		_, err := repo.GetByID(context.Background(), bucket.ID, bucket.UserID)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLBucketRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewPostgreSQLBucketRepository(db)
	bucket := newBucketFixture()

	rows := sqlmock.NewRows([]string{"id", "name", "user_id", "config", "created_at", "updated_at"}).
		AddRow(bucket.ID, bucket.Name, bucket.UserID, nil, bucket.CreatedAt, bucket.UpdatedAt)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id =`)).
		WithArgs(bucket.UserID, 20, 0).
		WillReturnRows(rows)

	buckets, err := repo.ListByUser(context.Background(), bucket.UserID, 20, 0)
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, bucket.Name, buckets[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLBucketRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewPostgreSQLBucketRepository(db)
	bucket := newBucketFixture()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM buckets`)).
			WithArgs(bucket.ID, bucket.UserID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), bucket.ID, bucket.UserID)
		require.NoError(t, err)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM buckets`)).
			WithArgs(bucket.ID, bucket.UserID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), bucket.ID, bucket.UserID)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
