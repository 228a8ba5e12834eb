package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/filebucket/internal/database"
	apperrors "github.com/allisson/filebucket/internal/errors"
	secretsDomain "github.com/allisson/filebucket/internal/secrets/domain"
)

// MySQLSecretRepository implements Secret persistence for MySQL databases.
type MySQLSecretRepository struct {
	db *sql.DB
}

// NewMySQLSecretRepository creates a new MySQL secret repository.
func NewMySQLSecretRepository(db *sql.DB) *MySQLSecretRepository {
	return &MySQLSecretRepository{db: db}
}

// Create inserts a new secret into the MySQL database.
func (m *MySQLSecretRepository) Create(ctx context.Context, secret *secretsDomain.Secret) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO secrets (id, encrypted_value, validation_uri, expires_at, user_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		secret.ID,
		secret.EncryptedValue,
		secret.ValidationURI,
		secret.ExpiresAt,
		secret.UserID,
		secret.CreatedAt,
		secret.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create secret")
	}
	return nil
}

// GetByID retrieves a secret by its id, scoped to the owning user.
func (m *MySQLSecretRepository) GetByID(
	ctx context.Context,
	id, userID uuid.UUID,
) (*secretsDomain.Secret, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, encrypted_value, validation_uri, expires_at, user_id, created_at, updated_at
			  FROM secrets
			  WHERE id = ? AND user_id = ?
			  LIMIT 1`

	return scanSecret(querier.QueryRowContext(ctx, query, id, userID))
}

// GetByIDAnyUser retrieves a secret by its id regardless of owner.
func (m *MySQLSecretRepository) GetByIDAnyUser(
	ctx context.Context,
	id uuid.UUID,
) (*secretsDomain.Secret, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, encrypted_value, validation_uri, expires_at, user_id, created_at, updated_at
			  FROM secrets
			  WHERE id = ?
			  LIMIT 1`

	return scanSecret(querier.QueryRowContext(ctx, query, id))
}

// GetByEncryptedValue retrieves a secret by its encrypted value.
func (m *MySQLSecretRepository) GetByEncryptedValue(
	ctx context.Context,
	encryptedValue string,
) (*secretsDomain.Secret, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, encrypted_value, validation_uri, expires_at, user_id, created_at, updated_at
			  FROM secrets
			  WHERE encrypted_value = ?
			  LIMIT 1`

	return scanSecret(querier.QueryRowContext(ctx, query, encryptedValue))
}

// ListByUser retrieves secrets owned by the user, newest first.
func (m *MySQLSecretRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*secretsDomain.Secret, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, encrypted_value, validation_uri, expires_at, user_id, created_at, updated_at
			  FROM secrets
			  WHERE user_id = ?
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list secrets")
	}
	defer func() { _ = rows.Close() }()

	var secrets []*secretsDomain.Secret
	for rows.Next() {
		var secret secretsDomain.Secret
		if err := rows.Scan(
			&secret.ID,
			&secret.EncryptedValue,
			&secret.ValidationURI,
			&secret.ExpiresAt,
			&secret.UserID,
			&secret.CreatedAt,
			&secret.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan secret")
		}
		secrets = append(secrets, &secret)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate secrets")
	}

	return secrets, nil
}

// Delete removes a secret owned by the user.
func (m *MySQLSecretRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM secrets WHERE id = ? AND user_id = ?`

	result, err := querier.ExecContext(ctx, query, id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete secret")
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

// DeleteExpiredByUser bulk-deletes the user's past-expiry secrets and returns the count.
func (m *MySQLSecretRepository) DeleteExpiredByUser(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM secrets WHERE user_id = ? AND expires_at IS NOT NULL AND expires_at < ?`

	result, err := querier.ExecContext(ctx, query, userID, now)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired secrets")
	}

	return result.RowsAffected()
}

// DeleteExpired bulk-deletes all past-expiry secrets and returns the count.
func (m *MySQLSecretRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM secrets WHERE expires_at IS NOT NULL AND expires_at < ?`

	result, err := querier.ExecContext(ctx, query, now)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired secrets")
	}

	return result.RowsAffected()
}
