// Package repository implements data persistence for secrets.
// Repositories support both PostgreSQL and MySQL.
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

// PostgreSQLSecretRepository implements Secret persistence for PostgreSQL databases.
type PostgreSQLSecretRepository struct {
	db *sql.DB
}

// NewPostgreSQLSecretRepository creates a new PostgreSQL secret repository.
func NewPostgreSQLSecretRepository(db *sql.DB) *PostgreSQLSecretRepository {
	return &PostgreSQLSecretRepository{db: db}
}

// Create inserts a new secret into the PostgreSQL database.
func (p *PostgreSQLSecretRepository) Create(ctx context.Context, secret *secretsDomain.Secret) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO secrets (id, encrypted_value, validation_uri, expires_at, user_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

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
func (p *PostgreSQLSecretRepository) GetByID(
	ctx context.Context,
	id, userID uuid.UUID,
) (*secretsDomain.Secret, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, encrypted_value, validation_uri, expires_at, user_id, created_at, updated_at
			  FROM secrets
			  WHERE id = $1 AND user_id = $2
			  LIMIT 1`

	return scanSecret(querier.QueryRowContext(ctx, query, id, userID))
}

// GetByIDAnyUser retrieves a secret by its id regardless of owner.
func (p *PostgreSQLSecretRepository) GetByIDAnyUser(
	ctx context.Context,
	id uuid.UUID,
) (*secretsDomain.Secret, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, encrypted_value, validation_uri, expires_at, user_id, created_at, updated_at
			  FROM secrets
			  WHERE id = $1
			  LIMIT 1`

	return scanSecret(querier.QueryRowContext(ctx, query, id))
}

// GetByEncryptedValue retrieves a secret by its encrypted value. The cipher's
// determinism makes the ciphertext a unique lookup handle for the raw value.
func (p *PostgreSQLSecretRepository) GetByEncryptedValue(
	ctx context.Context,
	encryptedValue string,
) (*secretsDomain.Secret, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, encrypted_value, validation_uri, expires_at, user_id, created_at, updated_at
			  FROM secrets
			  WHERE encrypted_value = $1
			  LIMIT 1`

	return scanSecret(querier.QueryRowContext(ctx, query, encryptedValue))
}

// ListByUser retrieves secrets owned by the user, newest first.
func (p *PostgreSQLSecretRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*secretsDomain.Secret, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, encrypted_value, validation_uri, expires_at, user_id, created_at, updated_at
			  FROM secrets
			  WHERE user_id = $1
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`

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
func (p *PostgreSQLSecretRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM secrets WHERE id = $1 AND user_id = $2`

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
func (p *PostgreSQLSecretRepository) DeleteExpiredByUser(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM secrets WHERE user_id = $1 AND expires_at IS NOT NULL AND expires_at < $2`

	result, err := querier.ExecContext(ctx, query, userID, now)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired secrets")
	}

	return result.RowsAffected()
}

// DeleteExpired bulk-deletes all past-expiry secrets and returns the count.
func (p *PostgreSQLSecretRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM secrets WHERE expires_at IS NOT NULL AND expires_at < $1`

	result, err := querier.ExecContext(ctx, query, now)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired secrets")
	}

	return result.RowsAffected()
}

// scanSecret scans a single secret row, mapping sql.ErrNoRows to ErrNotFound.
func scanSecret(row *sql.Row) (*secretsDomain.Secret, error) {
	var secret secretsDomain.Secret
	err := row.Scan(
		&secret.ID,
		&secret.EncryptedValue,
		&secret.ValidationURI,
		&secret.ExpiresAt,
		&secret.UserID,
		&secret.CreatedAt,
		&secret.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get secret")
	}

	return &secret, nil
}
