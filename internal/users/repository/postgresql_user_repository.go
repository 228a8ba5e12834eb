// Package repository implements data persistence for users.
// Repositories support both PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/filebucket/internal/database"
	apperrors "github.com/allisson/filebucket/internal/errors"
	usersDomain "github.com/allisson/filebucket/internal/users/domain"
)

// PostgreSQLUserRepository implements User persistence for PostgreSQL databases.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQL user repository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

// Create inserts a new user into the PostgreSQL database.
func (p *PostgreSQLUserRepository) Create(ctx context.Context, user *usersDomain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO users (id, name, email, password, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
		user.Name,
		user.Email,
		user.Password,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return usersDomain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by its id.
func (p *PostgreSQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*usersDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, email, password, created_at, updated_at
			  FROM users
			  WHERE id = $1
			  LIMIT 1`

	return scanUser(querier.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a user by email.
func (p *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*usersDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, email, password, created_at, updated_at
			  FROM users
			  WHERE email = $1
			  LIMIT 1`

	return scanUser(querier.QueryRowContext(ctx, query, email))
}

// scanUser scans a single user row, mapping sql.ErrNoRows to ErrNotFound.
func scanUser(row *sql.Row) (*usersDomain.User, error) {
	var user usersDomain.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}

	return &user, nil
}

// isUniqueViolation reports whether the error is a unique constraint
// violation in either backend's message format.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate entry")
}
