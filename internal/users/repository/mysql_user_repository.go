package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/filebucket/internal/database"
	apperrors "github.com/allisson/filebucket/internal/errors"
	usersDomain "github.com/allisson/filebucket/internal/users/domain"
)

// MySQLUserRepository implements User persistence for MySQL databases.
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQL user repository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

// Create inserts a new user into the MySQL database.
func (m *MySQLUserRepository) Create(ctx context.Context, user *usersDomain.User) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO users (id, name, email, password, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

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
func (m *MySQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*usersDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, email, password, created_at, updated_at
			  FROM users
			  WHERE id = ?
			  LIMIT 1`

	return scanUser(querier.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a user by email.
func (m *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*usersDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, email, password, created_at, updated_at
			  FROM users
			  WHERE email = ?
			  LIMIT 1`

	return scanUser(querier.QueryRowContext(ctx, query, email))
}
