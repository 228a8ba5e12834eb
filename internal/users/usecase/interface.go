// Package usecase implements business logic for user accounts.
package usecase

import (
	"context"

	"github.com/google/uuid"

	usersDomain "github.com/allisson/filebucket/internal/users/domain"
)

// RegisterUserInput contains the input data for user registration.
type RegisterUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserRepository defines the persistence operations required by the user use case.
type UserRepository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *usersDomain.User) error

	// GetByID retrieves a user by id.
	GetByID(ctx context.Context, id uuid.UUID) (*usersDomain.User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*usersDomain.User, error)
}

// UserUseCase defines the operations for managing users.
type UserUseCase interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, input RegisterUserInput) (*usersDomain.User, error)

	// Get retrieves a user by id.
	Get(ctx context.Context, id uuid.UUID) (*usersDomain.User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*usersDomain.User, error)
}
