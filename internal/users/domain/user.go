// Package domain defines the user entity. Users own secrets and buckets;
// authentication happens upstream, so the system only needs identity and an
// account record created through the CLI or the registration endpoint.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/filebucket/internal/errors"
)

// User represents an account that owns secrets and buckets.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string `json:"-"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// User-specific error definitions.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")
)
