package domain

import (
	"github.com/allisson/filebucket/internal/errors"
)

// Secret-specific error definitions.
var (
	// ErrSecretNotFound indicates no secret matches the given id or value.
	ErrSecretNotFound = errors.Wrap(errors.ErrNotFound, "secret not found")

	// ErrSecretExpired indicates the secret row exists but its expiry has
	// passed. Checked before any cryptographic operation that would use the
	// secret as a key; the row remains until explicit cleanup.
	ErrSecretExpired = errors.Wrap(errors.ErrExpired, "secret expired")
)
