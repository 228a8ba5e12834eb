// Package domain defines errors and claim types for the signed token codec.
package domain

import (
	"github.com/allisson/filebucket/internal/errors"
)

// Signed token error definitions.
var (
	// ErrTokenMalformed indicates the token is not a structurally valid
	// three-segment signed token.
	ErrTokenMalformed = errors.Wrap(errors.ErrUnauthorized, "malformed token")

	// ErrTokenSignature indicates the token signature does not verify
	// under the supplied key.
	ErrTokenSignature = errors.Wrap(errors.ErrUnauthorized, "invalid token signature")

	// ErrTokenExpired indicates the token's expiry claim has passed, or a
	// signing call was asked to issue a token whose expiry already passed.
	ErrTokenExpired = errors.Wrap(errors.ErrExpired, "token expired")
)
