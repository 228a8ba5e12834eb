package domain

import (
	"github.com/allisson/filebucket/internal/errors"
)

// Credential-specific error definitions.
var (
	// ErrInvalidToken indicates a malformed, undecryptable, or
	// signature-mismatched token. Reported identically regardless of which
	// sub-step failed so callers cannot probe for the cause.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrMalformedPayload indicates a decrypted claim that does not match
	// the expected payload shape.
	ErrMalformedPayload = errors.Wrap(errors.ErrUnauthorized, "malformed credential payload")

	// ErrWrongBucket indicates a verified token presented against an asset
	// in a different bucket. An authorization denial, not an authentication
	// failure.
	ErrWrongBucket = errors.Wrap(errors.ErrForbidden, "token bucket does not match asset bucket")

	// ErrNoKeyOverlap indicates a verified token whose tag keys share no
	// element with the asset's tag keys.
	ErrNoKeyOverlap = errors.Wrap(errors.ErrForbidden, "token keys do not overlap asset keys")
)
