package domain

import (
	"github.com/allisson/filebucket/internal/errors"
)

// Cryptographic operation error definitions.
var (
	// ErrMasterKeyNotSet indicates the MASTER_KEY configuration is missing.
	ErrMasterKeyNotSet = errors.New("master key is not set")

	// ErrInvalidMasterKey indicates the master key is not valid base64.
	ErrInvalidMasterKey = errors.New("master key is not valid base64")

	// ErrEmptyKeyMaterial indicates empty key material was supplied for derivation.
	ErrEmptyKeyMaterial = errors.Wrap(errors.ErrInvalidInput, "empty key material")

	// ErrMalformedCiphertext indicates the ciphertext is not valid hex or has
	// a corrupted length. The cipher only fails on malformed input; decrypting
	// well-formed ciphertext under the wrong key yields garbage, not an error.
	ErrMalformedCiphertext = errors.Wrap(errors.ErrInvalidInput, "malformed ciphertext")
)
