// Package domain defines the core domain models for the cryptographic layer:
// the process master key and the errors shared by the cipher services.
package domain

import (
	"context"
	"encoding/base64"

	"gocloud.dev/secrets"

	// Register KMS provider drivers for master key unwrapping.
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"

	apperrors "github.com/allisson/filebucket/internal/errors"
)

// MasterKey is the process-wide key material used to encrypt credential
// payloads and secret values at rest. It is loaded once at startup and
// injected explicitly into the cipher, never read from ambient global state.
type MasterKey struct {
	Key []byte
}

// Material returns the key material as a string for key derivation.
func (m *MasterKey) Material() string {
	return string(m.Key)
}

// Close zeroes the key material.
func (m *MasterKey) Close() {
	Zero(m.Key)
	m.Key = nil
}

// LoadMasterKey decodes the configured master key. The value is base64-encoded;
// when keeperURI is non-empty the decoded bytes are treated as a KMS-wrapped
// ciphertext and unwrapped through a gocloud.dev secrets keeper (hashivault://,
// base64key://, ...).
func LoadMasterKey(ctx context.Context, encoded, keeperURI string) (*MasterKey, error) {
	if encoded == "" {
		return nil, ErrMasterKeyNotSet
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, apperrors.Wrap(ErrInvalidMasterKey, err.Error())
	}

	if keeperURI == "" {
		return &MasterKey{Key: raw}, nil
	}

	keeper, err := secrets.OpenKeeper(ctx, keeperURI)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open KMS keeper")
	}
	defer func() { _ = keeper.Close() }()

	key, err := keeper.Decrypt(ctx, raw)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to unwrap master key")
	}
	Zero(raw)

	return &MasterKey{Key: key}, nil
}
