package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/hkdf"

	cryptoDomain "github.com/allisson/filebucket/internal/crypto/domain"
	apperrors "github.com/allisson/filebucket/internal/errors"
)

// HKDF info strings separating key derivation from IV derivation.
// Versioned so the scheme can change without ambiguity about old ciphertexts.
const (
	keyDerivationInfo = "filebucket-cipher-key-v1"
	ivDerivationInfo  = "filebucket-cipher-iv-v1"
)

// deterministicCipher implements Cipher using AES-256-CTR with an HKDF-SHA256
// derived key and IV. Both derivations are functions of the key material
// alone, which makes the cipher deterministic (see the Cipher docs for why).
type deterministicCipher struct {
	masterKey *cryptoDomain.MasterKey
}

// NewDeterministicCipher creates a Cipher bound to the given master key.
func NewDeterministicCipher(masterKey *cryptoDomain.MasterKey) Cipher {
	return &deterministicCipher{masterKey: masterKey}
}

// Encrypt encrypts plaintext under the master key.
func (d *deterministicCipher) Encrypt(plaintext string) (string, error) {
	return d.EncryptWithKey(plaintext, d.masterKey.Material())
}

// EncryptWithKey encrypts plaintext under the supplied key material.
func (d *deterministicCipher) EncryptWithKey(plaintext, keyMaterial string) (string, error) {
	stream, err := newStream(keyMaterial)
	if err != nil {
		return "", err
	}

	out := make([]byte, len(plaintext))
	stream.XORKeyStream(out, []byte(plaintext))

	return hex.EncodeToString(out), nil
}

// Decrypt decrypts ciphertext under the master key.
func (d *deterministicCipher) Decrypt(ciphertext string) (string, error) {
	return d.DecryptWithKey(ciphertext, d.masterKey.Material())
}

// DecryptWithKey decrypts ciphertext under the supplied key material.
func (d *deterministicCipher) DecryptWithKey(ciphertext, keyMaterial string) (string, error) {
	raw, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", apperrors.Wrap(cryptoDomain.ErrMalformedCiphertext, err.Error())
	}

	stream, err := newStream(keyMaterial)
	if err != nil {
		return "", err
	}

	out := make([]byte, len(raw))
	stream.XORKeyStream(out, raw)

	return string(out), nil
}

// newStream derives the 256-bit key and 128-bit IV from the key material and
// returns the CTR stream. CTR is its own inverse, so the same stream serves
// encryption and decryption.
func newStream(keyMaterial string) (cipher.Stream, error) {
	if keyMaterial == "" {
		return nil, cryptoDomain.ErrEmptyKeyMaterial
	}

	key, err := derive(keyMaterial, keyDerivationInfo, 32)
	if err != nil {
		return nil, err
	}
	iv, err := derive(keyMaterial, ivDerivationInfo, aes.BlockSize)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create AES cipher")
	}

	return cipher.NewCTR(block, iv), nil
}

// derive produces n deterministic bytes from the key material via HKDF-SHA256.
func derive(keyMaterial, info string, n int) ([]byte, error) {
	reader := hkdf.New(sha256.New, []byte(keyMaterial), nil, []byte(info))

	out := make([]byte, n)
	if _, err := io.ReadFull(reader, out); err != nil {
		return nil, apperrors.Wrap(err, "failed to derive key material")
	}

	return out, nil
}
