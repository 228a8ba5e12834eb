// Package service implements credential payload encoding: JSON serialization
// wrapped in master-key encryption. The resulting ciphertext is what a signed
// token carries as its claim.
package service

import (
	"bytes"
	"encoding/json"

	credentialsDomain "github.com/allisson/filebucket/internal/credentials/domain"
	cryptoService "github.com/allisson/filebucket/internal/crypto/service"
	apperrors "github.com/allisson/filebucket/internal/errors"
)

// PayloadCodec encodes credential payloads to encrypted claims and back.
type PayloadCodec interface {
	// EncodeReadToken serializes and encrypts a read-token payload.
	EncodeReadToken(payload *credentialsDomain.ReadTokenPayload) (string, error)

	// DecodeReadToken decrypts and deserializes a read-token payload.
	// Fails with ErrInvalidToken on undecryptable input and with
	// ErrMalformedPayload when the decrypted JSON does not match the
	// expected shape.
	DecodeReadToken(encrypted string) (*credentialsDomain.ReadTokenPayload, error)

	// EncodeSignedURL serializes and encrypts a signed-URL payload.
	EncodeSignedURL(payload *credentialsDomain.SignedURLPayload) (string, error)

	// DecodeSignedURL decrypts and deserializes a signed-URL payload.
	DecodeSignedURL(encrypted string) (*credentialsDomain.SignedURLPayload, error)
}

// payloadCodec implements PayloadCodec on top of the master-key cipher.
type payloadCodec struct {
	cipher cryptoService.Cipher
}

// NewPayloadCodec creates a new PayloadCodec.
func NewPayloadCodec(cipher cryptoService.Cipher) PayloadCodec {
	return &payloadCodec{cipher: cipher}
}

// EncodeReadToken serializes and encrypts a read-token payload.
func (p *payloadCodec) EncodeReadToken(payload *credentialsDomain.ReadTokenPayload) (string, error) {
	return p.encode(payload)
}

// DecodeReadToken decrypts and deserializes a read-token payload.
func (p *payloadCodec) DecodeReadToken(encrypted string) (*credentialsDomain.ReadTokenPayload, error) {
	var payload credentialsDomain.ReadTokenPayload
	if err := p.decode(encrypted, &payload); err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return &payload, nil
}

// EncodeSignedURL serializes and encrypts a signed-URL payload.
func (p *payloadCodec) EncodeSignedURL(payload *credentialsDomain.SignedURLPayload) (string, error) {
	return p.encode(payload)
}

// DecodeSignedURL decrypts and deserializes a signed-URL payload.
func (p *payloadCodec) DecodeSignedURL(encrypted string) (*credentialsDomain.SignedURLPayload, error) {
	var payload credentialsDomain.SignedURLPayload
	if err := p.decode(encrypted, &payload); err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (p *payloadCodec) encode(payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to serialize credential payload")
	}
	return p.cipher.Encrypt(string(data))
}

func (p *payloadCodec) decode(encrypted string, payload any) error {
	plaintext, err := p.cipher.Decrypt(encrypted)
	if err != nil {
		return credentialsDomain.ErrInvalidToken
	}

	decoder := json.NewDecoder(bytes.NewReader([]byte(plaintext)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return credentialsDomain.ErrMalformedPayload
	}
	return nil
}
