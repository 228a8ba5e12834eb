// Package service wraps the compact signed-token format used by every
// credential the system issues: a three-segment HMAC-SHA256 token whose
// payload claim is the ciphertext produced by the deterministic cipher,
// not plaintext JSON.
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/allisson/filebucket/internal/errors"
	tokenDomain "github.com/allisson/filebucket/internal/token/domain"
)

// payloadClaim is the claim name carrying the encrypted credential payload.
const payloadClaim = "payload"

// Codec signs and verifies compact tokens. DecodeUnverified is step one of
// the two-phase verification pattern: it parses structure and claims without
// checking the signature, and is never a standalone trust decision.
type Codec interface {
	// Sign issues a token embedding the encrypted payload, signed with the
	// given key. A non-positive ttl fails with ErrTokenExpired rather than
	// issuing an already-expired token.
	Sign(encryptedPayload, key string, ttl time.Duration) (string, error)

	// Verify checks the token signature and expiry under the supplied key.
	Verify(token, key string) (*tokenDomain.VerifiedClaim, error)

	// DecodeUnverified parses the token without checking the signature.
	DecodeUnverified(token string) (*tokenDomain.UntrustedClaim, error)
}

// tokenClaims is the on-wire claim set.
type tokenClaims struct {
	Payload string `json:"payload"`
	jwt.RegisteredClaims
}

// codec implements Codec using HMAC-SHA256 compact serialization.
type codec struct {
	now func() time.Time
}

// NewCodec creates a Codec using the system clock.
func NewCodec() Codec {
	return &codec{now: time.Now}
}

// NewCodecWithClock creates a Codec with an injectable clock for tests.
func NewCodecWithClock(now func() time.Time) Codec {
	return &codec{now: now}
}

// Sign issues a signed token carrying the encrypted payload.
func (c *codec) Sign(encryptedPayload, key string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", tokenDomain.ErrTokenExpired
	}

	now := c.now().UTC()
	claims := tokenClaims{
		Payload: encryptedPayload,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(key))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks signature and expiry and returns the verified claim.
func (c *codec) Verify(token, key string) (*tokenDomain.VerifiedClaim, error) {
	claims := &tokenClaims{}

	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (any, error) { return []byte(key), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, tokenDomain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, tokenDomain.ErrTokenMalformed
		default:
			return nil, tokenDomain.ErrTokenSignature
		}
	}
	if !parsed.Valid {
		return nil, tokenDomain.ErrTokenSignature
	}

	return &tokenDomain.VerifiedClaim{
		Payload:   claims.Payload,
		ExpiresAt: claimTime(claims.ExpiresAt),
		IssuedAt:  claimTime(claims.IssuedAt),
	}, nil
}

// DecodeUnverified parses the token structure and claims without checking
// the signature.
func (c *codec) DecodeUnverified(token string) (*tokenDomain.UntrustedClaim, error) {
	claims := &tokenClaims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, tokenDomain.ErrTokenMalformed
	}

	return &tokenDomain.UntrustedClaim{
		Payload:   claims.Payload,
		ExpiresAt: claimTime(claims.ExpiresAt),
		IssuedAt:  claimTime(claims.IssuedAt),
	}, nil
}

// claimTime converts an optional numeric-date claim to a time value.
func claimTime(d *jwt.NumericDate) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}
