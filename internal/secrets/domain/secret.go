// Package domain defines the core domain model for secrets. A secret is an
// opaque credential root owned by one user: its decrypted value doubles as
// the HMAC signing key for every token the secret issues, and its encrypted
// value is the handle used for lookup-by-value. Secrets are immutable after
// creation; invalidation is expiry- and deletion-driven only.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Secret represents an owner-issued credential root.
type Secret struct {
	// ID is the unique identifier for this secret.
	ID uuid.UUID
	// EncryptedValue is the ciphertext of the caller-chosen secret string,
	// encrypted under the master key. The deterministic cipher makes this
	// ciphertext a stable lookup handle: equal raw values encrypt to equal
	// ciphertexts.
	EncryptedValue string
	// Value holds the decrypted raw secret in memory only, populated on
	// resolve and used as the token signing key; never persisted or encoded.
	Value string `json:"-"`
	// ValidationURI is an optional URI a verifier may use for out-of-band checks.
	ValidationURI *string
	// ExpiresAt is the optional expiry; a past value turns every use of this
	// secret, and every token it issued, into an expired-secret failure.
	ExpiresAt *time.Time
	// UserID is the owning user.
	UserID uuid.UUID
	// CreatedAt is the UTC timestamp when the secret was created.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last row write.
	UpdatedAt time.Time
}

// Expired reports whether the secret's expiry has passed at the given instant.
// Secrets without an expiry never expire.
func (s *Secret) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && s.ExpiresAt.Before(now)
}

// TimeToExpiry returns the remaining validity window at the given instant,
// or zero when the secret never expires.
func (s *Secret) TimeToExpiry(now time.Time) time.Duration {
	if s.ExpiresAt == nil {
		return 0
	}
	return s.ExpiresAt.Sub(now)
}
