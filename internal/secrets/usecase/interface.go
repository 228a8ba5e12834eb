// Package usecase implements business logic for secret management.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	secretsDomain "github.com/allisson/filebucket/internal/secrets/domain"
)

// SecretRepository defines the persistence operations required by the secret use case.
type SecretRepository interface {
	// Create inserts a new secret.
	Create(ctx context.Context, secret *secretsDomain.Secret) error

	// GetByID retrieves a secret by id, scoped to the owning user.
	GetByID(ctx context.Context, id, userID uuid.UUID) (*secretsDomain.Secret, error)

	// GetByIDAnyUser retrieves a secret by id regardless of owner. Used by
	// signed-URL verification, whose payload carries no user id.
	GetByIDAnyUser(ctx context.Context, id uuid.UUID) (*secretsDomain.Secret, error)

	// GetByEncryptedValue retrieves a secret by its encrypted value.
	GetByEncryptedValue(ctx context.Context, encryptedValue string) (*secretsDomain.Secret, error)

	// ListByUser retrieves secrets owned by the user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*secretsDomain.Secret, error)

	// Delete removes a secret owned by the user.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// DeleteExpiredByUser bulk-deletes the user's past-expiry secrets.
	DeleteExpiredByUser(ctx context.Context, userID uuid.UUID, now time.Time) (int64, error)

	// DeleteExpired bulk-deletes all past-expiry secrets.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// SecretUseCase defines the operations for managing and resolving secrets.
//
// Resolve operations implement the store-adapter contract every credential
// protocol leans on: a returned secret is guaranteed unexpired and carries its
// decrypted raw value, ready for use as a token signing key.
type SecretUseCase interface {
	// Create issues a new secret from a caller-chosen raw value.
	Create(
		ctx context.Context,
		userID uuid.UUID,
		value string,
		expiresAt *time.Time,
		validationURI *string,
	) (*secretsDomain.Secret, error)

	// Get retrieves a secret by id for its owner. Does not decrypt the value.
	Get(ctx context.Context, id, userID uuid.UUID) (*secretsDomain.Secret, error)

	// List retrieves secrets owned by the user.
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*secretsDomain.Secret, error)

	// Delete removes a secret, retroactively voiding every token it issued.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// DeleteExpiredForUser removes the user's past-expiry secrets.
	DeleteExpiredForUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteExpired removes all past-expiry secrets (maintenance command).
	DeleteExpired(ctx context.Context) (int64, error)

	// ResolveByValue resolves a caller-presented raw secret value, enforcing
	// expiry and populating the decrypted Value field.
	ResolveByValue(ctx context.Context, rawValue string) (*secretsDomain.Secret, error)

	// ResolveByID resolves a secret by id and owner, enforcing expiry and
	// populating the decrypted Value field.
	ResolveByID(ctx context.Context, id, userID uuid.UUID) (*secretsDomain.Secret, error)

	// ResolveByIDAnyUser resolves a secret by id alone, enforcing expiry and
	// populating the decrypted Value field. Ownership is established by the
	// caller through the secret's UserID.
	ResolveByIDAnyUser(ctx context.Context, id uuid.UUID) (*secretsDomain.Secret, error)
}
