package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	cryptoService "github.com/allisson/filebucket/internal/crypto/service"
	apperrors "github.com/allisson/filebucket/internal/errors"
	secretsDomain "github.com/allisson/filebucket/internal/secrets/domain"
)

// secretUseCase implements SecretUseCase.
type secretUseCase struct {
	secretRepo SecretRepository
	cipher     cryptoService.Cipher
}

// NewSecretUseCase creates a new SecretUseCase.
func NewSecretUseCase(secretRepo SecretRepository, cipher cryptoService.Cipher) SecretUseCase {
	return &secretUseCase{
		secretRepo: secretRepo,
		cipher:     cipher,
	}
}

// Create issues a new secret from a caller-chosen raw value. The raw value is
// stored encrypted under the master key; determinism of the cipher makes the
// ciphertext usable as a lookup handle, so duplicate raw values conflict.
func (s *secretUseCase) Create(
	ctx context.Context,
	userID uuid.UUID,
	value string,
	expiresAt *time.Time,
	validationURI *string,
) (*secretsDomain.Secret, error) {
	if value == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "secret value cannot be empty")
	}

	encryptedValue, err := s.cipher.Encrypt(value)
	if err != nil {
		return nil, err
	}

	// Equal raw values encrypt to equal ciphertexts, so an existing row with
	// this ciphertext means the raw value is already taken.
	existing, err := s.secretRepo.GetByEncryptedValue(ctx, encryptedValue)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Wrap(apperrors.ErrConflict, "secret value already in use")
	}

	now := time.Now().UTC()
	secret := &secretsDomain.Secret{
		ID:             uuid.Must(uuid.NewV7()),
		EncryptedValue: encryptedValue,
		ValidationURI:  validationURI,
		ExpiresAt:      expiresAt,
		UserID:         userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.secretRepo.Create(ctx, secret); err != nil {
		return nil, err
	}

	return secret, nil
}

// Get retrieves a secret by id for its owner.
func (s *secretUseCase) Get(ctx context.Context, id, userID uuid.UUID) (*secretsDomain.Secret, error) {
	secret, err := s.secretRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, secretsDomain.ErrSecretNotFound
		}
		return nil, err
	}
	return secret, nil
}

// List retrieves secrets owned by the user.
func (s *secretUseCase) List(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*secretsDomain.Secret, error) {
	return s.secretRepo.ListByUser(ctx, userID, limit, offset)
}

// Delete removes a secret. Every token the secret issued becomes
// unverifiable from this point on.
func (s *secretUseCase) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.secretRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return secretsDomain.ErrSecretNotFound
		}
		return err
	}
	return nil
}

// DeleteExpiredForUser removes the user's past-expiry secrets.
func (s *secretUseCase) DeleteExpiredForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.secretRepo.DeleteExpiredByUser(ctx, userID, time.Now().UTC())
}

// DeleteExpired removes all past-expiry secrets.
func (s *secretUseCase) DeleteExpired(ctx context.Context) (int64, error) {
	return s.secretRepo.DeleteExpired(ctx, time.Now().UTC())
}

// ResolveByValue encrypts the candidate raw value under the master key and
// looks the secret up by ciphertext equality.
func (s *secretUseCase) ResolveByValue(
	ctx context.Context,
	rawValue string,
) (*secretsDomain.Secret, error) {
	if rawValue == "" {
		return nil, secretsDomain.ErrSecretNotFound
	}

	encryptedValue, err := s.cipher.Encrypt(rawValue)
	if err != nil {
		return nil, err
	}

	secret, err := s.secretRepo.GetByEncryptedValue(ctx, encryptedValue)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, secretsDomain.ErrSecretNotFound
		}
		return nil, err
	}

	return s.activate(secret)
}

// ResolveByID fetches and activates a secret by id and owner.
func (s *secretUseCase) ResolveByID(
	ctx context.Context,
	id, userID uuid.UUID,
) (*secretsDomain.Secret, error) {
	secret, err := s.secretRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, secretsDomain.ErrSecretNotFound
		}
		return nil, err
	}

	return s.activate(secret)
}

// ResolveByIDAnyUser fetches and activates a secret by id alone.
func (s *secretUseCase) ResolveByIDAnyUser(
	ctx context.Context,
	id uuid.UUID,
) (*secretsDomain.Secret, error) {
	secret, err := s.secretRepo.GetByIDAnyUser(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, secretsDomain.ErrSecretNotFound
		}
		return nil, err
	}

	return s.activate(secret)
}

// activate enforces expiry and populates the decrypted raw value. The expiry
// check runs before any cryptographic use of the secret as a key.
func (s *secretUseCase) activate(secret *secretsDomain.Secret) (*secretsDomain.Secret, error) {
	if secret.Expired(time.Now().UTC()) {
		return nil, secretsDomain.ErrSecretExpired
	}

	value, err := s.cipher.Decrypt(secret.EncryptedValue)
	if err != nil {
		return nil, err
	}
	secret.Value = value

	return secret, nil
}
