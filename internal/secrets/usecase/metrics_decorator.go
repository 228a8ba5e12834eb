package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/filebucket/internal/metrics"
	secretsDomain "github.com/allisson/filebucket/internal/secrets/domain"
)

// secretUseCaseWithMetrics decorates SecretUseCase with metrics instrumentation.
type secretUseCaseWithMetrics struct {
	next    SecretUseCase
	metrics metrics.BusinessMetrics
}

// NewSecretUseCaseWithMetrics wraps a SecretUseCase with metrics recording.
func NewSecretUseCaseWithMetrics(useCase SecretUseCase, m metrics.BusinessMetrics) SecretUseCase {
	return &secretUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (s *secretUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "secrets", operation, status)
	s.metrics.RecordDuration(ctx, "secrets", operation, time.Since(start), status)
}

// Create records metrics for secret creation operations.
func (s *secretUseCaseWithMetrics) Create(
	ctx context.Context,
	userID uuid.UUID,
	value string,
	expiresAt *time.Time,
	validationURI *string,
) (*secretsDomain.Secret, error) {
	start := time.Now()
	secret, err := s.next.Create(ctx, userID, value, expiresAt, validationURI)
	s.record(ctx, "secret_create", start, err)
	return secret, err
}

// Get records metrics for secret retrieval operations.
func (s *secretUseCaseWithMetrics) Get(ctx context.Context, id, userID uuid.UUID) (*secretsDomain.Secret, error) {
	start := time.Now()
	secret, err := s.next.Get(ctx, id, userID)
	s.record(ctx, "secret_get", start, err)
	return secret, err
}

// List records metrics for secret listing operations.
func (s *secretUseCaseWithMetrics) List(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*secretsDomain.Secret, error) {
	start := time.Now()
	secrets, err := s.next.List(ctx, userID, limit, offset)
	s.record(ctx, "secret_list", start, err)
	return secrets, err
}

// Delete records metrics for secret deletion operations.
func (s *secretUseCaseWithMetrics) Delete(ctx context.Context, id, userID uuid.UUID) error {
	start := time.Now()
	err := s.next.Delete(ctx, id, userID)
	s.record(ctx, "secret_delete", start, err)
	return err
}

// DeleteExpiredForUser records metrics for per-user expired secret cleanup.
func (s *secretUseCaseWithMetrics) DeleteExpiredForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	start := time.Now()
	count, err := s.next.DeleteExpiredForUser(ctx, userID)
	s.record(ctx, "secret_delete_expired_user", start, err)
	return count, err
}

// DeleteExpired records metrics for global expired secret cleanup.
func (s *secretUseCaseWithMetrics) DeleteExpired(ctx context.Context) (int64, error) {
	start := time.Now()
	count, err := s.next.DeleteExpired(ctx)
	s.record(ctx, "secret_delete_expired", start, err)
	return count, err
}

// ResolveByValue records metrics for value-based secret resolution.
func (s *secretUseCaseWithMetrics) ResolveByValue(ctx context.Context, rawValue string) (*secretsDomain.Secret, error) {
	start := time.Now()
	secret, err := s.next.ResolveByValue(ctx, rawValue)
	s.record(ctx, "secret_resolve_value", start, err)
	return secret, err
}

// ResolveByID records metrics for id-based secret resolution.
func (s *secretUseCaseWithMetrics) ResolveByID(ctx context.Context, id, userID uuid.UUID) (*secretsDomain.Secret, error) {
	start := time.Now()
	secret, err := s.next.ResolveByID(ctx, id, userID)
	s.record(ctx, "secret_resolve_id", start, err)
	return secret, err
}

// ResolveByIDAnyUser records metrics for owner-unscoped secret resolution.
func (s *secretUseCaseWithMetrics) ResolveByIDAnyUser(ctx context.Context, id uuid.UUID) (*secretsDomain.Secret, error) {
	start := time.Now()
	secret, err := s.next.ResolveByIDAnyUser(ctx, id)
	s.record(ctx, "secret_resolve_id_any", start, err)
	return secret, err
}
