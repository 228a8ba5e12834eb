package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/filebucket/internal/metrics"
	secretsDomain "github.com/allisson/filebucket/internal/secrets/domain"
	secretsUsecaseMocks "github.com/allisson/filebucket/internal/secrets/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func expectMetrics(m *mockBusinessMetrics, domain, operation, status string) {
	m.On("RecordOperation", mock.Anything, domain, operation, status).Return().Once()
	m.On("RecordDuration", mock.Anything, domain, operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestNewSecretUseCaseWithMetrics(t *testing.T) {
	t.Parallel()

	mockUseCase := &secretsUsecaseMocks.MockSecretUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	decorator := NewSecretUseCaseWithMetrics(mockUseCase, mockMetrics)

	assert.NotNil(t, decorator)
	assert.Implements(t, (*SecretUseCase)(nil), decorator)
}

func TestSecretMetricsDecorator_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := &secretsUsecaseMocks.MockSecretUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		userID := uuid.Must(uuid.NewV7())
		expectedSecret := &secretsDomain.Secret{
			ID:        uuid.Must(uuid.NewV7()),
			UserID:    userID,
			CreatedAt: time.Now().UTC(),
		}

		mockUseCase.On("Create", ctx, userID, "raw-value", (*time.Time)(nil), (*string)(nil)).
			Return(expectedSecret, nil).
			Once()
		expectMetrics(mockMetrics, "secrets", "secret_create", "success")

		decorator := NewSecretUseCaseWithMetrics(mockUseCase, mockMetrics)
		result, err := decorator.Create(ctx, userID, "raw-value", nil, nil)

		assert.NoError(t, err)
		assert.Equal(t, expectedSecret, result)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := &secretsUsecaseMocks.MockSecretUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		userID := uuid.Must(uuid.NewV7())
		expectedError := errors.New("database error")

		mockUseCase.On("Create", ctx, userID, "raw-value", (*time.Time)(nil), (*string)(nil)).
			Return(nil, expectedError).
			Once()
		expectMetrics(mockMetrics, "secrets", "secret_create", "error")

		decorator := NewSecretUseCaseWithMetrics(mockUseCase, mockMetrics)
		result, err := decorator.Create(ctx, userID, "raw-value", nil, nil)

		assert.ErrorIs(t, err, expectedError)
		assert.Nil(t, result)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}

func TestSecretMetricsDecorator_ResolveByValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := &secretsUsecaseMocks.MockSecretUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		expectedSecret := &secretsDomain.Secret{
			ID:    uuid.Must(uuid.NewV7()),
			Value: "raw-value",
		}

		mockUseCase.On("ResolveByValue", ctx, "raw-value").Return(expectedSecret, nil).Once()
		expectMetrics(mockMetrics, "secrets", "secret_resolve_value", "success")

		decorator := NewSecretUseCaseWithMetrics(mockUseCase, mockMetrics)
		result, err := decorator.ResolveByValue(ctx, "raw-value")

		assert.NoError(t, err)
		assert.Equal(t, expectedSecret, result)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := &secretsUsecaseMocks.MockSecretUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("ResolveByValue", ctx, "unknown").
			Return(nil, secretsDomain.ErrSecretNotFound).
			Once()
		expectMetrics(mockMetrics, "secrets", "secret_resolve_value", "error")

		decorator := NewSecretUseCaseWithMetrics(mockUseCase, mockMetrics)
		result, err := decorator.ResolveByValue(ctx, "unknown")

		assert.ErrorIs(t, err, secretsDomain.ErrSecretNotFound)
		assert.Nil(t, result)
		mockMetrics.AssertExpectations(t)
	})
}

func TestSecretMetricsDecorator_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mockUseCase := &secretsUsecaseMocks.MockSecretUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	id := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())

	mockUseCase.On("Delete", ctx, id, userID).Return(nil).Once()
	expectMetrics(mockMetrics, "secrets", "secret_delete", "success")

	decorator := NewSecretUseCaseWithMetrics(mockUseCase, mockMetrics)
	err := decorator.Delete(ctx, id, userID)

	assert.NoError(t, err)
	mockUseCase.AssertExpectations(t)
	mockMetrics.AssertExpectations(t)
}

func TestSecretMetricsDecorator_DeleteExpired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mockUseCase := &secretsUsecaseMocks.MockSecretUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	mockUseCase.On("DeleteExpired", ctx).Return(int64(7), nil).Once()
	expectMetrics(mockMetrics, "secrets", "secret_delete_expired", "success")

	decorator := NewSecretUseCaseWithMetrics(mockUseCase, mockMetrics)
	count, err := decorator.DeleteExpired(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
	mockMetrics.AssertExpectations(t)
}
