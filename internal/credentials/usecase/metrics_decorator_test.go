package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	credentialsDomain "github.com/allisson/filebucket/internal/credentials/domain"
	credentialsUsecaseMocks "github.com/allisson/filebucket/internal/credentials/usecase/mocks"
	"github.com/allisson/filebucket/internal/metrics"
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

func expectMetrics(m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", mock.Anything, "credentials", operation, status).Return().Once()
	m.On("RecordDuration", mock.Anything, "credentials", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestNewCredentialUseCaseWithMetrics(t *testing.T) {
	t.Parallel()

	mockUseCase := &credentialsUsecaseMocks.MockCredentialUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	decorator := NewCredentialUseCaseWithMetrics(mockUseCase, mockMetrics)

	assert.NotNil(t, decorator)
	assert.Implements(t, (*CredentialUseCase)(nil), decorator)
}

func TestCredentialMetricsDecorator_IssueReadToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := &credentialsUsecaseMocks.MockCredentialUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		bucketID := uuid.Must(uuid.NewV7())
		keys := []string{"reports"}

		mockUseCase.On("IssueReadToken", ctx, "raw-secret", bucketID, keys).
			Return("signed-token", nil).
			Once()
		expectMetrics(mockMetrics, "read_token_issue", "success")

		decorator := NewCredentialUseCaseWithMetrics(mockUseCase, mockMetrics)
		token, err := decorator.IssueReadToken(ctx, "raw-secret", bucketID, keys)

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := &credentialsUsecaseMocks.MockCredentialUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		bucketID := uuid.Must(uuid.NewV7())

		mockUseCase.On("IssueReadToken", ctx, "bad-secret", bucketID, []string(nil)).
			Return("", credentialsDomain.ErrInvalidToken).
			Once()
		expectMetrics(mockMetrics, "read_token_issue", "error")

		decorator := NewCredentialUseCaseWithMetrics(mockUseCase, mockMetrics)
		token, err := decorator.IssueReadToken(ctx, "bad-secret", bucketID, nil)

		assert.ErrorIs(t, err, credentialsDomain.ErrInvalidToken)
		assert.Empty(t, token)
		mockMetrics.AssertExpectations(t)
	})
}

func TestCredentialMetricsDecorator_VerifyReadToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mockUseCase := &credentialsUsecaseMocks.MockCredentialUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	expectedPayload := &credentialsDomain.ReadTokenPayload{
		SecretID:   uuid.Must(uuid.NewV7()),
		UserID:     uuid.Must(uuid.NewV7()),
		BucketID:   uuid.Must(uuid.NewV7()),
		Permission: credentialsDomain.PermissionRead,
		IssuedAt:   time.Now().UTC(),
	}

	mockUseCase.On("VerifyReadToken", ctx, "signed-token").Return(expectedPayload, nil).Once()
	expectMetrics(mockMetrics, "read_token_verify", "success")

	decorator := NewCredentialUseCaseWithMetrics(mockUseCase, mockMetrics)
	payload, err := decorator.VerifyReadToken(ctx, "signed-token")

	assert.NoError(t, err)
	assert.Equal(t, expectedPayload, payload)
	mockMetrics.AssertExpectations(t)
}

func TestCredentialMetricsDecorator_IssueSignedURL(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mockUseCase := &credentialsUsecaseMocks.MockCredentialUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	bucketID := uuid.Must(uuid.NewV7())
	assetID := uuid.Must(uuid.NewV7())

	mockUseCase.On("IssueSignedURL", ctx, "raw-secret", bucketID, assetID, time.Hour).
		Return("signed-url-token", nil).
		Once()
	expectMetrics(mockMetrics, "signed_url_issue", "success")

	decorator := NewCredentialUseCaseWithMetrics(mockUseCase, mockMetrics)
	token, err := decorator.IssueSignedURL(ctx, "raw-secret", bucketID, assetID, time.Hour)

	assert.NoError(t, err)
	assert.Equal(t, "signed-url-token", token)
	mockMetrics.AssertExpectations(t)
}

func TestCredentialMetricsDecorator_OpenAsset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mockUseCase := &credentialsUsecaseMocks.MockCredentialUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	assetID := uuid.Must(uuid.NewV7())

	mockUseCase.On("OpenAsset", ctx, assetID, "").
		Return(nil, nil, credentialsDomain.ErrInvalidToken).
		Once()
	expectMetrics(mockMetrics, "asset_open", "error")

	decorator := NewCredentialUseCaseWithMetrics(mockUseCase, mockMetrics)
	asset, reader, err := decorator.OpenAsset(ctx, assetID, "")

	assert.ErrorIs(t, err, credentialsDomain.ErrInvalidToken)
	assert.Nil(t, asset)
	assert.Nil(t, reader)
	mockMetrics.AssertExpectations(t)
}
