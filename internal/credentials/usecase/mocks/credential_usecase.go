package mocks

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	assetsDomain "github.com/allisson/filebucket/internal/assets/domain"
	credentialsDomain "github.com/allisson/filebucket/internal/credentials/domain"
)

// MockCredentialUseCase is a mock implementation of CredentialUseCase for testing.
type MockCredentialUseCase struct {
	mock.Mock
}

// IssueReadToken mocks the IssueReadToken method of CredentialUseCase.
func (m *MockCredentialUseCase) IssueReadToken(
	ctx context.Context,
	rawSecret string,
	bucketID uuid.UUID,
	keys []string,
) (string, error) {
	args := m.Called(ctx, rawSecret, bucketID, keys)
	return args.String(0), args.Error(1)
}

// VerifyReadToken mocks the VerifyReadToken method of CredentialUseCase.
func (m *MockCredentialUseCase) VerifyReadToken(
	ctx context.Context,
	token string,
) (*credentialsDomain.ReadTokenPayload, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credentialsDomain.ReadTokenPayload), args.Error(1)
}

// IssueSignedURL mocks the IssueSignedURL method of CredentialUseCase.
func (m *MockCredentialUseCase) IssueSignedURL(
	ctx context.Context,
	rawSecret string,
	bucketID, assetID uuid.UUID,
	ttl time.Duration,
) (string, error) {
	args := m.Called(ctx, rawSecret, bucketID, assetID, ttl)
	return args.String(0), args.Error(1)
}

// VerifySignedURL mocks the VerifySignedURL method of CredentialUseCase.
func (m *MockCredentialUseCase) VerifySignedURL(
	ctx context.Context,
	token string,
) (*assetsDomain.Asset, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assetsDomain.Asset), args.Error(1)
}

// OpenAsset mocks the OpenAsset method of CredentialUseCase.
func (m *MockCredentialUseCase) OpenAsset(
	ctx context.Context,
	assetID uuid.UUID,
	token string,
) (*assetsDomain.Asset, io.ReadCloser, error) {
	args := m.Called(ctx, assetID, token)
	var asset *assetsDomain.Asset
	if args.Get(0) != nil {
		asset = args.Get(0).(*assetsDomain.Asset)
	}
	var reader io.ReadCloser
	if args.Get(1) != nil {
		reader = args.Get(1).(io.ReadCloser)
	}
	return asset, reader, args.Error(2)
}

// OpenSignedURL mocks the OpenSignedURL method of CredentialUseCase.
func (m *MockCredentialUseCase) OpenSignedURL(
	ctx context.Context,
	token string,
) (*assetsDomain.Asset, io.ReadCloser, error) {
	args := m.Called(ctx, token)
	var asset *assetsDomain.Asset
	if args.Get(0) != nil {
		asset = args.Get(0).(*assetsDomain.Asset)
	}
	var reader io.ReadCloser
	if args.Get(1) != nil {
		reader = args.Get(1).(io.ReadCloser)
	}
	return asset, reader, args.Error(2)
}
