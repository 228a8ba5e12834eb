package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	assetsDomain "github.com/allisson/filebucket/internal/assets/domain"
	credentialsDomain "github.com/allisson/filebucket/internal/credentials/domain"
	"github.com/allisson/filebucket/internal/metrics"
)

// credentialUseCaseWithMetrics decorates CredentialUseCase with metrics instrumentation.
type credentialUseCaseWithMetrics struct {
	next    CredentialUseCase
	metrics metrics.BusinessMetrics
}

// NewCredentialUseCaseWithMetrics wraps a CredentialUseCase with metrics recording.
func NewCredentialUseCaseWithMetrics(useCase CredentialUseCase, m metrics.BusinessMetrics) CredentialUseCase {
	return &credentialUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *credentialUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "credentials", operation, status)
	c.metrics.RecordDuration(ctx, "credentials", operation, time.Since(start), status)
}

// IssueReadToken records metrics for read token issuance.
func (c *credentialUseCaseWithMetrics) IssueReadToken(
	ctx context.Context,
	rawSecret string,
	bucketID uuid.UUID,
	keys []string,
) (string, error) {
	start := time.Now()
	token, err := c.next.IssueReadToken(ctx, rawSecret, bucketID, keys)
	c.record(ctx, "read_token_issue", start, err)
	return token, err
}

// VerifyReadToken records metrics for read token verification.
func (c *credentialUseCaseWithMetrics) VerifyReadToken(
	ctx context.Context,
	token string,
) (*credentialsDomain.ReadTokenPayload, error) {
	start := time.Now()
	payload, err := c.next.VerifyReadToken(ctx, token)
	c.record(ctx, "read_token_verify", start, err)
	return payload, err
}

// IssueSignedURL records metrics for signed URL issuance.
func (c *credentialUseCaseWithMetrics) IssueSignedURL(
	ctx context.Context,
	rawSecret string,
	bucketID, assetID uuid.UUID,
	ttl time.Duration,
) (string, error) {
	start := time.Now()
	token, err := c.next.IssueSignedURL(ctx, rawSecret, bucketID, assetID, ttl)
	c.record(ctx, "signed_url_issue", start, err)
	return token, err
}

// VerifySignedURL records metrics for signed URL verification.
func (c *credentialUseCaseWithMetrics) VerifySignedURL(
	ctx context.Context,
	token string,
) (*assetsDomain.Asset, error) {
	start := time.Now()
	asset, err := c.next.VerifySignedURL(ctx, token)
	c.record(ctx, "signed_url_verify", start, err)
	return asset, err
}

// OpenAsset records metrics for token-gated asset serving.
func (c *credentialUseCaseWithMetrics) OpenAsset(
	ctx context.Context,
	assetID uuid.UUID,
	token string,
) (*assetsDomain.Asset, io.ReadCloser, error) {
	start := time.Now()
	asset, reader, err := c.next.OpenAsset(ctx, assetID, token)
	c.record(ctx, "asset_open", start, err)
	return asset, reader, err
}

// OpenSignedURL records metrics for signed URL asset serving.
func (c *credentialUseCaseWithMetrics) OpenSignedURL(
	ctx context.Context,
	token string,
) (*assetsDomain.Asset, io.ReadCloser, error) {
	start := time.Now()
	asset, reader, err := c.next.OpenSignedURL(ctx, token)
	c.record(ctx, "signed_url_open", start, err)
	return asset, reader, err
}
