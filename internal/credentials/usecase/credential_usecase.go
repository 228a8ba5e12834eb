package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	assetsDomain "github.com/allisson/filebucket/internal/assets/domain"
	bucketsDomain "github.com/allisson/filebucket/internal/buckets/domain"
	credentialsDomain "github.com/allisson/filebucket/internal/credentials/domain"
	credentialsService "github.com/allisson/filebucket/internal/credentials/service"
	apperrors "github.com/allisson/filebucket/internal/errors"
	"github.com/allisson/filebucket/internal/storage"
	tokenService "github.com/allisson/filebucket/internal/token/service"
)

// CredentialConfig bounds the validity windows of issued credentials.
type CredentialConfig struct {
	// ReadTokenDefaultTTL applies when the issuing secret never expires.
	ReadTokenDefaultTTL time.Duration
	// SignedURLMinTTL is the lower bound for a signed URL validity window.
	SignedURLMinTTL time.Duration
	// SignedURLMaxTTL is the upper bound for a signed URL validity window.
	SignedURLMaxTTL time.Duration
}

// credentialUseCase implements CredentialUseCase.
type credentialUseCase struct {
	secretResolver SecretResolver
	bucketGetter   BucketGetter
	assetFinder    AssetFinder
	payloadCodec   credentialsService.PayloadCodec
	tokenCodec     tokenService.Codec
	fileStore      storage.FileStore
	config         CredentialConfig
	now            func() time.Time
}

// NewCredentialUseCase creates a new CredentialUseCase.
func NewCredentialUseCase(
	secretResolver SecretResolver,
	bucketGetter BucketGetter,
	assetFinder AssetFinder,
	payloadCodec credentialsService.PayloadCodec,
	tokenCodec tokenService.Codec,
	fileStore storage.FileStore,
	config CredentialConfig,
) CredentialUseCase {
	return &credentialUseCase{
		secretResolver: secretResolver,
		bucketGetter:   bucketGetter,
		assetFinder:    assetFinder,
		payloadCodec:   payloadCodec,
		tokenCodec:     tokenCodec,
		fileStore:      fileStore,
		config:         config,
		now:            time.Now,
	}
}

// IssueReadToken issues a bucket/tag-scoped read token from a raw secret
// value. Ownership of the bucket by the secret's owner, not knowledge of the
// token, gates the bucket binding.
func (c *credentialUseCase) IssueReadToken(
	ctx context.Context,
	rawSecret string,
	bucketID uuid.UUID,
	keys []string,
) (string, error) {
	secret, err := c.secretResolver.ResolveByValue(ctx, rawSecret)
	if err != nil {
		return "", err
	}

	if _, err := c.resolveBucket(ctx, bucketID, secret.UserID); err != nil {
		return "", err
	}

	now := c.now().UTC()
	payload := &credentialsDomain.ReadTokenPayload{
		SecretID:      secret.ID,
		UserID:        secret.UserID,
		BucketID:      bucketID,
		Keys:          keys,
		Permission:    credentialsDomain.PermissionRead,
		ValidationURI: secret.ValidationURI,
		IssuedAt:      now,
		ExpireAt:      secret.ExpiresAt,
	}

	encrypted, err := c.payloadCodec.EncodeReadToken(payload)
	if err != nil {
		return "", err
	}

	// The token lives as long as the secret does; a secret without expiry
	// issues tokens with the default window.
	ttl := c.config.ReadTokenDefaultTTL
	if secret.ExpiresAt != nil {
		ttl = secret.TimeToExpiry(now)
	}

	return c.tokenCodec.Sign(encrypted, secret.Value, ttl)
}

// VerifyReadToken runs the two-phase verification. The refetched secret, not
// the embedded claim, is authoritative for current validity.
func (c *credentialUseCase) VerifyReadToken(
	ctx context.Context,
	token string,
) (*credentialsDomain.ReadTokenPayload, error) {
	untrusted, err := c.tokenCodec.DecodeUnverified(token)
	if err != nil {
		return nil, credentialsDomain.ErrInvalidToken
	}

	payload, err := c.payloadCodec.DecodeReadToken(untrusted.Payload)
	if err != nil {
		return nil, err
	}

	secret, err := c.secretResolver.ResolveByID(ctx, payload.SecretID, payload.UserID)
	if err != nil {
		return nil, err
	}

	if _, err := c.tokenCodec.Verify(token, secret.Value); err != nil {
		return nil, mapVerifyError(err)
	}

	// The bucket binding is re-checked against current ownership; a bucket
	// deleted or transferred since issuance voids the token's scope.
	if _, err := c.resolveBucket(ctx, payload.BucketID, secret.UserID); err != nil {
		return nil, err
	}

	return payload, nil
}

// IssueSignedURL issues a single-asset token from a raw secret value.
func (c *credentialUseCase) IssueSignedURL(
	ctx context.Context,
	rawSecret string,
	bucketID, assetID uuid.UUID,
	ttl time.Duration,
) (string, error) {
	secret, err := c.secretResolver.ResolveByValue(ctx, rawSecret)
	if err != nil {
		return "", err
	}

	if _, err := c.resolveBucket(ctx, bucketID, secret.UserID); err != nil {
		return "", err
	}

	if _, err := c.assetFinder.GetByIDInBucket(ctx, assetID, bucketID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", assetsDomain.ErrAssetNotFound
		}
		return "", err
	}

	payload := &credentialsDomain.SignedURLPayload{
		AssetID:  assetID,
		SecretID: secret.ID,
	}

	encrypted, err := c.payloadCodec.EncodeSignedURL(payload)
	if err != nil {
		return "", err
	}

	return c.tokenCodec.Sign(encrypted, secret.Value, c.clampSignedURLTTL(ttl))
}

// VerifySignedURL runs the two-phase verification and returns the target
// asset. The secret to bucket to asset chain establishes membership.
func (c *credentialUseCase) VerifySignedURL(
	ctx context.Context,
	token string,
) (*assetsDomain.Asset, error) {
	untrusted, err := c.tokenCodec.DecodeUnverified(token)
	if err != nil {
		return nil, credentialsDomain.ErrInvalidToken
	}

	payload, err := c.payloadCodec.DecodeSignedURL(untrusted.Payload)
	if err != nil {
		return nil, err
	}

	secret, err := c.secretResolver.ResolveByIDAnyUser(ctx, payload.SecretID)
	if err != nil {
		return nil, err
	}

	if _, err := c.tokenCodec.Verify(token, secret.Value); err != nil {
		return nil, mapVerifyError(err)
	}

	asset, err := c.assetFinder.GetByID(ctx, payload.AssetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, assetsDomain.ErrAssetNotFound
		}
		return nil, err
	}

	// The asset's bucket must still belong to the secret's owner.
	if _, err := c.resolveBucket(ctx, asset.BucketID, secret.UserID); err != nil {
		return nil, err
	}

	return asset, nil
}

// OpenAsset serves an asset by id, applying the tag-key gate to restricted
// assets.
func (c *credentialUseCase) OpenAsset(
	ctx context.Context,
	assetID uuid.UUID,
	token string,
) (*assetsDomain.Asset, io.ReadCloser, error) {
	asset, err := c.assetFinder.GetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, assetsDomain.ErrAssetNotFound
		}
		return nil, nil, err
	}

	if asset.Restricted() {
		if token == "" {
			return nil, nil, credentialsDomain.ErrInvalidToken
		}
		payload, err := c.VerifyReadToken(ctx, token)
		if err != nil {
			return nil, nil, err
		}
		if err := credentialsDomain.Authorize(asset, payload); err != nil {
			return nil, nil, err
		}
	}

	reader, err := c.fileStore.Open(ctx, asset.StoragePath)
	if err != nil {
		return nil, nil, err
	}
	return asset, reader, nil
}

// OpenSignedURL serves the asset a signed URL token grants access to.
func (c *credentialUseCase) OpenSignedURL(
	ctx context.Context,
	token string,
) (*assetsDomain.Asset, io.ReadCloser, error) {
	asset, err := c.VerifySignedURL(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	reader, err := c.fileStore.Open(ctx, asset.StoragePath)
	if err != nil {
		return nil, nil, err
	}
	return asset, reader, nil
}

func (c *credentialUseCase) resolveBucket(
	ctx context.Context,
	bucketID, userID uuid.UUID,
) (*bucketsDomain.Bucket, error) {
	bucket, err := c.bucketGetter.GetByID(ctx, bucketID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, bucketsDomain.ErrBucketNotFound
		}
		return nil, err
	}
	return bucket, nil
}

// clampSignedURLTTL bounds a caller-chosen validity window. A zero or
// negative ttl gets the minimum window rather than an error.
func (c *credentialUseCase) clampSignedURLTTL(ttl time.Duration) time.Duration {
	if ttl < c.config.SignedURLMinTTL {
		return c.config.SignedURLMinTTL
	}
	if ttl > c.config.SignedURLMaxTTL {
		return c.config.SignedURLMaxTTL
	}
	return ttl
}

// mapVerifyError collapses signature failures into ErrInvalidToken while
// letting expiry keep its own identity.
func mapVerifyError(err error) error {
	if errors.Is(err, apperrors.ErrExpired) {
		return err
	}
	return credentialsDomain.ErrInvalidToken
}
