// Package usecase implements the two credential protocols: bucket/tag-scoped
// read tokens and single-asset signed URLs. Both share the same construction
// (encrypt the payload under the master key, sign the token with the issuing
// secret's raw value) and the same two-phase verification (decode unverified
// to learn the secret, refetch it, then verify the signature with the
// refetched value).
package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	assetsDomain "github.com/allisson/filebucket/internal/assets/domain"
	bucketsDomain "github.com/allisson/filebucket/internal/buckets/domain"
	credentialsDomain "github.com/allisson/filebucket/internal/credentials/domain"
	secretsDomain "github.com/allisson/filebucket/internal/secrets/domain"
)

// SecretResolver resolves secrets with expiry enforced and the decrypted
// value populated.
type SecretResolver interface {
	// ResolveByValue resolves a caller-presented raw secret value.
	ResolveByValue(ctx context.Context, rawValue string) (*secretsDomain.Secret, error)

	// ResolveByID resolves a secret by id and owner.
	ResolveByID(ctx context.Context, id, userID uuid.UUID) (*secretsDomain.Secret, error)

	// ResolveByIDAnyUser resolves a secret by id alone.
	ResolveByIDAnyUser(ctx context.Context, id uuid.UUID) (*secretsDomain.Secret, error)
}

// BucketGetter resolves a bucket for its owner, used to confirm that the
// issuing secret's owner also owns the bucket a credential is scoped to.
type BucketGetter interface {
	GetByID(ctx context.Context, id, userID uuid.UUID) (*bucketsDomain.Bucket, error)
}

// AssetFinder resolves assets for credential issuance and serving.
type AssetFinder interface {
	// GetByID retrieves an asset by id regardless of bucket.
	GetByID(ctx context.Context, id uuid.UUID) (*assetsDomain.Asset, error)

	// GetByIDInBucket retrieves an asset by id, scoped to the owning bucket.
	GetByIDInBucket(ctx context.Context, id, bucketID uuid.UUID) (*assetsDomain.Asset, error)
}

// CredentialUseCase defines issuance, verification, and token-gated serving.
type CredentialUseCase interface {
	// IssueReadToken issues a bucket/tag-scoped read token from a raw
	// secret value. The token expires with the secret, or after a default
	// window when the secret never expires.
	IssueReadToken(ctx context.Context, rawSecret string, bucketID uuid.UUID, keys []string) (string, error)

	// VerifyReadToken runs the two-phase verification and returns the
	// verified payload. Deleting or expiring the issuing secret makes every
	// token it issued fail here.
	VerifyReadToken(ctx context.Context, token string) (*credentialsDomain.ReadTokenPayload, error)

	// IssueSignedURL issues a single-asset token from a raw secret value.
	// The ttl is clamped to the configured bounds and is independent of the
	// secret's own expiry.
	IssueSignedURL(
		ctx context.Context,
		rawSecret string,
		bucketID, assetID uuid.UUID,
		ttl time.Duration,
	) (string, error)

	// VerifySignedURL runs the two-phase verification and returns the
	// target asset. Bucket membership is re-established through the
	// secret's owner, never trusted from the claim.
	VerifySignedURL(ctx context.Context, token string) (*assetsDomain.Asset, error)

	// OpenAsset serves an asset by id. Unrestricted assets need no token;
	// restricted assets require a verified read token that passes the
	// tag-key gate. The caller closes the reader.
	OpenAsset(ctx context.Context, assetID uuid.UUID, token string) (*assetsDomain.Asset, io.ReadCloser, error)

	// OpenSignedURL serves the asset a signed URL token grants access to.
	// The caller closes the reader.
	OpenSignedURL(ctx context.Context, token string) (*assetsDomain.Asset, io.ReadCloser, error)
}
