// Package domain defines the credential payload model: the two transient
// payload shapes carried inside signed tokens, and the tag-key access gate
// applied when serving restricted assets. Payloads are ephemeral value
// objects; their only storage is the signed, encrypted token string handed
// to the caller.
package domain

import (
	"time"

	"github.com/google/uuid"

	assetsDomain "github.com/allisson/filebucket/internal/assets/domain"
)

// Permission names the access level a read token grants.
type Permission string

// PermissionRead is the only permission currently issued.
const PermissionRead Permission = "read"

// ReadTokenPayload is the decrypted claim of a read token: a bucket/tag-scoped
// grant issued from one secret. A payload obtained via decode-unverified is
// untrusted until the token's signature has been checked against the
// refetched secret's value.
type ReadTokenPayload struct {
	SecretID      uuid.UUID  `json:"secret_id"`
	UserID        uuid.UUID  `json:"user_id"`
	BucketID      uuid.UUID  `json:"bucket_id"`
	Keys          []string   `json:"keys,omitempty"`
	Permission    Permission `json:"permission"`
	ValidationURI *string    `json:"validation_uri,omitempty"`
	IssuedAt      time.Time  `json:"issued_at"`
	ExpireAt      *time.Time `json:"expire_at,omitempty"`
}

// Validate checks the payload's required field set after decryption.
func (p *ReadTokenPayload) Validate() error {
	if p.SecretID == uuid.Nil || p.UserID == uuid.Nil || p.BucketID == uuid.Nil {
		return ErrMalformedPayload
	}
	if p.Permission != PermissionRead {
		return ErrMalformedPayload
	}
	if p.IssuedAt.IsZero() {
		return ErrMalformedPayload
	}
	return nil
}

// SignedURLPayload is the decrypted claim of a signed URL token: access to
// exactly one asset, issued from one secret. Bucket membership is established
// at verification time through the secret, never trusted from the claim.
type SignedURLPayload struct {
	AssetID  uuid.UUID `json:"asset_id"`
	SecretID uuid.UUID `json:"secret_id"`
}

// Validate checks the payload's required field set after decryption.
func (p *SignedURLPayload) Validate() error {
	if p.AssetID == uuid.Nil || p.SecretID == uuid.Nil {
		return ErrMalformedPayload
	}
	return nil
}

// Authorize decides whether a verified read token grants access to the asset.
// Unrestricted assets pass without a token check. Restricted assets require
// the token's bucket to match and the two key lists to intersect.
func Authorize(asset *assetsDomain.Asset, payload *ReadTokenPayload) error {
	if !asset.Restricted() {
		return nil
	}
	if payload.BucketID != asset.BucketID {
		return ErrWrongBucket
	}
	if !assetsDomain.KeysOverlap(asset.Keys, payload.Keys) {
		return ErrNoKeyOverlap
	}
	return nil
}
