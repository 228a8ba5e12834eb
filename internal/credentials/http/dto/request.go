// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/filebucket/internal/validation"
)

// IssueReadTokenRequest contains the parameters for issuing a bucket-scoped
// read token. The secret is the caller's raw secret value, not its id.
type IssueReadTokenRequest struct {
	Secret   string   `json:"secret" binding:"required"`
	BucketID string   `json:"bucket_id" binding:"required"`
	Keys     []string `json:"keys,omitempty"`
}

// Validate checks if the issue read token request is valid.
func (r *IssueReadTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Secret,
			validation.Required,
		),
		validation.Field(&r.BucketID,
			validation.Required,
			customValidation.UUID,
		),
		validation.Field(&r.Keys,
			validation.Each(customValidation.TagKey),
		),
	)
}

// IssueSignedURLRequest contains the parameters for issuing a single-asset
// signed URL token.
type IssueSignedURLRequest struct {
	Secret     string `json:"secret" binding:"required"`
	BucketID   string `json:"bucket_id" binding:"required"`
	AssetID    string `json:"asset_id" binding:"required"`
	TTLSeconds int64  `json:"ttl_seconds,omitempty"`
}

// Validate checks if the issue signed URL request is valid.
func (r *IssueSignedURLRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Secret,
			validation.Required,
		),
		validation.Field(&r.BucketID,
			validation.Required,
			customValidation.UUID,
		),
		validation.Field(&r.AssetID,
			validation.Required,
			customValidation.UUID,
		),
		validation.Field(&r.TTLSeconds,
			validation.Min(int64(0)),
		),
	)
}
