// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"
)

// CreateSecretRequest contains the parameters for creating a secret.
// The raw value is caller-chosen; it never appears in any response.
type CreateSecretRequest struct {
	Value         string     `json:"value" binding:"required"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	ValidationURI *string    `json:"validation_uri,omitempty"`
}

// Validate checks if the create secret request is valid.
func (r *CreateSecretRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Value,
			validation.Required,
			validation.Length(8, 255),
		),
		validation.Field(&r.ValidationURI,
			validation.Length(1, 2048),
		),
	)
}
