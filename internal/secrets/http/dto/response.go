// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	secretsDomain "github.com/allisson/filebucket/internal/secrets/domain"
)

// SecretResponse represents a secret in API responses.
// SECURITY: Only metadata is exposed; the raw value and its ciphertext stay
// server-side.
type SecretResponse struct {
	ID            string     `json:"id"`
	ValidationURI *string    `json:"validation_uri,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// MapSecretToResponse converts a domain secret to an API response.
func MapSecretToResponse(secret *secretsDomain.Secret) SecretResponse {
	return SecretResponse{
		ID:            secret.ID.String(),
		ValidationURI: secret.ValidationURI,
		ExpiresAt:     secret.ExpiresAt,
		CreatedAt:     secret.CreatedAt,
	}
}

// ListSecretsResponse represents a paginated list of secrets in API responses.
type ListSecretsResponse struct {
	Data []SecretResponse `json:"data"`
}

// MapSecretsToListResponse converts a slice of domain secrets to a list response.
func MapSecretsToListResponse(secrets []*secretsDomain.Secret) ListSecretsResponse {
	data := make([]SecretResponse, 0, len(secrets))
	for _, secret := range secrets {
		data = append(data, MapSecretToResponse(secret))
	}

	return ListSecretsResponse{
		Data: data,
	}
}

// DeleteExpiredResponse reports how many expired secrets were removed.
type DeleteExpiredResponse struct {
	Deleted int64 `json:"deleted"`
}
