// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	assetsDomain "github.com/allisson/filebucket/internal/assets/domain"
)

// AssetResponse represents an asset in API responses. The storage path is an
// internal detail and is not exposed.
type AssetResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Keys       []string  `json:"keys,omitempty"`
	Restricted bool      `json:"restricted"`
	BucketID   string    `json:"bucket_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// MapAssetToResponse converts a domain asset to an API response.
func MapAssetToResponse(asset *assetsDomain.Asset) AssetResponse {
	return AssetResponse{
		ID:         asset.ID.String(),
		Name:       asset.Name,
		Size:       asset.Size,
		Keys:       asset.Keys,
		Restricted: asset.Restricted(),
		BucketID:   asset.BucketID.String(),
		CreatedAt:  asset.CreatedAt,
	}
}

// ListAssetsResponse represents a paginated list of assets in API responses.
type ListAssetsResponse struct {
	Data []AssetResponse `json:"data"`
}

// MapAssetsToListResponse converts a slice of domain assets to a list response.
func MapAssetsToListResponse(assets []*assetsDomain.Asset) ListAssetsResponse {
	data := make([]AssetResponse, 0, len(assets))
	for _, asset := range assets {
		data = append(data, MapAssetToResponse(asset))
	}

	return ListAssetsResponse{
		Data: data,
	}
}
