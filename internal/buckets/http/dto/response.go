// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	bucketsDomain "github.com/allisson/filebucket/internal/buckets/domain"
)

// BucketResponse represents a bucket in API responses.
type BucketResponse struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Config    *BucketConfigResponse `json:"config,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

// BucketConfigResponse represents a bucket's upload policy in API responses.
type BucketConfigResponse struct {
	AllowedFileTypes []string `json:"allowed_file_types,omitempty"`
	MaxFileSize      int64    `json:"max_file_size,omitempty"`
}

// MapBucketToResponse converts a domain bucket to an API response.
func MapBucketToResponse(bucket *bucketsDomain.Bucket) BucketResponse {
	response := BucketResponse{
		ID:        bucket.ID.String(),
		Name:      bucket.Name,
		CreatedAt: bucket.CreatedAt,
	}
	if bucket.Config != nil {
		response.Config = &BucketConfigResponse{
			AllowedFileTypes: bucket.Config.AllowedFileTypes,
			MaxFileSize:      bucket.Config.MaxFileSize,
		}
	}
	return response
}

// ListBucketsResponse represents a paginated list of buckets in API responses.
type ListBucketsResponse struct {
	Data []BucketResponse `json:"data"`
}

// MapBucketsToListResponse converts a slice of domain buckets to a list response.
func MapBucketsToListResponse(buckets []*bucketsDomain.Bucket) ListBucketsResponse {
	data := make([]BucketResponse, 0, len(buckets))
	for _, bucket := range buckets {
		data = append(data, MapBucketToResponse(bucket))
	}

	return ListBucketsResponse{
		Data: data,
	}
}
