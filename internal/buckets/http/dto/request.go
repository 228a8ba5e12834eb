// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	bucketsDomain "github.com/allisson/filebucket/internal/buckets/domain"
	customValidation "github.com/allisson/filebucket/internal/validation"
)

// CreateBucketRequest contains the parameters for creating a bucket.
type CreateBucketRequest struct {
	Name   string               `json:"name" binding:"required"`
	Config *BucketConfigRequest `json:"config,omitempty"`
}

// BucketConfigRequest is the optional upload policy for a new bucket.
type BucketConfigRequest struct {
	AllowedFileTypes []string `json:"allowed_file_types,omitempty"`
	MaxFileSize      int64    `json:"max_file_size,omitempty"`
}

// Validate checks if the create bucket request is valid.
func (r *CreateBucketRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, 255),
		),
		validation.Field(&r.Config),
	)
}

// Validate checks if the bucket config is valid.
func (r *BucketConfigRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.AllowedFileTypes,
			validation.Each(customValidation.FileType),
		),
		validation.Field(&r.MaxFileSize,
			validation.Min(int64(0)),
		),
	)
}

// ToDomain converts the config request to the domain config, or nil when absent.
func (r *BucketConfigRequest) ToDomain() *bucketsDomain.Config {
	if r == nil {
		return nil
	}
	return &bucketsDomain.Config{
		AllowedFileTypes: r.AllowedFileTypes,
		MaxFileSize:      r.MaxFileSize,
	}
}
