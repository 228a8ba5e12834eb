// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/filebucket/internal/validation"
)

// UploadAssetForm contains the non-file fields of a multipart upload.
// The file itself arrives in the "file" form field; tag keys arrive as a
// repeated "keys" field.
type UploadAssetForm struct {
	Keys []string `form:"keys"`
}

// Validate checks if the upload form is valid.
func (r *UploadAssetForm) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Keys,
			validation.Each(customValidation.TagKey),
		),
	)
}
