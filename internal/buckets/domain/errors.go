package domain

import (
	"github.com/allisson/filebucket/internal/errors"
)

// Bucket-specific error definitions.
var (
	// ErrBucketNotFound indicates the bucket does not exist or is not owned
	// by the resolved identity.
	ErrBucketNotFound = errors.Wrap(errors.ErrNotFound, "bucket not found")

	// ErrBucketNotEmpty indicates the bucket still contains assets and
	// cannot be deleted.
	ErrBucketNotEmpty = errors.Wrap(errors.ErrConflict, "bucket is not empty")

	// ErrFileTypeNotAllowed indicates an upload violates the bucket's
	// allowed file types.
	ErrFileTypeNotAllowed = errors.Wrap(errors.ErrInvalidInput, "file type not allowed")

	// ErrFileTooLarge indicates an upload exceeds the bucket's size limit.
	ErrFileTooLarge = errors.Wrap(errors.ErrInvalidInput, "file too large")
)
