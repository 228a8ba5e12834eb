package domain

import (
	"github.com/allisson/filebucket/internal/errors"
)

// Asset-specific error definitions.
var (
	// ErrAssetNotFound indicates the asset does not exist in the resolved
	// bucket.
	ErrAssetNotFound = errors.Wrap(errors.ErrNotFound, "asset not found")
)
