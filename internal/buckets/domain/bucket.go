// Package domain defines the core domain model for buckets: named, user-owned
// containers of assets with an optional upload policy.
package domain

import (
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Bucket represents a named container scoped to one owner.
type Bucket struct {
	// ID is the unique identifier for this bucket.
	ID uuid.UUID
	// Name is the display name chosen by the owner.
	Name string
	// UserID is the owning user.
	UserID uuid.UUID
	// Config is the optional upload policy; nil means defaults apply.
	Config *Config
	// CreatedAt is the UTC timestamp when the bucket was created.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last row write.
	UpdatedAt time.Time
}

// Config is a bucket's optional upload policy, persisted as JSON.
type Config struct {
	// AllowedFileTypes restricts uploads to the listed file extensions
	// (".png") or MIME patterns ("image/png", "image/*"). Empty means no
	// restriction.
	AllowedFileTypes []string `json:"allowed_file_types,omitempty"`
	// MaxFileSize is the upload size limit in bytes; zero means the
	// process-wide default applies.
	MaxFileSize int64 `json:"max_file_size,omitempty"`
}

// ResolvedConfig is a bucket config with every option defaulted. Handlers and
// use cases work only with resolved configs so defaulting happens once at the
// boundary instead of scattered through conditional checks.
type ResolvedConfig struct {
	// AllowedFileTypes is the allow-list; empty means any type is accepted.
	AllowedFileTypes []string
	// MaxFileSize is the effective size limit in bytes.
	MaxFileSize int64
}

// ResolveConfig returns the bucket's effective upload policy, substituting
// the process default for every absent option.
func (b *Bucket) ResolveConfig(defaultMaxFileSize int64) ResolvedConfig {
	resolved := ResolvedConfig{MaxFileSize: defaultMaxFileSize}
	if b.Config == nil {
		return resolved
	}

	resolved.AllowedFileTypes = b.Config.AllowedFileTypes
	if b.Config.MaxFileSize > 0 {
		resolved.MaxFileSize = b.Config.MaxFileSize
	}
	return resolved
}

// AllowsFile reports whether a file with the given name is accepted by the
// allow-list. Entries are either extensions (".png", matched case-insensitively
// against the filename) or MIME types, where a trailing "/*" matches the whole
// top-level type. The file's MIME type is inferred from its extension.
func (c ResolvedConfig) AllowsFile(filename string) bool {
	if len(c.AllowedFileTypes) == 0 {
		return true
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType := mime.TypeByExtension(ext)
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}

	for _, allowed := range c.AllowedFileTypes {
		if strings.HasPrefix(allowed, ".") {
			if strings.EqualFold(allowed, ext) {
				return true
			}
			continue
		}
		if matchMIME(allowed, contentType) {
			return true
		}
	}
	return false
}

// AllowsSize reports whether the given size is within the limit.
func (c ResolvedConfig) AllowsSize(size int64) bool {
	return size <= c.MaxFileSize
}

// matchMIME matches a MIME pattern against a concrete content type,
// supporting a "/*" wildcard suffix ("image/*" matches "image/png").
func matchMIME(pattern, contentType string) bool {
	if contentType == "" {
		return false
	}
	if suffix, ok := strings.CutSuffix(pattern, "/*"); ok {
		return strings.EqualFold(suffix, topLevelType(contentType))
	}
	return strings.EqualFold(pattern, contentType)
}

// topLevelType returns the part of a content type before the slash.
func topLevelType(contentType string) string {
	if i := strings.Index(contentType, "/"); i >= 0 {
		return contentType[:i]
	}
	return contentType
}
