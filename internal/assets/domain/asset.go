// Package domain contains the asset entity and its business rules.
package domain

import (
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// KeySeparator joins tag keys into the persisted form and into storage
// filenames.
const KeySeparator = "~"

// Asset represents one stored file inside a bucket. StoragePath is the
// relative location of the file bytes under the storage root. Keys is the
// ordered list of access-control tag keys; a nil or empty list means the
// asset is unrestricted to anyone who knows its id.
type Asset struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	StoragePath string    `json:"storage_path"`
	Keys        []string  `json:"keys,omitempty"`
	BucketID    uuid.UUID `json:"bucket_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Extension returns the file extension of the asset's display name,
// including the leading dot, or an empty string when the name has none.
func (a *Asset) Extension() string {
	return path.Ext(a.Name)
}

// Restricted reports whether the asset requires a read token carrying at
// least one of its tag keys.
func (a *Asset) Restricted() bool {
	return len(a.Keys) > 0
}

// JoinKeys serializes tag keys into the tilde-joined persisted form.
// A nil or empty list serializes to an empty string.
func JoinKeys(keys []string) string {
	return strings.Join(keys, KeySeparator)
}

// SplitKeys parses the tilde-joined persisted form back into a key list.
// An empty string parses to nil.
func SplitKeys(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, KeySeparator)
}

// KeysOverlap reports whether the two key lists share at least one element.
// Comparison is exact and case-sensitive.
func KeysOverlap(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
