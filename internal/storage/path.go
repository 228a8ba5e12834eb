// Package storage provides the deterministic storage-path scheme and the
// durable file store used for asset content.
package storage

import (
	"path"
	"strings"
)

// keySeparator joins tag keys and the asset id into a single filename.
const keySeparator = "~"

// BuildPath returns the relative storage path for an asset:
// {userID}/{bucketID}/{tagKey1}~{tagKey2}~...~{assetID}{extension}.
// The same inputs always produce the same path.
func BuildPath(userID, bucketID string, tagKeys []string, assetID, extension string) string {
	parts := make([]string, 0, len(tagKeys)+1)
	parts = append(parts, tagKeys...)
	parts = append(parts, assetID)
	return path.Join(userID, bucketID, strings.Join(parts, keySeparator)+extension)
}
