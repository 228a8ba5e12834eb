package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPath(t *testing.T) {
	tests := []struct {
		name      string
		userID    string
		bucketID  string
		tagKeys   []string
		assetID   string
		extension string
		expected  string
	}{
		{
			name:      "single tag key",
			userID:    "u1",
			bucketID:  "bkt1",
			tagKeys:   []string{"tag1"},
			assetID:   "ast1",
			extension: ".png",
			expected:  "u1/bkt1/tag1~ast1.png",
		},
		{
			name:      "multiple tag keys keep order",
			userID:    "u1",
			bucketID:  "bkt1",
			tagKeys:   []string{"tag1", "tag2"},
			assetID:   "ast1",
			extension: ".pdf",
			expected:  "u1/bkt1/tag1~tag2~ast1.pdf",
		},
		{
			name:      "no tag keys",
			userID:    "u1",
			bucketID:  "bkt1",
			tagKeys:   nil,
			assetID:   "ast1",
			extension: ".png",
			expected:  "u1/bkt1/ast1.png",
		},
		{
			name:     "no extension",
			userID:   "u1",
			bucketID: "bkt1",
			tagKeys:  []string{"tag1"},
			assetID:  "ast1",
			expected: "u1/bkt1/tag1~ast1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPath(tt.userID, tt.bucketID, tt.tagKeys, tt.assetID, tt.extension)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBuildPathDeterminism(t *testing.T) {
	first := BuildPath("u1", "bkt1", []string{"a", "b"}, "ast1", ".png")
	second := BuildPath("u1", "bkt1", []string{"a", "b"}, "ast1", ".png")
	assert.Equal(t, first, second)
}
