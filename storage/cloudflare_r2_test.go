package storage

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	tests := map[string]struct {
		base string
		key  string
		want string
	}{
		"bare host":      {base: "https://cdn.example.com", key: "avatars/1/a.png", want: "https://cdn.example.com/avatars/1/a.png"},
		"trailing slash": {base: "https://cdn.example.com/", key: "avatars/1/a.png", want: "https://cdn.example.com/avatars/1/a.png"},
		"base with path": {base: "https://cdn.example.com/media", key: "/avatars/1/a.png", want: "https://cdn.example.com/media/avatars/1/a.png"},
		"empty key":      {base: "https://cdn.example.com", key: "", want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			base, err := url.Parse(tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, publicURL(base, tt.key))
		})
	}
}

func TestNewCloudflareR2Uploader_RequiresAllFields(t *testing.T) {
	_, err := NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{
		AccountID:  "acct",
		BucketName: "bucket",
	})
	assert.Error(t, err)
}
