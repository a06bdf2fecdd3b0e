package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		key       string
		mediaType string
	}{
		{key: "webp", mediaType: "image/webp"},
		{key: "jpeg", mediaType: "image/jpeg"},
		{key: "png", mediaType: "image/png"},
		{key: "ico", mediaType: "image/ico"},
		{key: "gif", mediaType: "image/gif"},
		{key: "WEBP", mediaType: "image/webp"},
		{key: "Png", mediaType: "image/png"},
		{key: "JPEG", mediaType: "image/jpeg"},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			f, err := Resolve(tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.mediaType, f.MediaType)
		})
	}
}

func TestResolveUnsupported(t *testing.T) {
	keys := []string{"jpg", "JPG", "bmp", "tiff", "avif", "svg", "", "png "}

	for _, key := range keys {
		t.Run("key "+key, func(t *testing.T) {
			_, err := Resolve(key)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedFormat)
			if key != "" {
				assert.Contains(t, err.Error(), key)
			}
		})
	}
}
