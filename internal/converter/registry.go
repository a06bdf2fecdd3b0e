package converter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned by Resolve for any target format
// outside the supported set.
var ErrUnsupportedFormat = errors.New("unsupported target format")

// Format describes one supported output format.
type Format struct {
	Key       string // lowercase user-facing key, e.g. "webp"
	MediaType string // response content type, e.g. "image/webp"
}

// The supported set is closed. Adding a format is a code change, so near
// misses like "jpg" are rejected rather than aliased.
var formats = map[string]Format{
	"webp": {Key: "webp", MediaType: "image/webp"},
	"jpeg": {Key: "jpeg", MediaType: "image/jpeg"},
	"png":  {Key: "png", MediaType: "image/png"},
	"ico":  {Key: "ico", MediaType: "image/ico"},
	"gif":  {Key: "gif", MediaType: "image/gif"},
}

// Resolve maps a user-supplied target format to a Format entry.
// Lookup is case-insensitive.
func Resolve(key string) (Format, error) {
	f, ok := formats[strings.ToLower(key)]
	if !ok {
		return Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, key)
	}
	return f, nil
}
