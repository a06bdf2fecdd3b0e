// Package filename builds safe attachment filenames for converted images.
package filename

import (
	"strings"
	"unicode"
)

const fallback = "converted"

// Sanitize produces the output filename for a converted artifact.
//
// A non-blank requested name wins: its extension is stripped, every
// character that is not a letter, digit, space, underscore, or hyphen is
// removed, and trailing whitespace is trimmed. Letters and digits are
// matched per Unicode, so names like "Café" keep their accents.
// Otherwise the base of the upload's filename is used unchanged.
// Either way an empty base falls back to "converted" and the lowercase
// target extension is appended. Sanitize never fails.
func Sanitize(requested, uploadName, ext string) string {
	var base string

	if strings.TrimSpace(requested) != "" {
		base = clean(stripExt(requested))
	} else {
		base = stripExt(uploadName)
	}

	if base == "" {
		base = fallback
	}

	return base + "." + strings.ToLower(ext)
}

// stripExt drops the text after the last dot, including the dot itself.
func stripExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}

func clean(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}
