package converter

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/sergeymakinen/go-ico"
)

var (
	// ErrDecode reports a corrupt or unrecognized uploaded image.
	ErrDecode = errors.New("error decoding image")
	// ErrEncode reports a failure producing the target format.
	ErrEncode = errors.New("error encoding image")
)

// quality applies to the codecs exposing a 0-100 quality scalar (jpeg, webp).
// png and gif use their codec defaults.
const quality = 85

// icoSizes are the embedded resolutions of every produced icon,
// independent of source dimensions.
var icoSizes = []int{16, 32, 48, 64}

// Convert decodes data and re-encodes it into the resolved target format.
func Convert(data []byte, f Format) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	// jpeg has no alpha channel; flatten transparent sources before
	// encoding. Other targets keep the decoded image untouched even when
	// they cannot carry alpha themselves.
	if f.Key == "jpeg" {
		img = flattenAlpha(img)
	}

	var buf bytes.Buffer
	switch f.Key {
	case "webp":
		err = webp.Encode(&buf, img, &webp.Options{Quality: quality})
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
	case "png":
		err = png.Encode(&buf, img)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	case "ico":
		err = encodeIcon(&buf, img)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f.Key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return buf.Bytes(), nil
}

// encodeIcon downscales the source to each fixed resolution and writes a
// single ICO container holding all of them.
func encodeIcon(buf *bytes.Buffer, img image.Image) error {
	entries := make([]image.Image, 0, len(icoSizes))
	for _, size := range icoSizes {
		entries = append(entries, imaging.Resize(img, size, size, imaging.Lanczos))
	}
	return ico.EncodeAll(buf, entries)
}

// flattenAlpha returns an opaque RGB copy of img. Already opaque images
// are returned as is.
func flattenAlpha(img image.Image) image.Image {
	if op, ok := img.(interface{ Opaque() bool }); ok && op.Opaque() {
		return img
	}

	rgb := image.NewRGBA(img.Bounds())
	draw.Draw(rgb, rgb.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(rgb, rgb.Bounds(), img, img.Bounds().Min, draw.Over)
	return rgb
}
