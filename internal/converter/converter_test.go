package converter

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"
)

func testImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := uint8((x * 255) / width)
			g := uint8((y * 255) / height)
			img.Set(x, y, color.NRGBA{R: r, G: g, B: 128, A: 255})
		}
	}
	return img
}

func transparentImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 10, B: 10, A: uint8((x * 255) / width)})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func mustResolve(t *testing.T, key string) Format {
	t.Helper()
	f, err := Resolve(key)
	require.NoError(t, err)
	return f
}

func TestConvertPNGRoundTrip(t *testing.T) {
	src := testImage(64, 48)

	out, err := Convert(encodePNG(t, src), mustResolve(t, "png"))
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	require.Equal(t, src.Bounds(), decoded.Bounds())
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			wr, wg, wb, wa := src.At(x, y).RGBA()
			gr, gg, gb, ga := decoded.At(x, y).RGBA()
			if wr != gr || wg != gg || wb != gb || wa != ga {
				t.Fatalf("pixel mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestConvertIcoFixedSizes(t *testing.T) {
	for _, dim := range []int{10, 1000} {
		src := encodePNG(t, testImage(dim, dim))

		out, err := Convert(src, mustResolve(t, "ico"))
		require.NoError(t, err)

		entries, err := ico.DecodeAll(bytes.NewReader(out))
		require.NoError(t, err)
		require.Len(t, entries, 4)

		for i, want := range icoSizes {
			assert.Equal(t, want, entries[i].Bounds().Dx())
			assert.Equal(t, want, entries[i].Bounds().Dy())
		}
	}
}

func TestConvertTransparentToJPEG(t *testing.T) {
	src := encodePNG(t, transparentImage(32, 32))

	out, err := Convert(src, mustResolve(t, "jpeg"))
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 32, decoded.Bounds().Dx())
	assert.Equal(t, 32, decoded.Bounds().Dy())
}

func TestConvertTransparentToWebP(t *testing.T) {
	src := encodePNG(t, transparentImage(32, 32))

	out, err := Convert(src, mustResolve(t, "webp"))
	require.NoError(t, err)

	// webp targets must not be flattened: the fully transparent left
	// column keeps its alpha through the encode.
	decoded, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	_, _, _, a := decoded.At(0, 16).RGBA()
	assert.Less(t, a, uint32(0x8000), "alpha channel should survive webp encoding")
}

func TestConvertGIF(t *testing.T) {
	out, err := Convert(encodePNG(t, testImage(20, 20)), mustResolve(t, "gif"))
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "gif", format)
	assert.Equal(t, 20, cfg.Width)
}

func TestConvertCorruptInput(t *testing.T) {
	_, err := Convert([]byte("definitely not an image"), mustResolve(t, "png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestFlattenAlpha(t *testing.T) {
	flattened := flattenAlpha(transparentImage(16, 16))

	op, ok := flattened.(interface{ Opaque() bool })
	require.True(t, ok)
	assert.True(t, op.Opaque())

	// opaque sources pass through untouched
	opaque := testImage(16, 16)
	assert.Same(t, opaque, flattenAlpha(opaque).(*image.NRGBA))
}
