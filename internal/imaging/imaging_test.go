package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func decodeBounds(t *testing.T, r *bytes.Buffer) (int, int, string) {
	t.Helper()
	img, format, err := image.Decode(r)
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy(), format
}

func TestFitScalesDownKeepingAspect(t *testing.T) {
	p := NewProcessor(10, 85)

	out, contentType, err := p.Fit(encodePNG(t, 40, 20))
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(out)
	require.NoError(t, err)
	w, h, format := decodeBounds(t, &buf)
	assert.Equal(t, 10, w)
	assert.Equal(t, 5, h)
	assert.Equal(t, "png", format)
}

func TestFitNeverEnlarges(t *testing.T) {
	p := NewProcessor(800, 85)

	out, _, err := p.Fit(encodePNG(t, 30, 60))
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(out)
	require.NoError(t, err)
	w, h, _ := decodeBounds(t, &buf)
	assert.Equal(t, 30, w)
	assert.Equal(t, 60, h)
}

func TestFitReencodesJPEGAsJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	var src bytes.Buffer
	require.NoError(t, jpeg.Encode(&src, img, &jpeg.Options{Quality: 90}))

	p := NewProcessor(800, 85)
	_, contentType, err := p.Fit(&src)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestFitRejectsNonImages(t *testing.T) {
	p := NewProcessor(800, 85)

	_, _, err := p.Fit(strings.NewReader("not an image at all"))
	require.Error(t, err)
}
