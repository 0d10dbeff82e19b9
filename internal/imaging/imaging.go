package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

const (
	defaultMaxDim  = 800
	defaultQuality = 85
)

// Processor normalizes uploaded images before they hit storage: decode,
// downscale so neither side exceeds maxDim, re-encode.
type Processor struct {
	maxDim  int
	quality int // JPEG quality, 1-100
}

func NewProcessor(maxDim, quality int) *Processor {
	if maxDim <= 0 {
		maxDim = defaultMaxDim
	}
	if quality <= 0 || quality > 100 {
		quality = defaultQuality
	}
	return &Processor{maxDim: maxDim, quality: quality}
}

// Fit decodes r, scales the image down to fit the processor's limit
// (never up), and re-encodes it. PNG stays PNG, everything else becomes
// JPEG. Returns the encoded bytes and their content type.
func (p *Processor) Fit(r io.Reader) (io.Reader, string, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	img := p.scaleDown(src)

	var buf bytes.Buffer
	if format == "png" {
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("encode png: %w", err)
		}
		return &buf, "image/png", nil
	}
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, "", fmt.Errorf("encode jpeg: %w", err)
	}
	return &buf, "image/jpeg", nil
}

// scaleDown keeps aspect ratio and never enlarges.
func (p *Processor) scaleDown(src image.Image) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= p.maxDim && h <= p.maxDim {
		return src
	}

	nw, nh := p.maxDim, p.maxDim
	if w > h {
		nh = h * p.maxDim / w
	} else {
		nw = w * p.maxDim / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
