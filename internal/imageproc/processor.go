// Package imageproc decodes uploaded rasters, scales them to a fixed width and
// encodes the result as lossy WebP.
package imageproc

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"math"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"webpconv/internal/domain"
)

// Processor holds the fixed output parameters for derivatives.
type Processor struct {
	Width   int
	Quality float32
}

// NewProcessor returns a Processor producing TargetWidth-wide WebP at WebPQuality.
func NewProcessor() *Processor {
	return &Processor{
		Width:   domain.TargetWidth,
		Quality: domain.WebPQuality,
	}
}

// Decode parses any registered raster format: JPEG and PNG here, plus GIF,
// BMP, TIFF and WebP registered by the imaging and webp packages. The declared
// content type is gated by the caller; the returned string is the format
// detected from the bytes.
func (p *Processor) Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, "", fmt.Errorf("%w: empty image %dx%d", domain.ErrDecode, b.Dx(), b.Dy())
	}
	return img, format, nil
}

// TargetSize returns the output dimensions for a w x h source. Width is always
// p.Width, so narrower sources are upscaled; height is rounded to the nearest
// pixel and never below 1.
func (p *Processor) TargetSize(w, h int) domain.Dimensions {
	height := int(math.Round(float64(p.Width) * float64(h) / float64(w)))
	if height < 1 {
		height = 1
	}
	return domain.Dimensions{Width: p.Width, Height: height}
}

// Resize scales img to TargetSize using Lanczos resampling.
func (p *Processor) Resize(img image.Image) image.Image {
	b := img.Bounds()
	size := p.TargetSize(b.Dx(), b.Dy())
	return imaging.Resize(img, size.Width, size.Height, imaging.Lanczos)
}

// EncodeWebP encodes img as lossy WebP at p.Quality.
func (p *Processor) EncodeWebP(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{
		Lossless: false,
		Quality:  p.Quality,
	}); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEncode, err)
	}
	return buf.Bytes(), nil
}
