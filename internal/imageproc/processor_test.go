package imageproc_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webpconv/internal/domain"
	"webpconv/internal/imageproc"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, gradient(w, h)))
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, gradient(w, h), &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func TestNewProcessor_Defaults(t *testing.T) {
	p := imageproc.NewProcessor()
	assert.Equal(t, 800, p.Width)
	assert.Equal(t, float32(85), p.Quality)
}

func TestTargetSize(t *testing.T) {
	p := imageproc.NewProcessor()

	tests := []struct {
		name string
		w, h int
		want domain.Dimensions
	}{
		{"downscale 4:3", 1600, 1200, domain.Dimensions{Width: 800, Height: 600}},
		{"upscale 4:3", 400, 300, domain.Dimensions{Width: 800, Height: 600}},
		{"same width", 800, 533, domain.Dimensions{Width: 800, Height: 533}},
		{"rounds up", 3, 2, domain.Dimensions{Width: 800, Height: 533}},
		{"rounds half up", 1600, 1001, domain.Dimensions{Width: 800, Height: 501}},
		{"portrait", 1000, 3000, domain.Dimensions{Width: 800, Height: 2400}},
		{"extreme panorama", 100000, 10, domain.Dimensions{Width: 800, Height: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.TargetSize(tt.w, tt.h))
		})
	}
}

func TestDecode_PNGAndJPEG(t *testing.T) {
	p := imageproc.NewProcessor()

	img, format, err := p.Decode(pngBytes(t, 40, 30))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 40, img.Bounds().Dx())

	img, format, err = p.Decode(jpegBytes(t, 40, 30))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 30, img.Bounds().Dy())
}

func TestDecode_Corrupt(t *testing.T) {
	p := imageproc.NewProcessor()

	_, _, err := p.Decode([]byte("definitely not an image"))
	assert.ErrorIs(t, err, domain.ErrDecode)

	truncated := pngBytes(t, 40, 30)[:20]
	_, _, err = p.Decode(truncated)
	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestResize_Downscale(t *testing.T) {
	p := imageproc.NewProcessor()

	out := p.Resize(gradient(1600, 1200))

	assert.Equal(t, 800, out.Bounds().Dx())
	assert.Equal(t, 600, out.Bounds().Dy())
}

func TestResize_UpscalesSmallImages(t *testing.T) {
	p := imageproc.NewProcessor()

	out := p.Resize(gradient(400, 300))

	assert.Equal(t, 800, out.Bounds().Dx())
	assert.Equal(t, 600, out.Bounds().Dy())
}

func TestEncodeWebP_Deterministic(t *testing.T) {
	p := imageproc.NewProcessor()
	img := p.Resize(gradient(200, 150))

	first, err := p.EncodeWebP(img)
	require.NoError(t, err)
	second, err := p.EncodeWebP(img)
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)

	cfg, err := webp.DecodeConfig(bytes.NewReader(first))
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
}
