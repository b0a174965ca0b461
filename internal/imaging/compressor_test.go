package imaging

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noisyImage(w, h int) image.Image {
	rng := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), 255})
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

func encodeJPEG(t *testing.T, img image.Image, q int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: q}))
	return buf.Bytes()
}

func TestCompressDownscalesAndReencodes(t *testing.T) {
	c := NewJPEGCompressor(DefaultConfig())
	in := NewFile("storefront.png", encodePNG(t, noisyImage(2400, 1000)))
	assert.Equal(t, "image/png", in.ContentType)

	out, err := c.Compress(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "storefront.jpg", out.Name)
	assert.Equal(t, "image/jpeg", out.ContentType)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 500, cfg.Height)
}

func TestCompressPortraitKeepsAspect(t *testing.T) {
	c := NewJPEGCompressor(DefaultConfig())
	out, err := c.Compress(context.Background(), NewFile("tall.png", encodePNG(t, noisyImage(300, 1500))))
	require.NoError(t, err)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, 240, cfg.Width)
	assert.Equal(t, 1200, cfg.Height)
}

func TestCompressLeavesSmallJPEGAlone(t *testing.T) {
	c := NewJPEGCompressor(DefaultConfig())
	data := encodeJPEG(t, noisyImage(64, 64), 80)
	in := NewFile("logo.jpeg", data)

	out, err := c.Compress(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCompressStopsAtQualityFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxBytes = 1024
	c := NewJPEGCompressor(cfg)

	out, err := c.Compress(context.Background(), NewFile("noise.png", encodePNG(t, noisyImage(400, 400))))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", out.ContentType)
	assert.Greater(t, out.Size(), cfg.MaxBytes, "best effort output may exceed the budget")
}

func TestCompressRejectsNonImages(t *testing.T) {
	c := NewJPEGCompressor(DefaultConfig())
	in := NewFile("notes.txt", []byte("opening hours 09:00 to 17:00"))

	out, err := c.Compress(context.Background(), in)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
	assert.Equal(t, in, out)
}

func TestCompressCorruptImage(t *testing.T) {
	c := NewJPEGCompressor(DefaultConfig())
	data := encodePNG(t, noisyImage(32, 32))
	in := NewFile("broken.png", data[:40])

	out, err := c.Compress(context.Background(), in)
	assert.Error(t, err)
	assert.Equal(t, in, out)
}

func TestCompressHonoursCancellation(t *testing.T) {
	c := NewJPEGCompressor(DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Compress(ctx, NewFile("big.png", encodePNG(t, noisyImage(1300, 100))))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJPEGName(t *testing.T) {
	assert.Equal(t, "a.jpg", jpegName("a.webp"))
	assert.Equal(t, "photo.jpg", jpegName("photo"))
	assert.Equal(t, "image.jpg", jpegName(""))
}

func transparentImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.NRGBA{B: 255, A: 255})
	}
	return img
}

func TestCompressFlattensTransparencyOnWhite(t *testing.T) {
	c := NewJPEGCompressor(DefaultConfig())

	for name, img := range map[string]image.Image{
		"small.png": transparentImage(64, 64),
		"large.png": transparentImage(2400, 64),
	} {
		t.Run(name, func(t *testing.T) {
			out, err := c.Compress(context.Background(), NewFile(name, encodePNG(t, img)))
			require.NoError(t, err)

			decoded, err := jpeg.Decode(bytes.NewReader(out.Data))
			require.NoError(t, err)
			r, g, b, _ := decoded.At(1, 1).RGBA()
			assert.Greater(t, r>>8, uint32(240))
			assert.Greater(t, g>>8, uint32(240))
			assert.Greater(t, b>>8, uint32(240))
		})
	}
}
