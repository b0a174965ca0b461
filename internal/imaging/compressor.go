package imaging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var ErrUnsupportedImage = errors.New("imaging: unsupported image type")

var supportedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// File is a local image selected for upload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f File) Size() int { return len(f.Data) }

// Supported reports whether the sniffed type is an image the compressor reads.
func (f File) Supported() bool {
	return mimetype.EqualsAny(f.ContentType, supportedTypes...)
}

// NewFile sniffs the content type of data.
func NewFile(name string, data []byte) File {
	return File{Name: name, ContentType: mimetype.Detect(data).String(), Data: data}
}

type Compressor interface {
	Compress(ctx context.Context, f File) (File, error)
}

// JPEGCompressor downsizes and re-encodes images as JPEG until they fit the
// byte budget or the quality floor is reached.
type JPEGCompressor struct {
	cfg Config
}

func NewJPEGCompressor(cfg Config) *JPEGCompressor {
	return &JPEGCompressor{cfg: cfg}
}

func (c *JPEGCompressor) Compress(ctx context.Context, f File) (File, error) {
	mt := mimetype.Detect(f.Data)
	if !mimetype.EqualsAny(mt.String(), supportedTypes...) {
		return f, fmt.Errorf("%w: %s", ErrUnsupportedImage, mt.String())
	}

	src, _, err := image.Decode(bytes.NewReader(f.Data))
	if err != nil {
		return f, fmt.Errorf("imaging: decode %s: %w", f.Name, err)
	}

	bounds := src.Bounds()
	fits := bounds.Dx() <= c.cfg.MaxDimension && bounds.Dy() <= c.cfg.MaxDimension
	if fits && mt.Is("image/jpeg") && len(f.Data) <= c.cfg.MaxBytes {
		return f, nil
	}

	img := src
	switch {
	case !fits:
		img = scale(src, c.cfg.MaxDimension)
	case !opaque(src):
		img = onWhite(src, bounds.Dx(), bounds.Dy())
	}

	var best []byte
	for q := c.cfg.InitialQuality; q >= c.cfg.MinQuality; q -= c.cfg.QualityStep {
		if err := ctx.Err(); err != nil {
			return f, err
		}
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: q}); err != nil {
			return f, fmt.Errorf("imaging: encode %s: %w", f.Name, err)
		}
		best = buf.Bytes()
		if len(best) <= c.cfg.MaxBytes {
			break
		}
	}
	if best == nil {
		return f, fmt.Errorf("imaging: no quality step in range for %s", f.Name)
	}

	return File{Name: jpegName(f.Name), ContentType: "image/jpeg", Data: best}, nil
}

func scale(src image.Image, maxDim int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w >= h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return onWhite(src, w, h)
}

// onWhite resamples src into a w x h white canvas. JPEG has no alpha, so
// transparent pixels must become white rather than black.
func onWhite(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func opaque(img image.Image) bool {
	o, ok := img.(interface{ Opaque() bool })
	return ok && o.Opaque()
}

func jpegName(name string) string {
	if name == "" {
		return "image.jpg"
	}
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + ".jpg"
}
