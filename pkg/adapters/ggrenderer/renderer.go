// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"

	// Registered decoders for DecodeImage.
	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/HugoSmits86/nativewebp"
	"github.com/fogleman/gg"
	"github.com/h2non/filetype"
	"golang.org/x/image/font"

	"github.com/user/shotframe/pkg/ports"
)

// MaxCanvasPixels bounds the area of a canvas. Larger requests fail
// instead of exhausting memory.
const MaxCanvasPixels = 16384 * 16384

// MaxCanvasSide bounds each canvas dimension.
const MaxCanvasSide = 32767

var (
	// ErrInvalidSize is returned for non-positive canvas dimensions.
	ErrInvalidSize = errors.New("ggrenderer: invalid canvas size")

	// ErrCanvasTooLarge is returned when a canvas exceeds the size limits.
	ErrCanvasTooLarge = errors.New("ggrenderer: canvas too large")

	// ErrUnsupportedFormat is returned for data that is not a known image type.
	ErrUnsupportedFormat = errors.New("ggrenderer: unsupported image format")
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct {
	fonts *fontSet
}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{fonts: &fontSet{}}
}

// CreateCanvas creates a new transparent drawing canvas.
func (r *Renderer) CreateCanvas(width, height int) (ports.Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width > MaxCanvasSide || height > MaxCanvasSide || width*height > MaxCanvasPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrCanvasTooLarge, width, height)
	}
	im := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{
		dc:    gg.NewContextForRGBA(im),
		im:    im,
		fonts: r.fonts,
		faces: make(map[faceKey]font.Face),
	}, nil
}

// DecodeImage sniffs the container type and decodes the image.
func (r *Renderer) DecodeImage(data []byte) (image.Image, ports.ImageFormat, error) {
	format, err := SniffFormat(data)
	if err != nil {
		return nil, ports.FormatUnknown, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, format, fmt.Errorf("decode %s: %w", format, err)
	}
	return img, format, nil
}

// SniffFormat identifies the image container from its magic bytes.
func SniffFormat(data []byte) (ports.ImageFormat, error) {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return ports.FormatUnknown, ErrUnsupportedFormat
	}
	switch kind.MIME.Value {
	case "image/png":
		return ports.FormatPNG, nil
	case "image/jpeg":
		return ports.FormatJPEG, nil
	case "image/webp":
		return ports.FormatWebP, nil
	case "image/gif":
		return ports.FormatGIF, nil
	case "image/bmp":
		return ports.FormatBMP, nil
	}
	return ports.FormatUnknown, fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind.MIME.Value)
}

// EncodeImage encodes an image to the specified format.
// JPEG maps quality to 1..100; PNG and WebP are lossless and ignore it.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality float64) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: JPEGQuality(quality)}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	case ports.FormatWebP:
		if err := nativewebp.Encode(&buf, img, nil); err != nil {
			return nil, fmt.Errorf("encode WebP: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return buf.Bytes(), nil
}

// JPEGQuality converts a (0,1] quality factor to the 1..100 JPEG scale.
func JPEGQuality(q float64) int {
	v := int(math.Round(q * 100))
	if v < 1 {
		return 1
	}
	if v > 100 {
		return 100
	}
	return v
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)
