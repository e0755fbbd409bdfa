package pipeline

import (
	"encoding/base64"
	"errors"
	"image"
	"strings"
	"math/rand/v2"

	"github.com/user/shotframe/pkg/ports"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int
	Height int
}

// Rectangle represents a rectangular area.
type Rectangle struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Rect converts the rectangle to user-space coordinates.
func (r Rectangle) Rect() ports.Rect {
	return ports.Rect{X: float64(r.X), Y: float64(r.Y), W: float64(r.Width), H: float64(r.Height)}
}

// Contains reports whether o lies entirely inside r.
func (r Rectangle) Contains(o Rectangle) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.Width <= r.X+r.Width &&
		o.Y+o.Height <= r.Y+r.Height
}

// =============================================================================
// Layout Stage Types
// =============================================================================

// LayoutInput contains parameters for layout calculation.
type LayoutInput struct {
	ImageWidth  int
	ImageHeight int
	Padding     int
	Mockup      MockupType
}

// LayoutResult contains the canvas size and the placement of the source image.
type LayoutResult struct {
	// Canvas is the size of the output surface.
	Canvas Dimension

	// Image is where the source image is drawn, at natural size.
	Image Rectangle

	// Frame is the area covered by the device frame, including chrome
	// strips and bezels. It is zero when no mockup is selected.
	Frame Rectangle
}

// =============================================================================
// Render Types
// =============================================================================

// ReturnKind selects the representation of a render result.
type ReturnKind int

const (
	// KindBuffer returns raw encoded bytes.
	KindBuffer ReturnKind = iota
	// KindDataURL returns an embedded data URL.
	KindDataURL
)

// RenderInput is the complete input of one render call.
type RenderInput struct {
	Source   []byte
	Settings Settings
	Kind     ReturnKind

	// Rand drives mesh noise. A nil Rand uses a time-seeded source.
	Rand *rand.Rand
}

// Scene is the state threaded through the drawing stages of one render.
// The canvas is owned by the render call that created it.
type Scene struct {
	Canvas   ports.Canvas
	Source   image.Image
	Layout   LayoutResult
	Settings Settings
	Rand     *rand.Rand
}

// EncodeInput is the input of the encode stage.
type EncodeInput struct {
	Image   image.Image
	Format  Format
	Quality float64
	Kind    ReturnKind
}

// Output is an encoded image.
type Output struct {
	Kind   ReturnKind
	Format Format
	MIME   string
	Data   []byte
	Width  int
	Height int
}

// DataURL returns the output as an embedded data URL.
func (o Output) DataURL() string {
	return "data:" + o.MIME + ";base64," + base64.StdEncoding.EncodeToString(o.Data)
}

// Value returns the representation selected by Kind: a string for
// KindDataURL and a []byte for KindBuffer.
func (o Output) Value() any {
	if o.Kind == KindDataURL {
		return o.DataURL()
	}
	return o.Data
}

// ErrDataURL is returned for strings that are not base64 data URLs.
var ErrDataURL = errors.New("pipeline: malformed data URL")

// DecodeDataURL returns the payload and MIME type of a base64 data URL.
func DecodeDataURL(s string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(s), "data:")
	if !ok {
		return nil, "", ErrDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", ErrDataURL
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, "", ErrDataURL
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", errors.Join(ErrDataURL, err)
	}
	return data, mime, nil
}
