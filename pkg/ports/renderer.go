package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts raster surface allocation and image codecs.
type Renderer interface {
	// CreateCanvas allocates a fresh transparent drawing surface.
	// It fails when the requested dimensions cannot be backed by memory.
	CreateCanvas(width, height int) (Canvas, error)

	// DecodeImage decodes image data into an image.Image.
	// The format is sniffed from the data itself.
	DecodeImage(data []byte) (image.Image, ImageFormat, error)

	// EncodeImage encodes an image to the specified format.
	// quality is in (0,1] and is ignored by lossless formats.
	EncodeImage(img image.Image, format ImageFormat, quality float64) ([]byte, error)
}

// Canvas provides the drawing operations used by the compositing stages.
//
// The canvas keeps a state stack in the manner of an HTML canvas: Push saves
// the current transform, clip and shadow; Pop restores them. Every Push must
// be matched by a Pop, which callers guarantee with defer.
type Canvas interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Push saves the drawing state.
	Push()

	// Pop restores the most recently pushed drawing state.
	Pop()

	// Translate moves the origin of the current transform.
	Translate(x, y float64)

	// ShearAbout applies an affine shear (x' = x + sx*y, y' = sy*x + y)
	// about the point (cx, cy).
	ShearAbout(sx, sy, cx, cy float64)

	// ClipRect intersects the clip region with a rectangle.
	ClipRect(r Rect)

	// ClipRoundedRect intersects the clip region with a rounded rectangle.
	ClipRoundedRect(r Rect, radii CornerRadii)

	// SetShadow makes subsequent fills and text cast the given shadow.
	SetShadow(s Shadow)

	// ClearShadow disables shadow casting.
	ClearShadow()

	// FillRect fills a rectangle with a solid color.
	FillRect(r Rect, c color.Color)

	// FillRoundedRect fills a rounded rectangle with a solid color.
	FillRoundedRect(r Rect, radii CornerRadii, c color.Color)

	// FillFrame fills the area between an outer and an inner rounded
	// rectangle, leaving the inner area untouched.
	FillFrame(outer Rect, outerRadii CornerRadii, inner Rect, innerRadii CornerRadii, c color.Color)

	// FillCircle fills a circle with a solid color.
	FillCircle(cx, cy, radius float64, c color.Color)

	// FillLinearGradient fills a rectangle with a linear gradient.
	FillLinearGradient(r Rect, g LinearGradient)

	// FillRadialGradient fills a rectangle with a radial gradient.
	FillRadialGradient(r Rect, g RadialGradient)

	// StrokeRect draws a rectangle outline.
	StrokeRect(r Rect, style StrokeStyle)

	// StrokeQuadratic strokes a quadratic Bézier curve.
	StrokeQuadratic(from, ctrl, to Point, style StrokeStyle)

	// StrokeLine strokes a straight segment.
	StrokeLine(from, to Point, style StrokeStyle)

	// DrawImage draws an image at its natural size with its top-left at (x, y).
	DrawImage(img image.Image, x, y int)

	// BlendImage composites a full-surface layer onto the canvas
	// using the given blend mode, ignoring transform and clip.
	BlendImage(layer image.Image, mode BlendMode)

	// BlurRect redraws the already-composited surface, blurred with the
	// given radius, inside r (in current user space) and the current clip.
	BlurRect(r Rect, radius float64)

	// DrawText draws text anchored at (x, y).
	DrawText(text string, x, y float64, style TextStyle)

	// MeasureText returns the width and height of the text.
	MeasureText(text string, style TextStyle) (width, height float64)

	// Pixels returns the live backing store of the surface.
	Pixels() *image.RGBA

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// Point is a position in user space.
type Point struct {
	X, Y float64
}

// Rect is a rectangle in user space. Width and Height may be negative.
type Rect struct {
	X, Y, W, H float64
}

// Normalize returns an equivalent rectangle with non-negative size.
func (r Rect) Normalize() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W == 0 || r.H == 0
}

// CornerRadii holds per-corner radii: top-left, top-right, bottom-right, bottom-left.
type CornerRadii [4]float64

// UniformRadii returns radii with the same value on every corner.
func UniformRadii(r float64) CornerRadii {
	return CornerRadii{r, r, r, r}
}

// TopRadii returns radii rounding only the two top corners.
func TopRadii(r float64) CornerRadii {
	return CornerRadii{r, r, 0, 0}
}

// BottomRadii returns radii rounding only the two bottom corners.
func BottomRadii(r float64) CornerRadii {
	return CornerRadii{0, 0, r, r}
}

// Shadow describes a drop shadow cast by fills and text.
type Shadow struct {
	Color   color.Color
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// ColorStop is a gradient stop at Offset in [0,1].
type ColorStop struct {
	Offset float64
	Color  color.Color
}

// LinearGradient runs from (X0, Y0) to (X1, Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []ColorStop
}

// RadialGradient runs from the inner circle to the outer circle.
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []ColorStop
}

// LineCap specifies stroke end styles.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
)

// StrokeStyle defines stroke rendering properties.
type StrokeStyle struct {
	Color color.Color
	Width float64
	Cap   LineCap
}

// BlendMode selects how BlendImage combines a layer with the canvas.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendScreen
)

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize float64
	Bold     bool
	Color    color.Color
	Align    TextAlign
	Baseline TextBaseline
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextBaseline specifies what the y coordinate of DrawText refers to.
type TextBaseline int

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineMiddle
	BaselineBottom
)

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatUnknown ImageFormat = iota
	FormatPNG
	FormatJPEG
	FormatWebP
	FormatGIF
	FormatBMP
)

// String returns the canonical short name of the format.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpg"
	case FormatWebP:
		return "webp"
	case FormatGIF:
		return "gif"
	case FormatBMP:
		return "bmp"
	default:
		return "unknown"
	}
}

// MIME returns the media type of the format.
func (f ImageFormat) MIME() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatWebP:
		return "image/webp"
	case FormatGIF:
		return "image/gif"
	case FormatBMP:
		return "image/bmp"
	default:
		return "application/octet-stream"
	}
}
