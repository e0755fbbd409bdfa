// Package mocks provides mock implementations for testing.
package mocks

import (
	"image"
	"image/color"

	"github.com/user/shotframe/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int) (ports.Canvas, error)
	DecodeImageFunc  func(data []byte) (image.Image, ports.ImageFormat, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality float64) ([]byte, error)

	// Canvases records every canvas created by the default CreateCanvas.
	Canvases []*Canvas
}

func (m *Renderer) CreateCanvas(width, height int) (ports.Canvas, error) {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height)
	}
	c := NewCanvas(width, height)
	m.Canvases = append(m.Canvases, c)
	return c, nil
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, ports.ImageFormat, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), ports.FormatPNG, nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality float64) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

var _ ports.Renderer = (*Renderer)(nil)

// Call is one recorded canvas operation.
type Call struct {
	Op   string
	Args []any
}

// Canvas is a mock implementation of ports.Canvas that records calls.
type Canvas struct {
	width  int
	height int
	img    *image.RGBA

	Calls []Call

	// Depth is the current Push depth; MaxDepth the deepest seen.
	Depth    int
	MaxDepth int

	// TextWidth is returned by MeasureText per rune.
	TextWidth float64
}

// NewCanvas creates a recording canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:     width,
		height:    height,
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		TextWidth: 10,
	}
}

func (m *Canvas) record(op string, args ...any) {
	m.Calls = append(m.Calls, Call{Op: op, Args: args})
}

// Ops returns the recorded operation names in order.
func (m *Canvas) Ops() []string {
	ops := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Find returns the recorded calls of one operation.
func (m *Canvas) Find(op string) []Call {
	var calls []Call
	for _, c := range m.Calls {
		if c.Op == op {
			calls = append(calls, c)
		}
	}
	return calls
}

func (m *Canvas) Width() int  { return m.width }
func (m *Canvas) Height() int { return m.height }

func (m *Canvas) Push() {
	m.Depth++
	if m.Depth > m.MaxDepth {
		m.MaxDepth = m.Depth
	}
	m.record("Push")
}

func (m *Canvas) Pop() {
	m.Depth--
	m.record("Pop")
}

func (m *Canvas) Translate(x, y float64) { m.record("Translate", x, y) }

func (m *Canvas) ShearAbout(sx, sy, cx, cy float64) { m.record("ShearAbout", sx, sy, cx, cy) }

func (m *Canvas) ClipRect(r ports.Rect) { m.record("ClipRect", r) }

func (m *Canvas) ClipRoundedRect(r ports.Rect, radii ports.CornerRadii) {
	m.record("ClipRoundedRect", r, radii)
}

func (m *Canvas) SetShadow(s ports.Shadow) { m.record("SetShadow", s) }

func (m *Canvas) ClearShadow() { m.record("ClearShadow") }

func (m *Canvas) FillRect(r ports.Rect, c color.Color) { m.record("FillRect", r, c) }

func (m *Canvas) FillRoundedRect(r ports.Rect, radii ports.CornerRadii, c color.Color) {
	m.record("FillRoundedRect", r, radii, c)
}

func (m *Canvas) FillFrame(outer ports.Rect, outerRadii ports.CornerRadii, inner ports.Rect, innerRadii ports.CornerRadii, c color.Color) {
	m.record("FillFrame", outer, outerRadii, inner, innerRadii, c)
}

func (m *Canvas) FillCircle(cx, cy, radius float64, c color.Color) {
	m.record("FillCircle", cx, cy, radius, c)
}

func (m *Canvas) FillLinearGradient(r ports.Rect, g ports.LinearGradient) {
	m.record("FillLinearGradient", r, g)
}

func (m *Canvas) FillRadialGradient(r ports.Rect, g ports.RadialGradient) {
	m.record("FillRadialGradient", r, g)
}

func (m *Canvas) StrokeRect(r ports.Rect, style ports.StrokeStyle) { m.record("StrokeRect", r, style) }

func (m *Canvas) StrokeQuadratic(from, ctrl, to ports.Point, style ports.StrokeStyle) {
	m.record("StrokeQuadratic", from, ctrl, to, style)
}

func (m *Canvas) StrokeLine(from, to ports.Point, style ports.StrokeStyle) {
	m.record("StrokeLine", from, to, style)
}

func (m *Canvas) DrawImage(img image.Image, x, y int) { m.record("DrawImage", img, x, y) }

func (m *Canvas) BlendImage(layer image.Image, mode ports.BlendMode) {
	m.record("BlendImage", layer, mode)
}

func (m *Canvas) BlurRect(r ports.Rect, radius float64) { m.record("BlurRect", r, radius) }

func (m *Canvas) DrawText(text string, x, y float64, style ports.TextStyle) {
	m.record("DrawText", text, x, y, style)
}

func (m *Canvas) MeasureText(text string, style ports.TextStyle) (float64, float64) {
	return m.TextWidth * float64(len([]rune(text))), style.FontSize
}

func (m *Canvas) Pixels() *image.RGBA { return m.img }

func (m *Canvas) ToImage() image.Image { return m.img }

var _ ports.Canvas = (*Canvas)(nil)
