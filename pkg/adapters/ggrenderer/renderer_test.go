package ggrenderer

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/user/shotframe/pkg/ports"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func newCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := New().CreateCanvas(w, h)
	if err != nil {
		t.Fatalf("CreateCanvas failed: %v", err)
	}
	return c.(*Canvas)
}

func rgbaAt(c *Canvas, x, y int) color.RGBA {
	return c.Pixels().RGBAAt(x, y)
}

func TestRenderer_CreateCanvas(t *testing.T) {
	c := newCanvas(t, 100, 80)

	if c.Width() != 100 || c.Height() != 80 {
		t.Errorf("expected 100x80, got %dx%d", c.Width(), c.Height())
	}
	if px := rgbaAt(c, 50, 40); px.A != 0 {
		t.Errorf("expected transparent surface, got %v", px)
	}
}

func TestRenderer_CreateCanvasInvalid(t *testing.T) {
	r := New()

	if _, err := r.CreateCanvas(0, 10); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
	if _, err := r.CreateCanvas(MaxCanvasSide+1, 10); !errors.Is(err, ErrCanvasTooLarge) {
		t.Errorf("expected ErrCanvasTooLarge, got %v", err)
	}
}

func TestRenderer_EncodeDecode(t *testing.T) {
	r := New()

	img := image.NewNRGBA(image.Rect(0, 0, 40, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 10, B: 10, A: 128})
		}
	}

	tests := []struct {
		format ports.ImageFormat
	}{
		{ports.FormatPNG},
		{ports.FormatJPEG},
		{ports.FormatWebP},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			data, err := r.EncodeImage(img, tt.format, 0.9)
			if err != nil {
				t.Fatalf("EncodeImage failed: %v", err)
			}

			decoded, format, err := r.DecodeImage(data)
			if err != nil {
				t.Fatalf("DecodeImage failed: %v", err)
			}
			if format != tt.format {
				t.Errorf("expected format %s, got %s", tt.format, format)
			}
			b := decoded.Bounds()
			if b.Dx() != 40 || b.Dy() != 30 {
				t.Errorf("expected 40x30, got %dx%d", b.Dx(), b.Dy())
			}
		})
	}
}

func TestRenderer_DecodeUnknown(t *testing.T) {
	_, _, err := New().DecodeImage([]byte("definitely not an image"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestRenderer_DecodeTruncated(t *testing.T) {
	r := New()
	data, err := r.EncodeImage(image.NewRGBA(image.Rect(0, 0, 20, 20)), ports.FormatPNG, 1)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	if _, _, err := r.DecodeImage(data[:len(data)/2]); err == nil {
		t.Error("expected error for truncated PNG")
	}
}

func TestJPEGQuality(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.92, 92},
		{1, 100},
		{0.004, 1},
		{1.5, 100},
	}
	for _, tt := range tests {
		if got := JPEGQuality(tt.in); got != tt.want {
			t.Errorf("JPEGQuality(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCanvas_FillRect(t *testing.T) {
	c := newCanvas(t, 20, 20)
	c.FillRect(ports.Rect{X: 5, Y: 5, W: 10, H: 10}, red)

	if px := rgbaAt(c, 10, 10); px != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("expected red inside, got %v", px)
	}
	if px := rgbaAt(c, 2, 2); px.A != 0 {
		t.Errorf("expected transparent outside, got %v", px)
	}
}

func TestCanvas_FillRectNegativeSize(t *testing.T) {
	c := newCanvas(t, 20, 20)
	c.FillRect(ports.Rect{X: 15, Y: 15, W: -10, H: -10}, red)

	if px := rgbaAt(c, 10, 10); px.R != 255 {
		t.Errorf("expected normalized rect to be filled, got %v", px)
	}
}

func TestCanvas_PushPopRestoresTransform(t *testing.T) {
	c := newCanvas(t, 20, 20)

	c.Push()
	c.Translate(10, 10)
	c.Pop()
	c.FillRect(ports.Rect{X: 0, Y: 0, W: 5, H: 5}, red)

	if px := rgbaAt(c, 2, 2); px.R != 255 {
		t.Errorf("expected fill at origin after Pop, got %v", px)
	}
	if px := rgbaAt(c, 12, 12); px.A != 0 {
		t.Errorf("expected no fill at translated position, got %v", px)
	}
	if c.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", c.Depth())
	}
}

func TestCanvas_PopUnbalanced(t *testing.T) {
	c := newCanvas(t, 10, 10)
	c.Pop()
	if c.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", c.Depth())
	}
}

func TestCanvas_ClipRoundedRect(t *testing.T) {
	c := newCanvas(t, 100, 100)

	c.Push()
	c.ClipRoundedRect(ports.Rect{X: 0, Y: 0, W: 100, H: 100}, ports.UniformRadii(30))
	c.FillRect(ports.Rect{X: 0, Y: 0, W: 100, H: 100}, red)
	c.Pop()

	if px := rgbaAt(c, 1, 1); px.A != 0 {
		t.Errorf("expected corner clipped, got %v", px)
	}
	if px := rgbaAt(c, 50, 50); px.R != 255 {
		t.Errorf("expected center filled, got %v", px)
	}
}

func TestCanvas_ClipPoppedWithState(t *testing.T) {
	c := newCanvas(t, 20, 20)

	c.Push()
	c.ClipRect(ports.Rect{X: 0, Y: 0, W: 5, H: 5})
	c.Pop()
	c.FillRect(ports.Rect{X: 0, Y: 0, W: 20, H: 20}, red)

	if px := rgbaAt(c, 15, 15); px.R != 255 {
		t.Errorf("expected clip to be released by Pop, got %v", px)
	}
}

func TestCanvas_NestedClipRestored(t *testing.T) {
	c := newCanvas(t, 20, 20)

	c.Push()
	c.ClipRect(ports.Rect{X: 0, Y: 0, W: 10, H: 20})
	c.Push()
	c.ClipRect(ports.Rect{X: 0, Y: 0, W: 20, H: 5})
	c.Pop()
	c.FillRect(ports.Rect{X: 0, Y: 0, W: 20, H: 20}, red)
	c.Pop()

	if px := rgbaAt(c, 5, 15); px.R != 255 {
		t.Errorf("expected outer clip to still admit (5,15), got %v", px)
	}
	if px := rgbaAt(c, 15, 15); px.A != 0 {
		t.Errorf("expected outer clip to still exclude (15,15), got %v", px)
	}

	c.FillRect(ports.Rect{X: 0, Y: 0, W: 20, H: 20}, red)
	if px := rgbaAt(c, 15, 15); px.R != 255 {
		t.Errorf("expected no clip after the last Pop, got %v", px)
	}
}

func TestCanvas_Shadow(t *testing.T) {
	c := newCanvas(t, 100, 100)

	c.Push()
	c.SetShadow(ports.Shadow{Color: color.NRGBA{A: 200}, Blur: 4, OffsetY: 20})
	c.FillRect(ports.Rect{X: 30, Y: 20, W: 40, H: 40}, white)
	c.Pop()

	below := rgbaAt(c, 50, 70)
	if below.A == 0 {
		t.Error("expected shadow below the shape")
	}
	if below.R != 0 {
		t.Errorf("expected black shadow, got %v", below)
	}
	if px := rgbaAt(c, 50, 40); px != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("expected shape drawn over its shadow, got %v", px)
	}
}

func TestCanvas_ShadowCleared(t *testing.T) {
	c := newCanvas(t, 100, 100)

	c.SetShadow(ports.Shadow{Color: color.NRGBA{A: 200}, Blur: 4, OffsetY: 20})
	c.ClearShadow()
	c.FillRect(ports.Rect{X: 30, Y: 20, W: 40, H: 40}, white)

	if px := rgbaAt(c, 50, 70); px.A != 0 {
		t.Errorf("expected no shadow, got %v", px)
	}
}

func TestCanvas_ScreenBlend(t *testing.T) {
	c := newCanvas(t, 4, 4)
	c.FillRect(ports.Rect{W: 4, H: 4}, color.NRGBA{R: 128, A: 255})

	layer := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(layer.Pix); i += 4 {
		layer.Pix[i+1] = 128
		layer.Pix[i+3] = 255
	}
	c.BlendImage(layer, ports.BlendScreen)

	px := rgbaAt(c, 1, 1)
	if px.R != 128 || px.G != 128 || px.A != 255 {
		t.Errorf("expected (128,128,_,255), got %v", px)
	}
}

func TestCanvas_ScreenBlendTransparentLayer(t *testing.T) {
	c := newCanvas(t, 4, 4)
	c.FillRect(ports.Rect{W: 4, H: 4}, color.NRGBA{R: 90, G: 40, B: 10, A: 255})
	before := rgbaAt(c, 2, 2)

	c.BlendImage(image.NewRGBA(image.Rect(0, 0, 4, 4)), ports.BlendScreen)

	if after := rgbaAt(c, 2, 2); after != before {
		t.Errorf("expected unchanged pixel, got %v want %v", after, before)
	}
}

func TestCanvas_LinearGradient(t *testing.T) {
	c := newCanvas(t, 100, 10)
	c.FillLinearGradient(ports.Rect{W: 100, H: 10}, ports.LinearGradient{
		X0: 0, Y0: 0, X1: 100, Y1: 0,
		Stops: []ports.ColorStop{{Offset: 0, Color: red}, {Offset: 1, Color: green}},
	})

	left, right := rgbaAt(c, 1, 5), rgbaAt(c, 98, 5)
	if left.R < 240 || right.G < 240 {
		t.Errorf("expected red to green, got %v .. %v", left, right)
	}
}

func TestCanvas_DeviceLinearIdentity(t *testing.T) {
	c := newCanvas(t, 10, 10)
	x0, y0, x1, y1 := c.deviceLinear(ports.LinearGradient{X0: 1, Y0: 2, X1: 7, Y1: 9})

	if x0 != 1 || y0 != 2 || math.Abs(x1-7) > 1e-9 || math.Abs(y1-9) > 1e-9 {
		t.Errorf("expected unchanged endpoints, got (%v,%v)-(%v,%v)", x0, y0, x1, y1)
	}
}

func TestCanvas_BlurRectStaysInside(t *testing.T) {
	c := newCanvas(t, 60, 60)
	c.FillRect(ports.Rect{W: 30, H: 60}, red)
	c.FillRect(ports.Rect{X: 30, W: 30, H: 60}, green)
	outside := rgbaAt(c, 5, 5)

	c.BlurRect(ports.Rect{X: 20, Y: 20, W: 20, H: 20}, 6)

	if got := rgbaAt(c, 5, 5); got != outside {
		t.Errorf("expected pixel outside the blur rect unchanged, got %v", got)
	}
	edge := rgbaAt(c, 29, 30)
	if edge.G == 0 {
		t.Errorf("expected colors mixed across the edge, got %v", edge)
	}
}

func TestCanvas_DrawText(t *testing.T) {
	c := newCanvas(t, 200, 60)
	c.DrawText("Hello", 10, 40, ports.TextStyle{FontSize: 24, Bold: true, Color: white})

	drawn := 0
	pix := c.Pixels().Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] > 0 {
			drawn++
		}
	}
	if drawn == 0 {
		t.Error("expected text pixels to be drawn")
	}

	w, h := c.MeasureText("Hello", ports.TextStyle{FontSize: 24, Bold: true})
	if w <= 0 || h <= 0 {
		t.Errorf("expected positive text size, got %vx%v", w, h)
	}
}

func TestCanvas_StrokeRect(t *testing.T) {
	c := newCanvas(t, 50, 50)
	c.StrokeRect(ports.Rect{X: 10, Y: 10, W: 30, H: 30}, ports.StrokeStyle{Color: red, Width: 3})

	if px := rgbaAt(c, 10, 25); px.R == 0 {
		t.Errorf("expected stroke on the left edge, got %v", px)
	}
	if px := rgbaAt(c, 25, 25); px.A != 0 {
		t.Errorf("expected empty interior, got %v", px)
	}
}

func TestCanvas_BlurRectKeepsClip(t *testing.T) {
	c := newCanvas(t, 40, 40)
	c.BlurRect(ports.Rect{X: 0, Y: 0, W: 10, H: 10}, 3)
	c.FillRect(ports.Rect{X: 0, Y: 0, W: 40, H: 40}, red)

	if px := rgbaAt(c, 30, 30); px.R != 255 {
		t.Errorf("expected BlurRect to leave no clip behind, got %v", px)
	}
}

func TestCanvas_BlurRectReplacesTranslucent(t *testing.T) {
	c := newCanvas(t, 40, 40)
	for x := 0; x < 40; x += 2 {
		c.FillRect(ports.Rect{X: float64(x), W: 1, H: 40}, white)
	}

	c.BlurRect(ports.Rect{X: 10, Y: 10, W: 20, H: 20}, 4)

	a, b := rgbaAt(c, 20, 20), rgbaAt(c, 21, 20)
	if d := int(a.A) - int(b.A); d > 40 || d < -40 {
		t.Errorf("expected stripes smoothed, got alpha %d and %d", a.A, b.A)
	}
}
