package ggrenderer

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/clone"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/user/shotframe/pkg/ports"
)

// Canvas implements ports.Canvas using gg.Context.
//
// gg keeps the transform private, so every transform applied to the
// canvas is also recorded in ops. Shadow layers replay the log to draw
// silhouettes in the same space as the main surface.
//
// gg.Context.Pop keeps the clip mask, so the canvas mirrors the mask in
// clip and restores it itself.
type Canvas struct {
	dc    *gg.Context
	im    *image.RGBA
	fonts *fontSet
	faces map[faceKey]font.Face

	ops    []func(*gg.Context)
	shadow *ports.Shadow
	clip   *image.Alpha
	stack  []savedState
}

type savedState struct {
	ops    int
	shadow *ports.Shadow
	clip   *image.Alpha
}

// Width returns the surface width in pixels.
func (c *Canvas) Width() int { return c.im.Bounds().Dx() }

// Height returns the surface height in pixels.
func (c *Canvas) Height() int { return c.im.Bounds().Dy() }

// Push saves the transform, clip and shadow.
func (c *Canvas) Push() {
	c.stack = append(c.stack, savedState{ops: len(c.ops), shadow: c.shadow, clip: c.clip})
	c.dc.Push()
}

// Pop restores the most recently pushed state. Unbalanced calls are ignored.
func (c *Canvas) Pop() {
	if len(c.stack) == 0 {
		return
	}
	s := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.ops = c.ops[:s.ops]
	c.shadow = s.shadow
	c.dc.Pop()
	c.setClip(s.clip)
}

// Depth returns the number of unmatched Push calls.
func (c *Canvas) Depth() int { return len(c.stack) }

// Translate moves the origin of the current transform.
func (c *Canvas) Translate(x, y float64) {
	c.apply(func(dc *gg.Context) { dc.Translate(x, y) })
}

// ShearAbout shears about (cx, cy).
func (c *Canvas) ShearAbout(sx, sy, cx, cy float64) {
	c.apply(func(dc *gg.Context) { dc.ShearAbout(sx, sy, cx, cy) })
}

func (c *Canvas) apply(op func(*gg.Context)) {
	c.ops = append(c.ops, op)
	op(c.dc)
}

// replay applies the recorded transform to another context.
func (c *Canvas) replay(dc *gg.Context) {
	for _, op := range c.ops {
		op(dc)
	}
}

// ClipRect intersects the clip region with a rectangle.
func (c *Canvas) ClipRect(r ports.Rect) {
	r = r.Normalize()
	c.setClip(c.clipMask(func(dc *gg.Context) { dc.DrawRectangle(r.X, r.Y, r.W, r.H) }))
}

// ClipRoundedRect intersects the clip region with a rounded rectangle.
func (c *Canvas) ClipRoundedRect(r ports.Rect, radii ports.CornerRadii) {
	c.setClip(c.clipMask(func(dc *gg.Context) { roundedRectPath(dc, r, radii) }))
}

// clipMask rasterizes path under the current transform, intersected with
// the current clip. Masks are never written after creation, so a saved
// pointer stays valid.
func (c *Canvas) clipMask(path func(*gg.Context)) *image.Alpha {
	layer := gg.NewContext(c.Width(), c.Height())
	if c.clip != nil {
		layer.SetMask(c.clip)
	}
	c.replay(layer)
	path(layer)
	layer.SetRGB(1, 1, 1)
	layer.Fill()
	return layer.AsMask()
}

// setClip installs mask on the context; nil removes the clip.
func (c *Canvas) setClip(mask *image.Alpha) {
	c.clip = mask
	if mask == nil {
		c.dc.ResetClip()
		return
	}
	c.dc.SetMask(mask)
}

// SetShadow makes subsequent fills and text cast the given shadow.
func (c *Canvas) SetShadow(s ports.Shadow) {
	c.shadow = &s
}

// ClearShadow disables shadow casting.
func (c *Canvas) ClearShadow() {
	c.shadow = nil
}

// FillRect fills a rectangle with a solid color.
func (c *Canvas) FillRect(r ports.Rect, col color.Color) {
	r = r.Normalize()
	path := func(dc *gg.Context) { dc.DrawRectangle(r.X, r.Y, r.W, r.H) }
	c.fill(r, col, path)
}

// FillRoundedRect fills a rounded rectangle with a solid color.
func (c *Canvas) FillRoundedRect(r ports.Rect, radii ports.CornerRadii, col color.Color) {
	path := func(dc *gg.Context) { roundedRectPath(dc, r, radii) }
	c.fill(r.Normalize(), col, path)
}

// FillFrame fills the ring between outer and inner with the even-odd rule.
func (c *Canvas) FillFrame(outer ports.Rect, outerRadii ports.CornerRadii, inner ports.Rect, innerRadii ports.CornerRadii, col color.Color) {
	path := func(dc *gg.Context) {
		roundedRectPath(dc, outer, outerRadii)
		roundedRectPath(dc, inner, innerRadii)
		dc.SetFillRule(gg.FillRuleEvenOdd)
	}
	c.fill(outer.Normalize(), col, path)
	c.dc.SetFillRule(gg.FillRuleWinding)
}

// FillCircle fills a circle with a solid color.
func (c *Canvas) FillCircle(cx, cy, radius float64, col color.Color) {
	bounds := ports.Rect{X: cx - radius, Y: cy - radius, W: 2 * radius, H: 2 * radius}
	path := func(dc *gg.Context) { dc.DrawCircle(cx, cy, radius) }
	c.fill(bounds, col, path)
}

func (c *Canvas) fill(bounds ports.Rect, col color.Color, path func(*gg.Context)) {
	c.castShadow(bounds, func(dc *gg.Context) {
		path(dc)
		dc.Fill()
	})
	c.dc.ClearPath()
	c.dc.SetColor(col)
	path(c.dc)
	c.dc.Fill()
}

// FillLinearGradient fills a rectangle with a linear gradient whose
// endpoints are given in user space.
func (c *Canvas) FillLinearGradient(r ports.Rect, g ports.LinearGradient) {
	x0, y0, x1, y1 := c.deviceLinear(g)
	grad := gg.NewLinearGradient(x0, y0, x1, y1)
	addStops(grad, g.Stops)
	c.fillPattern(r, grad)
}

// FillRadialGradient fills a rectangle with a radial gradient. Centers
// follow the transform; radii are kept in device pixels.
func (c *Canvas) FillRadialGradient(r ports.Rect, g ports.RadialGradient) {
	x0, y0 := c.dc.TransformPoint(g.X0, g.Y0)
	x1, y1 := c.dc.TransformPoint(g.X1, g.Y1)
	grad := gg.NewRadialGradient(x0, y0, g.R0, x1, y1, g.R1)
	addStops(grad, g.Stops)
	c.fillPattern(r, grad)
}

func (c *Canvas) fillPattern(r ports.Rect, p gg.Pattern) {
	r = r.Normalize()
	c.dc.ClearPath()
	c.dc.SetFillStyle(p)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.Fill()
}

func addStops(g gg.Gradient, stops []ports.ColorStop) {
	for _, s := range stops {
		g.AddColorStop(s.Offset, s.Color)
	}
}

// deviceLinear maps user-space gradient endpoints to a device-space
// gradient with the same value at every pixel. An affine transform keeps
// isolines parallel, but their normal follows the inverse transpose.
func (c *Canvas) deviceLinear(g ports.LinearGradient) (x0, y0, x1, y1 float64) {
	ox, oy := c.dc.TransformPoint(0, 0)
	ax, ay := c.dc.TransformPoint(1, 0)
	bx, by := c.dc.TransformPoint(0, 1)
	m00, m10 := ax-ox, ay-oy
	m01, m11 := bx-ox, by-oy
	det := m00*m11 - m01*m10

	x0, y0 = c.dc.TransformPoint(g.X0, g.Y0)
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	n := dx*dx + dy*dy
	if det == 0 || n == 0 {
		x1, y1 = c.dc.TransformPoint(g.X1, g.Y1)
		return x0, y0, x1, y1
	}
	vx := (m11*dx - m10*dy) / det / n
	vy := (-m01*dx + m00*dy) / det / n
	vv := vx*vx + vy*vy
	return x0, y0, x0 + vx/vv, y0 + vy/vv
}

// StrokeRect draws a rectangle outline.
func (c *Canvas) StrokeRect(r ports.Rect, style ports.StrokeStyle) {
	r = r.Normalize()
	c.dc.ClearPath()
	c.setStroke(style)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.Stroke()
}

// StrokeQuadratic strokes a quadratic Bézier curve.
func (c *Canvas) StrokeQuadratic(from, ctrl, to ports.Point, style ports.StrokeStyle) {
	c.dc.ClearPath()
	c.setStroke(style)
	c.dc.MoveTo(from.X, from.Y)
	c.dc.QuadraticTo(ctrl.X, ctrl.Y, to.X, to.Y)
	c.dc.Stroke()
}

// StrokeLine strokes a straight segment.
func (c *Canvas) StrokeLine(from, to ports.Point, style ports.StrokeStyle) {
	c.dc.ClearPath()
	c.setStroke(style)
	c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	c.dc.Stroke()
}

func (c *Canvas) setStroke(style ports.StrokeStyle) {
	c.dc.SetColor(style.Color)
	c.dc.SetLineWidth(style.Width)
	// gg has no miter join; round keeps rectangle corners filled.
	c.dc.SetLineJoin(gg.LineJoinRound)
	switch style.Cap {
	case ports.CapRound:
		c.dc.SetLineCap(gg.LineCapRound)
	default:
		c.dc.SetLineCap(gg.LineCapButt)
	}
}

// DrawImage draws an image at its natural size with its top-left at (x, y).
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	c.dc.DrawImage(img, x, y)
}

// BlendImage composites a full-surface layer onto the canvas, ignoring
// transform and clip.
func (c *Canvas) BlendImage(layer image.Image, mode ports.BlendMode) {
	switch mode {
	case ports.BlendScreen:
		screen(c.im, clone.AsRGBA(layer))
	default:
		draw.Draw(c.im, c.im.Bounds(), layer, layer.Bounds().Min, draw.Over)
	}
}

// screen applies the screen blend mode in place. On premultiplied
// values the same formula holds for color and alpha channels.
func screen(dst, src *image.RGBA) {
	b := dst.Bounds().Intersect(src.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		di := dst.PixOffset(b.Min.X, y)
		si := src.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			for k := 0; k < 4; k++ {
				cb := uint32(dst.Pix[di+k])
				cs := uint32(src.Pix[si+k])
				dst.Pix[di+k] = uint8(cs + cb - (cs*cb+127)/255)
			}
			di += 4
			si += 4
		}
	}
}

// BlurRect replaces the area of r, in user space and inside the current
// clip, with a Gaussian-blurred copy of the surface. radius is the
// standard deviation in pixels.
func (c *Canvas) BlurRect(r ports.Rect, radius float64) {
	r = r.Normalize()
	if r.Empty() || radius <= 0 {
		return
	}
	region := c.deviceBounds(c.dc, r, 3*radius)
	if region.Empty() {
		return
	}
	blurred := blur.Gaussian(crop(c.im, region), bildRadius(radius))
	mask := c.clipMask(func(dc *gg.Context) { dc.DrawRectangle(r.X, r.Y, r.W, r.H) })
	draw.DrawMask(c.im, region, blurred, image.Point{}, mask, region.Min, draw.Src)
}

// DrawText draws text anchored at (x, y).
func (c *Canvas) DrawText(text string, x, y float64, style ports.TextStyle) {
	if text == "" {
		return
	}
	face := c.face(style.Bold, style.FontSize)
	w, _ := c.measure(face, text)
	m := face.Metrics()
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64

	switch style.Align {
	case ports.AlignCenter:
		x -= w / 2
	case ports.AlignRight:
		x -= w
	}
	switch style.Baseline {
	case ports.BaselineBottom:
		y -= descent
	case ports.BaselineMiddle:
		y += (ascent - descent) / 2
	}

	bounds := ports.Rect{X: x, Y: y - ascent, W: w, H: ascent + descent}
	c.castShadow(bounds, func(dc *gg.Context) {
		dc.SetFontFace(face)
		dc.DrawString(text, x, y)
	})
	c.dc.SetFontFace(face)
	c.dc.SetColor(style.Color)
	c.dc.DrawString(text, x, y)
}

// MeasureText returns the advance width and line height of the text.
func (c *Canvas) MeasureText(text string, style ports.TextStyle) (width, height float64) {
	return c.measure(c.face(style.Bold, style.FontSize), text)
}

func (c *Canvas) measure(face font.Face, text string) (float64, float64) {
	adv := font.MeasureString(face, text)
	return float64(adv) / 64, float64(face.Metrics().Height) / 64
}

// Pixels returns the live backing store of the surface.
func (c *Canvas) Pixels() *image.RGBA {
	return c.im
}

// ToImage returns the canvas as an image.Image.
func (c *Canvas) ToImage() image.Image {
	return c.im
}

// castShadow draws the shape produced by paint into an offscreen layer
// in the shadow color, blurs it and composites it under the current clip.
// bounds is the user-space extent of the shape.
func (c *Canvas) castShadow(bounds ports.Rect, paint func(dc *gg.Context)) {
	s := c.shadow
	if s == nil || s.Color == nil {
		return
	}
	if _, _, _, a := s.Color.RGBA(); a == 0 {
		return
	}

	w, h := c.Width(), c.Height()
	layer := gg.NewContext(w, h)
	layer.Translate(s.OffsetX, s.OffsetY)
	c.replay(layer)
	layer.SetColor(s.Color)
	paint(layer)

	region := c.deviceBounds(layer, bounds, 1.5*s.Blur+1)
	if region.Empty() {
		return
	}
	patch := crop(layer.Image(), region)
	var shadow image.Image = patch
	if s.Blur > 0 {
		// Canvas shadowBlur is twice the standard deviation.
		shadow = blur.Gaussian(patch, bildRadius(s.Blur/2))
	}

	c.dc.Push()
	defer c.dc.Pop()
	c.dc.Identity()
	c.dc.DrawImage(shadow, region.Min.X, region.Min.Y)
}

// deviceBounds returns the pixel rectangle covering r under the transform
// of dc, grown by margin and clipped to the surface.
func (c *Canvas) deviceBounds(dc *gg.Context, r ports.Rect, margin float64) image.Rectangle {
	xs := [4]float64{r.X, r.X + r.W, r.X, r.X + r.W}
	ys := [4]float64{r.Y, r.Y, r.Y + r.H, r.Y + r.H}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range xs {
		x, y := dc.TransformPoint(xs[i], ys[i])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	rect := image.Rect(
		int(math.Floor(minX-margin)), int(math.Floor(minY-margin)),
		int(math.Ceil(maxX+margin)), int(math.Ceil(maxY+margin)),
	)
	return rect.Intersect(c.im.Bounds())
}

// crop copies region of src into a new zero-origin image.
func crop(src image.Image, region image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))
	draw.Draw(dst, dst.Bounds(), src, region.Min, draw.Src)
	return dst
}

// bildRadius converts a standard deviation to the radius parameter of
// bild's Gaussian, whose kernel spans ±radius with variance 2·radius.
// The kernel is capped at ±3σ, which softens large blurs slightly.
func bildRadius(sigma float64) float64 {
	return math.Max(1, math.Min(sigma*sigma/2, 3*sigma))
}

// roundedRectPath appends a rectangle with quadratic-curve corners.
// Radii are not clamped; oversized radii produce self-intersecting corners.
func roundedRectPath(dc *gg.Context, r ports.Rect, radii ports.CornerRadii) {
	x, y, w, h := r.X, r.Y, r.W, r.H
	tl, tr, br, bl := radii[0], radii[1], radii[2], radii[3]
	dc.NewSubPath()
	dc.MoveTo(x+tl, y)
	dc.LineTo(x+w-tr, y)
	dc.QuadraticTo(x+w, y, x+w, y+tr)
	dc.LineTo(x+w, y+h-br)
	dc.QuadraticTo(x+w, y+h, x+w-br, y+h)
	dc.LineTo(x+bl, y+h)
	dc.QuadraticTo(x, y+h, x, y+h-bl)
	dc.LineTo(x, y+tl)
	dc.QuadraticTo(x, y, x+tl, y)
	dc.ClosePath()
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)
