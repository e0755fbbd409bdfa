package mockup

import (
	"image/color"
	"math"

	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

const (
	iphoneBodyRadius  = 44
	androidBodyRadius = 24
)

var (
	browserHeader = hex(0x2d, 0x2d, 0x2d)
	browserURLBar = hex(0x3d, 0x3d, 0x3d)
	bezelDark     = hex(0x1a, 0x1a, 0x1a)
	cameraBlack   = hex(0x0a, 0x0a, 0x0a)
	hingeGray     = hex(0x2d, 0x2d, 0x2d)
	screenBlack   = hex(0x00, 0x00, 0x00)

	trafficLights = []color.NRGBA{
		hex(0xff, 0x5f, 0x57),
		hex(0xfe, 0xbc, 0x2e),
		hex(0x28, 0xc8, 0x40),
	}

	sequoiaBar      = pipeline.RGBA(0xec, 0xec, 0xec, 0.92)
	sequoiaTitle    = pipeline.RGBA(0, 0, 0, 0.08)
	sequoiaHairline = hex(0xd1, 0xd1, 0xd1)

	win11Bar   = hex(0xf3, 0xf3, 0xf3)
	win11Glyph = hex(0x1f, 0x1f, 0x1f)
	win11Icon  = hex(0x00, 0x78, 0xd4)
	win11Title = pipeline.RGBA(0, 0, 0, 0.06)
)

func hex(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Draw draws the frame of type t around content, the placed image rect.
// Frames never cast shadows and never move the content.
func Draw(c ports.Canvas, t pipeline.MockupType, content ports.Rect, radius float64) {
	if !Framed(t) {
		return
	}
	m := MetricsFor(t)

	c.Push()
	defer c.Pop()
	c.ClearShadow()

	switch t {
	case pipeline.MockupBrowser:
		drawBrowser(c, strip(content, m), radius)
	case pipeline.MockupOSChromeA:
		drawSequoia(c, strip(content, m), radius)
	case pipeline.MockupOSChromeB:
		drawWin11(c, strip(content, m), radius)
	case pipeline.MockupMacBook:
		drawMacBook(c, content, m, radius)
	case pipeline.MockupIPhone:
		drawIPhone(c, content, m)
	case pipeline.MockupAndroid:
		drawAndroid(c, content, m)
	}
}

// strip returns the title bar rect directly above content.
func strip(content ports.Rect, m Metrics) ports.Rect {
	h := float64(m.Top)
	return ports.Rect{X: content.X, Y: content.Y - h, W: content.W, H: h}
}

func drawBrowser(c ports.Canvas, bar ports.Rect, radius float64) {
	const (
		buttonRadius  = 6
		buttonSpacing = 8
		urlBarHeight  = 20
	)

	c.FillRoundedRect(bar, ports.TopRadii(radius), browserHeader)

	c.Push()
	defer c.Pop()
	c.ClipRect(bar)

	cy := bar.Y + bar.H/2
	for i, col := range trafficLights {
		x := bar.X + 16 + float64(i)*(buttonRadius*2+buttonSpacing)
		c.FillCircle(x+buttonRadius, cy, buttonRadius, col)
	}

	if w := bar.W - 100; w > 0 {
		url := ports.Rect{X: bar.X + 80, Y: bar.Y + (bar.H-urlBarHeight)/2, W: w, H: urlBarHeight}
		c.FillRoundedRect(url, ports.UniformRadii(4), browserURLBar)
	}
}

func drawSequoia(c ports.Canvas, bar ports.Rect, radius float64) {
	c.FillRoundedRect(bar, ports.TopRadii(radius), sequoiaBar)

	c.Push()
	defer c.Pop()
	c.ClipRect(bar)

	cy := bar.Y + bar.H/2
	for i, col := range trafficLights {
		c.FillCircle(bar.X+20+float64(i)*20, cy, 6, col)
	}

	if w := math.Min(200, bar.W/3); w > 24 {
		title := ports.Rect{X: bar.X + (bar.W-w)/2, Y: cy - 7, W: w, H: 14}
		c.FillRoundedRect(title, ports.UniformRadii(7), sequoiaTitle)
	}

	c.FillRect(ports.Rect{X: bar.X, Y: bar.Y + bar.H - 1, W: bar.W, H: 1}, sequoiaHairline)
}

func drawWin11(c ports.Canvas, bar ports.Rect, radius float64) {
	const (
		buttonWidth = 46
		glyph       = 10
	)

	c.FillRoundedRect(bar, ports.TopRadii(radius), win11Bar)

	c.Push()
	defer c.Pop()
	c.ClipRect(bar)

	cy := bar.Y + bar.H/2
	c.FillRoundedRect(ports.Rect{X: bar.X + 12, Y: cy - 8, W: 16, H: 16}, ports.UniformRadii(3), win11Icon)
	if w := math.Min(160, bar.W/4); w > 24 {
		c.FillRoundedRect(ports.Rect{X: bar.X + 40, Y: cy - 6, W: w, H: 12}, ports.UniformRadii(6), win11Title)
	}

	pen := ports.StrokeStyle{Color: win11Glyph, Width: 1}
	right := bar.X + bar.W

	// Close: an X in the rightmost button.
	cx := right - buttonWidth/2
	c.StrokeLine(ports.Point{X: cx - glyph/2, Y: cy - glyph/2}, ports.Point{X: cx + glyph/2, Y: cy + glyph/2}, pen)
	c.StrokeLine(ports.Point{X: cx + glyph/2, Y: cy - glyph/2}, ports.Point{X: cx - glyph/2, Y: cy + glyph/2}, pen)

	// Maximize: a square.
	cx -= buttonWidth
	c.StrokeRect(ports.Rect{X: cx - glyph/2, Y: cy - glyph/2, W: glyph, H: glyph}, pen)

	// Minimize: a bar.
	cx -= buttonWidth
	c.StrokeLine(ports.Point{X: cx - glyph/2, Y: cy}, ports.Point{X: cx + glyph/2, Y: cy}, pen)
}

func drawMacBook(c ports.Canvas, content ports.Rect, m Metrics, radius float64) {
	side, top, bottom := float64(m.Side), float64(m.Top), float64(m.Bottom)
	bezel := ports.Rect{
		X: content.X - side,
		Y: content.Y - top,
		W: content.W + 2*side,
		H: content.H + top + bottom,
	}
	c.FillFrame(bezel, ports.TopRadii(radius+4), content, ports.UniformRadii(radius), bezelDark)

	c.FillCircle(bezel.X+bezel.W/2, bezel.Y+12, 3, cameraBlack)

	overhang := float64(m.BaseOverhang)
	baseY := bezel.Y + bezel.H
	base := ports.Rect{X: bezel.X - overhang, Y: baseY, W: bezel.W + 2*overhang, H: float64(m.Base)}
	c.FillRoundedRect(base, ports.BottomRadii(4), hingeGray)

	const notchWidth = 80
	notch := ports.Rect{X: bezel.X + bezel.W/2 - notchWidth/2, Y: baseY, W: notchWidth, H: 4}
	c.FillRoundedRect(notch, ports.BottomRadii(2), bezelDark)
}

func drawIPhone(c ports.Canvas, content ports.Rect, m Metrics) {
	bezel := float64(m.Side)
	body := grow(content, bezel)
	screenRadius := float64(iphoneBodyRadius) - bezel

	c.FillFrame(body, ports.UniformRadii(iphoneBodyRadius), content, ports.UniformRadii(screenRadius), bezelDark)
	c.FillFrame(grow(content, 2), ports.UniformRadii(screenRadius+2), content, ports.UniformRadii(screenRadius), screenBlack)

	const islandWidth, islandHeight = 90, 28
	island := ports.Rect{
		X: body.X + body.W/2 - islandWidth/2,
		Y: body.Y + bezel + 8,
		W: islandWidth,
		H: islandHeight,
	}
	c.FillRoundedRect(island, ports.UniformRadii(islandHeight/2), screenBlack)
}

func drawAndroid(c ports.Canvas, content ports.Rect, m Metrics) {
	bezel := float64(m.Side)
	body := grow(content, bezel)

	c.FillFrame(body, ports.UniformRadii(androidBodyRadius), content, ports.UniformRadii(androidBodyRadius-bezel), bezelDark)
	c.FillCircle(body.X+body.W/2, body.Y+bezel+16, 6, cameraBlack)
}

func grow(r ports.Rect, d float64) ports.Rect {
	return ports.Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}
