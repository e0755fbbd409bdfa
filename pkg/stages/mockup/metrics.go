// Package mockup draws device and window frames around the placed image.
package mockup

import (
	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

// FloatingMargin is the space kept around any frame so the framed device
// floats on the background.
const FloatingMargin = 40

// Metrics is the space a frame adds around the content, in pixels.
type Metrics struct {
	Top    int // title bar or top bezel
	Side   int // left and right bezel each
	Bottom int // bottom bezel
	Base   int // hinge base below the bottom bezel

	// BaseOverhang is how far the base protrudes past each side of the
	// bezel. It lies inside the floating margin.
	BaseOverhang int
}

var metrics = map[pipeline.MockupType]Metrics{
	pipeline.MockupBrowser:   {Top: 32},
	pipeline.MockupOSChromeA: {Top: 38},
	pipeline.MockupOSChromeB: {Top: 40},
	pipeline.MockupMacBook:   {Top: 24, Side: 12, Bottom: 12, Base: 16, BaseOverhang: 20},
	pipeline.MockupIPhone:    {Top: 12, Side: 12, Bottom: 12},
	pipeline.MockupAndroid:   {Top: 8, Side: 8, Bottom: 8},
}

// MetricsFor returns the frame metrics of a mockup type. Unknown types
// and MockupNone have zero metrics.
func MetricsFor(t pipeline.MockupType) Metrics {
	return metrics[t]
}

// Framed reports whether t draws a frame.
func Framed(t pipeline.MockupType) bool {
	_, ok := metrics[t]
	return ok
}

// StripOnly reports whether t is a title-bar frame without bezels.
func StripOnly(t pipeline.MockupType) bool {
	m, ok := metrics[t]
	return ok && m.Side == 0 && m.Bottom == 0
}

// DeltaWidth returns how much wider than imgW + 2·padding the canvas is.
func DeltaWidth(t pipeline.MockupType) int {
	if !Framed(t) {
		return 0
	}
	m := MetricsFor(t)
	return 2*m.Side + 2*FloatingMargin
}

// DeltaHeight returns how much taller than imgH + 2·padding the canvas is.
func DeltaHeight(t pipeline.MockupType) int {
	if !Framed(t) {
		return 0
	}
	m := MetricsFor(t)
	return m.Top + m.Bottom + m.Base + 2*FloatingMargin
}

// ContentRadii returns the clip radii of the placed image. Title-bar frames
// square off the top corners so the image meets the bar.
func ContentRadii(t pipeline.MockupType, radius float64) ports.CornerRadii {
	if StripOnly(t) {
		return ports.BottomRadii(radius)
	}
	return ports.UniformRadii(radius)
}

// Silhouette returns the outline that casts the drop shadow: the content
// itself, or the whole device body when a frame is drawn.
func Silhouette(t pipeline.MockupType, layout pipeline.LayoutResult, radius float64) (ports.Rect, ports.CornerRadii) {
	if !Framed(t) {
		return layout.Image.Rect(), ports.UniformRadii(radius)
	}
	m := MetricsFor(t)
	body := layout.Frame.Rect()
	body.H -= float64(m.Base)
	switch t {
	case pipeline.MockupIPhone:
		return body, ports.UniformRadii(iphoneBodyRadius)
	case pipeline.MockupAndroid:
		return body, ports.UniformRadii(androidBodyRadius)
	case pipeline.MockupMacBook:
		return body, ports.TopRadii(radius + 4)
	default:
		return body, ports.UniformRadii(radius)
	}
}
