// Package composite implements the shadow and clip compositing stage.
package composite

import (
	"context"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
	"github.com/user/shotframe/pkg/stages/mockup"
)

// ShadowColor is the color of every drop shadow.
var ShadowColor = color.NRGBA{A: 77} // rgba(0,0,0,0.3)

// SilhouetteColor fills the shape that casts the shadow.
var SilhouetteColor = color.White

var shadows = map[pipeline.ShadowKind]ports.Shadow{
	pipeline.ShadowSoft:   {Color: ShadowColor, Blur: 40, OffsetY: 20},
	pipeline.ShadowMedium: {Color: ShadowColor, Blur: 60, OffsetY: 30},
	pipeline.ShadowHard:   {Color: ShadowColor, Blur: 80, OffsetY: 40},
}

// ShadowFor returns the drop shadow of a kind. ok is false for
// ShadowNone and unknown kinds.
func ShadowFor(kind pipeline.ShadowKind) (s ports.Shadow, ok bool) {
	s, ok = shadows[kind]
	return s, ok
}

// Glare stops: a thin white band across the diagonal.
var glareStops = []ports.ColorStop{
	{Offset: 0, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 0}},
	{Offset: 0.45, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 0}},
	{Offset: 0.5, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 51}},
	{Offset: 0.55, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 26}},
	{Offset: 0.6, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 0}},
	{Offset: 1, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 0}},
}

// Stage draws the drop shadow and the clipped source image.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new composite stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{logger: logger.WithComponent("composite")}
}

// Execute draws the shadow, then the source image clipped to its rounded
// rectangle, then the glare when the scene is tilted.
func (s *Stage) Execute(ctx context.Context, scene pipeline.Scene) (pipeline.Scene, error) {
	st := scene.Settings
	radius := float64(st.BorderRadius)

	if DrawsShadow(st) {
		sh, _ := ShadowFor(st.Shadow)
		r, radii := mockup.Silhouette(st.Mockup, scene.Layout, radius)
		s.logger.Debug("Casting %s shadow, blur %.0f", st.Shadow, sh.Blur)
		CastShadow(scene.Canvas, r, radii, sh)
	}

	img := scene.Layout.Image
	DrawClipped(scene.Canvas, scene.Source, img.Rect(), mockup.ContentRadii(st.Mockup, radius), st.Tilt.Active())
	return scene, nil
}

// DrawsShadow reports whether settings call for a drop shadow. A frame
// suppresses the shadow unless ShadowOnMockup is set.
func DrawsShadow(st pipeline.Settings) bool {
	if _, ok := ShadowFor(st.Shadow); !ok {
		return false
	}
	return st.Mockup == pipeline.MockupNone || st.ShadowOnMockup
}

// CastShadow fills the silhouette with SilhouetteColor while the shadow is
// active. The canvas state is restored afterwards.
func CastShadow(c ports.Canvas, r ports.Rect, radii ports.CornerRadii, sh ports.Shadow) {
	c.Push()
	defer c.Pop()
	c.SetShadow(sh)
	c.FillRoundedRect(r, radii, SilhouetteColor)
}

// DrawClipped blits src unscaled at r's origin, clipped to the rounded
// rectangle r. With glare set, the diagonal highlight is laid over the
// image inside the same clip.
func DrawClipped(c ports.Canvas, src image.Image, r ports.Rect, radii ports.CornerRadii, glare bool) {
	c.Push()
	defer c.Pop()
	c.ClipRoundedRect(r, radii)
	c.DrawImage(zeroOrigin(src), int(r.X), int(r.Y))
	if glare {
		c.FillLinearGradient(r, ports.LinearGradient{
			X0: r.X, Y0: r.Y,
			X1: r.X + r.W, Y1: r.Y + r.H,
			Stops: glareStops,
		})
	}
}

// zeroOrigin returns img with bounds starting at (0,0); drawing helpers
// place the image by its Min point.
func zeroOrigin(img image.Image) image.Image {
	b := img.Bounds()
	if b.Min == (image.Point{}) {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)
	return dst
}
