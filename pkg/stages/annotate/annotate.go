// Package annotate draws user annotations over the composited image and
// keeps the editing layer that produces them.
package annotate

import (
	"context"
	"image/color"
	"math"

	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

const (
	// BlurRadius is the Gaussian radius of redaction blurs.
	BlurRadius = 15.0

	// RectStrokeWidth is the outline width of rect annotations.
	RectStrokeWidth = 3.0

	// DefaultFontSize is the text size when an annotation sets none.
	DefaultFontSize = 24.0

	ArrowWidth      = 4.0
	ArrowCurve      = 30.0 // control point offset perpendicular to the arrow
	ArrowHeadLength = 15.0
	ArrowHeadSpread = math.Pi / 6
)

var (
	// BlurTint darkens redacted regions slightly.
	BlurTint = color.NRGBA{A: 26}

	DefaultStrokeColor = color.NRGBA{R: 255, A: 255}
	DefaultTextColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	textShadow = ports.Shadow{Color: color.NRGBA{A: 128}, Blur: 4}
)

// Stage replays the annotation list of a scene.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new annotate stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{logger: logger.WithComponent("annotate")}
}

// Execute draws every annotation in order, in the coordinate space of the
// placed image.
func (s *Stage) Execute(ctx context.Context, scene pipeline.Scene) (pipeline.Scene, error) {
	anns := scene.Settings.Annotations
	if len(anns) == 0 {
		return scene, nil
	}
	s.logger.Debug("Drawing %d annotations", len(anns))

	img := scene.Layout.Image
	c := scene.Canvas
	c.Push()
	defer c.Pop()
	c.Translate(float64(img.X), float64(img.Y))
	for _, a := range anns {
		Draw(c, a)
	}
	return scene, nil
}

// Draw renders one annotation. Annotations without the data their type
// needs (an empty region, no text, fewer than two arrow points) draw
// nothing.
func Draw(c ports.Canvas, a pipeline.Annotation) {
	c.Push()
	defer c.Pop()

	switch a.Type {
	case pipeline.AnnotationBlur:
		drawBlur(c, a)
	case pipeline.AnnotationRect:
		drawRect(c, a)
	case pipeline.AnnotationText:
		drawText(c, a)
	case pipeline.AnnotationArrow:
		drawArrow(c, a)
	}
}

func drawBlur(c ports.Canvas, a pipeline.Annotation) {
	r := a.Bounds()
	if r.Empty() {
		return
	}
	c.Push()
	c.ClipRect(r)
	c.BlurRect(r, BlurRadius)
	c.Pop()
	c.FillRect(r, BlurTint)
}

func drawRect(c ports.Canvas, a pipeline.Annotation) {
	r := a.Bounds()
	if r.Empty() {
		return
	}
	c.StrokeRect(r, ports.StrokeStyle{
		Color: pipeline.MustColor(a.Color, DefaultStrokeColor),
		Width: RectStrokeWidth,
	})
}

func drawText(c ports.Canvas, a pipeline.Annotation) {
	if a.Text == "" {
		return
	}
	size := a.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	c.SetShadow(textShadow)
	c.DrawText(a.Text, a.X, a.Y, ports.TextStyle{
		FontSize: size,
		Bold:     true,
		Color:    pipeline.MustColor(a.Color, DefaultTextColor),
	})
}

func drawArrow(c ports.Canvas, a pipeline.Annotation) {
	from, ctrl, to, ok := ArrowPath(a)
	if !ok {
		return
	}
	style := ports.StrokeStyle{
		Color: pipeline.MustColor(a.Color, DefaultStrokeColor),
		Width: ArrowWidth,
		Cap:   ports.CapRound,
	}
	c.StrokeQuadratic(from, ctrl, to, style)
	left, right := ArrowHead(from, to)
	c.StrokeLine(to, left, style)
	c.StrokeLine(to, right, style)
}

// ArrowPath returns the curve of an arrow annotation: it starts at the
// anchor, ends at anchor + Points[1] and bends towards the control point.
// ok is false when the annotation has fewer than two points.
func ArrowPath(a pipeline.Annotation) (from, ctrl, to ports.Point, ok bool) {
	if len(a.Points) < 2 {
		return from, ctrl, to, false
	}
	from = ports.Point{X: a.X, Y: a.Y}
	to = ports.Point{X: a.X + a.Points[1].X, Y: a.Y + a.Points[1].Y}
	angle := math.Atan2(to.Y-from.Y, to.X-from.X)
	ctrl = ports.Point{
		X: (from.X+to.X)/2 + math.Sin(angle)*ArrowCurve,
		Y: (from.Y+to.Y)/2 - math.Cos(angle)*ArrowCurve,
	}
	return from, ctrl, to, true
}

// ArrowHead returns the far ends of the two head strokes at tip. The head
// follows the straight from→to direction, not the curve tangent.
func ArrowHead(from, tip ports.Point) (left, right ports.Point) {
	angle := math.Atan2(tip.Y-from.Y, tip.X-from.X)
	left = ports.Point{
		X: tip.X - ArrowHeadLength*math.Cos(angle-ArrowHeadSpread),
		Y: tip.Y - ArrowHeadLength*math.Sin(angle-ArrowHeadSpread),
	}
	right = ports.Point{
		X: tip.X - ArrowHeadLength*math.Cos(angle+ArrowHeadSpread),
		Y: tip.Y - ArrowHeadLength*math.Sin(angle+ArrowHeadSpread),
	}
	return left, right
}
