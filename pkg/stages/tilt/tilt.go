// Package tilt approximates a 3-D rotation of the composited screenshot
// with an affine shear about the canvas center.
package tilt

import (
	"context"
	"math"

	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

// ShearFactor scales a rotation in radians to a shear coefficient.
const ShearFactor = 0.2

// Shear returns the shear coefficients (sx, sy) of a tilt: x' = x + sx·y
// and y' = sy·x + y. A nil tilt has no shear. Angles are clamped to
// ±MaxTiltDegrees.
func Shear(t *pipeline.Tilt) (sx, sy float64) {
	if !t.Active() {
		return 0, 0
	}
	rx := clamp(t.RotateX) * math.Pi / 180
	ry := clamp(t.RotateY) * math.Pi / 180
	return rx * ShearFactor, ry * ShearFactor
}

func clamp(deg float64) float64 {
	return math.Max(-pipeline.MaxTiltDegrees, math.Min(pipeline.MaxTiltDegrees, deg))
}

// Apply multiplies the canvas transform by the tilt shear about the
// center of a width×height canvas. An inactive tilt leaves the transform
// unchanged.
func Apply(c ports.Canvas, t *pipeline.Tilt, width, height int) {
	if !t.Active() {
		return
	}
	sx, sy := Shear(t)
	c.ShearAbout(sx, sy, float64(width)/2, float64(height)/2)
}

// Stage runs its inner stages under the tilt transform and restores the
// canvas state afterwards, whatever the outcome.
type Stage struct {
	logger ports.Logger
	inner  []pipeline.Stage[pipeline.Scene, pipeline.Scene]
}

// NewStage creates a tilt stage wrapping inner, which run in order.
func NewStage(logger ports.Logger, inner ...pipeline.Stage[pipeline.Scene, pipeline.Scene]) *Stage {
	return &Stage{
		logger: logger.WithComponent("tilt"),
		inner:  inner,
	}
}

// Execute pushes the canvas state, applies the tilt and runs the inner
// stages. The context is checked before each inner stage.
func (s *Stage) Execute(ctx context.Context, scene pipeline.Scene) (pipeline.Scene, error) {
	c := scene.Canvas
	c.Push()
	defer c.Pop()

	if t := scene.Settings.Tilt; t.Active() {
		s.logger.Debug("Tilting by %.1f, %.1f degrees", t.RotateX, t.RotateY)
		Apply(c, t, c.Width(), c.Height())
	}

	var err error
	for _, stage := range s.inner {
		if err = ctx.Err(); err != nil {
			return scene, err
		}
		if scene, err = stage.Execute(ctx, scene); err != nil {
			return scene, err
		}
	}
	return scene, nil
}
