// Package background paints the canvas background: a flat color, a linear
// gradient, or a mesh gradient with optional noise.
package background

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

// FallbackColor fills the canvas when a gradient has fewer than two
// usable colors.
var FallbackColor = color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 255}

// MeshRadiusFactor scales the larger canvas side to the radius of each
// mesh color point.
const MeshRadiusFactor = 0.8

// Stage fills the canvas background.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new background stage. The renderer allocates the
// offscreen layers of mesh gradients.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("background"),
	}
}

// Execute paints the background over the whole canvas.
func (s *Stage) Execute(ctx context.Context, scene pipeline.Scene) (pipeline.Scene, error) {
	bg := scene.Settings.Background
	s.logger.Debug("Painting %s background", bg.Kind)
	if err := Draw(scene.Canvas, bg, scene.Rand, s.renderer.CreateCanvas); err != nil {
		return scene, err
	}
	return scene, nil
}

// LayerFunc allocates an offscreen canvas.
type LayerFunc func(width, height int) (ports.Canvas, error)

// Draw paints bg over the whole canvas. rng drives mesh noise; a nil rng
// uses a time-seeded source.
func Draw(c ports.Canvas, bg pipeline.Background, rng *rand.Rand, newLayer LayerFunc) error {
	switch bg.Kind {
	case pipeline.BackgroundLinear:
		DrawLinear(c, bg.Colors, bg.GradientAngle())
		return nil
	case pipeline.BackgroundMesh:
		return DrawMesh(c, bg.Points, bg.Noise, rng, newLayer)
	default:
		DrawFlat(c, pipeline.MustColor(bg.Color, FallbackColor))
		return nil
	}
}

func fullRect(c ports.Canvas) ports.Rect {
	return ports.Rect{W: float64(c.Width()), H: float64(c.Height())}
}

// DrawFlat fills the canvas with one color.
func DrawFlat(c ports.Canvas, col color.Color) {
	c.FillRect(fullRect(c), col)
}

// DrawLinear fills the canvas with a linear gradient. The gradient line
// runs through the canvas center at angle−90 degrees, and the colors are
// spaced evenly. Unparseable colors are skipped.
func DrawLinear(c ports.Canvas, colors []string, angle float64) {
	var parsed []color.NRGBA
	for _, s := range colors {
		if col, err := pipeline.ParseColor(s); err == nil {
			parsed = append(parsed, col)
		}
	}
	if len(parsed) < 2 {
		DrawFlat(c, FallbackColor)
		return
	}

	w, h := float64(c.Width()), float64(c.Height())
	rad := (angle - 90) * math.Pi / 180
	dx, dy := math.Cos(rad)*w/2, math.Sin(rad)*h/2

	stops := make([]ports.ColorStop, len(parsed))
	for i, col := range parsed {
		stops[i] = ports.ColorStop{Offset: float64(i) / float64(len(parsed)-1), Color: col}
	}

	c.FillLinearGradient(fullRect(c), ports.LinearGradient{
		X0: w/2 - dx, Y0: h/2 - dy,
		X1: w/2 + dx, Y1: h/2 + dy,
		Stops: stops,
	})
}

// DrawMesh fills the canvas with the first point color, screen-blends a
// radial gradient per point on top, then adds noise when noise > 0.
func DrawMesh(c ports.Canvas, points []pipeline.MeshPoint, noise float64, rng *rand.Rand, newLayer LayerFunc) error {
	if len(points) == 0 {
		DrawFlat(c, FallbackColor)
		return nil
	}

	w, h := c.Width(), c.Height()
	DrawFlat(c, pipeline.MustColor(points[0].Color, FallbackColor))

	radius := math.Max(float64(w), float64(h)) * MeshRadiusFactor
	for i, p := range points {
		col, err := pipeline.ParseColor(p.Color)
		if err != nil {
			continue
		}
		layer, err := newLayer(w, h)
		if err != nil {
			return fmt.Errorf("mesh layer %d: %w", i, err)
		}
		cx, cy := p.X*float64(w), p.Y*float64(h)
		layer.FillRadialGradient(fullRect(layer), ports.RadialGradient{
			X0: cx, Y0: cy, R0: 0,
			X1: cx, Y1: cy, R1: radius,
			Stops: []ports.ColorStop{
				{Offset: 0, Color: col},
				{Offset: 1, Color: color.NRGBA{}},
			},
		})
		c.BlendImage(layer.ToImage(), ports.BlendScreen)
	}

	if noise > 0 {
		if rng == nil {
			rng = NewRand(uint64(time.Now().UnixNano()))
		}
		AddNoise(c.Pixels(), noise, rng)
	}
	return nil
}

// NewRand returns a deterministic random source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// AddNoise offsets every pixel by one uniform value in
// [−amount·255/2, +amount·255/2], applied to R, G and B alike and clamped.
// Alpha is left untouched; channels stay within alpha so the premultiplied
// pixel remains valid.
func AddNoise(img *image.RGBA, amount float64, rng *rand.Rand) {
	if amount <= 0 {
		return
	}
	pix := img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		n := (rng.Float64() - 0.5) * amount * 255
		limit := float64(pix[i+3])
		for k := 0; k < 3; k++ {
			v := math.Round(float64(pix[i+k]) + n)
			pix[i+k] = uint8(math.Max(0, math.Min(limit, v)))
		}
	}
}
