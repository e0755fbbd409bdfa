// Package watermark stamps the attribution text in the bottom-right corner.
package watermark

import (
	"context"
	"image/color"
	"math"

	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

const (
	MarginRight  = 12
	MarginBottom = 10

	MinFontSize = 12.0
	MaxFontSize = 16.0
)

var (
	textColor = color.NRGBA{R: 255, G: 255, B: 255, A: 128}
	shadow    = ports.Shadow{Color: color.NRGBA{A: 77}, Blur: 4, OffsetX: 1, OffsetY: 1}
)

// FontSize returns the watermark size for a canvas width: width/40,
// kept within [MinFontSize, MaxFontSize].
func FontSize(canvasWidth int) float64 {
	return math.Max(MinFontSize, math.Min(MaxFontSize, float64(canvasWidth)/40))
}

// Stamp draws text right- and bottom-aligned near the corner of c. The
// position is in user space, so callers stamp after popping any tilt.
func Stamp(c ports.Canvas, text string) {
	if text == "" {
		text = pipeline.DefaultWatermarkText
	}
	c.Push()
	defer c.Pop()
	c.SetShadow(shadow)
	c.DrawText(text, float64(c.Width()-MarginRight), float64(c.Height()-MarginBottom), ports.TextStyle{
		FontSize: FontSize(c.Width()),
		Color:    textColor,
		Align:    ports.AlignRight,
		Baseline: ports.BaselineBottom,
	})
}

// Stage stamps the watermark when the settings ask for it.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new watermark stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{logger: logger.WithComponent("watermark")}
}

// Execute stamps the watermark if ShowWatermark is set.
func (s *Stage) Execute(ctx context.Context, scene pipeline.Scene) (pipeline.Scene, error) {
	if !scene.Settings.ShowWatermark {
		return scene, nil
	}
	s.logger.Debug("Stamping watermark")
	Stamp(scene.Canvas, scene.Settings.WatermarkText)
	return scene, nil
}
