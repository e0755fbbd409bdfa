// Package layout implements the layout calculation stage.
package layout

import (
	"context"

	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/stages/mockup"
)

// Stage calculates the canvas size and the placement of the source image.
// This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new layout stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute calculates the layout based on the input parameters.
func (s *Stage) Execute(ctx context.Context, input pipeline.LayoutInput) (pipeline.LayoutResult, error) {
	return ComputeLayout(input), nil
}

// ComputeLayout performs the layout calculation.
// This is exposed as a standalone function for testing and reuse.
//
// The canvas is the image plus padding on every side. A frame adds its
// title bar or bezels, then a floating margin on every side:
//
//	canvasW = imgW + 2·padding + 2·side + 2·margin
//	canvasH = imgH + 2·padding + top + bottom + base + 2·margin
func ComputeLayout(input pipeline.LayoutInput) pipeline.LayoutResult {
	padding := input.Padding
	if padding < 0 {
		padding = 0
	}

	canvasW := input.ImageWidth + 2*padding
	canvasH := input.ImageHeight + 2*padding
	offsetX, offsetY := padding, padding

	var frame pipeline.Rectangle
	if mockup.Framed(input.Mockup) {
		m := mockup.MetricsFor(input.Mockup)

		canvasW += 2*m.Side + 2*mockup.FloatingMargin
		canvasH += m.Top + m.Bottom + m.Base + 2*mockup.FloatingMargin
		offsetX += m.Side + mockup.FloatingMargin
		offsetY += m.Top + mockup.FloatingMargin

		frame = pipeline.Rectangle{
			X:      offsetX - m.Side,
			Y:      offsetY - m.Top,
			Width:  input.ImageWidth + 2*m.Side,
			Height: input.ImageHeight + m.Top + m.Bottom + m.Base,
		}
	}

	return pipeline.LayoutResult{
		Canvas: pipeline.Dimension{Width: canvasW, Height: canvasH},
		Image: pipeline.Rectangle{
			X:      offsetX,
			Y:      offsetY,
			Width:  input.ImageWidth,
			Height: input.ImageHeight,
		},
		Frame: frame,
	}
}
