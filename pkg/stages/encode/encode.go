// Package encode implements the image encoding stage.
package encode

import (
	"context"
	"fmt"

	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

// Stage serializes the finished surface.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("encode"),
	}
}

// Execute encodes the image. A quality outside (0,1] falls back to
// pipeline.DefaultQuality; lossless formats ignore it.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.Output, error) {
	if input.Image == nil {
		return pipeline.Output{}, fmt.Errorf("%w: no image", pipeline.ErrEncode)
	}
	format := input.Format
	if format == "" {
		format = pipeline.FormatPNG
	}
	quality := input.Quality
	if quality <= 0 || quality > 1 {
		quality = pipeline.DefaultQuality
	}

	b := input.Image.Bounds()
	s.logger.Debug("Encoding %dx%d as %s (quality %.2f)", b.Dx(), b.Dy(), format, quality)

	codec := format.ImageFormat()
	data, err := s.renderer.EncodeImage(input.Image, codec, quality)
	if err != nil {
		return pipeline.Output{}, fmt.Errorf("%w: %s: %v", pipeline.ErrEncode, format, err)
	}

	s.logger.Debug("Encoded %d bytes", len(data))
	return pipeline.Output{
		Kind:   input.Kind,
		Format: format,
		MIME:   codec.MIME(),
		Data:   data,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}
