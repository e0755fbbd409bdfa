package mockup

import (
	"context"

	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

// Stage draws the selected frame around the placed image.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new mockup stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{logger: logger.WithComponent("mockup")}
}

// Execute draws the frame. A scene without a mockup passes through.
func (s *Stage) Execute(ctx context.Context, scene pipeline.Scene) (pipeline.Scene, error) {
	t := scene.Settings.Mockup
	if !Framed(t) {
		return scene, nil
	}
	s.logger.Debug("Drawing %s frame", t)
	Draw(scene.Canvas, t, scene.Layout.Image.Rect(), float64(scene.Settings.BorderRadius))
	return scene, nil
}
