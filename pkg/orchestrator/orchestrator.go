// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ideamans/go-l10n"
	"github.com/jinzhu/copier"

	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
	"github.com/user/shotframe/pkg/stages/annotate"
	"github.com/user/shotframe/pkg/stages/background"
	"github.com/user/shotframe/pkg/stages/composite"
	"github.com/user/shotframe/pkg/stages/encode"
	"github.com/user/shotframe/pkg/stages/layout"
	"github.com/user/shotframe/pkg/stages/mockup"
	"github.com/user/shotframe/pkg/stages/tilt"
	"github.com/user/shotframe/pkg/stages/watermark"
)

// Step is a named drawing stage. The name labels debug snapshots.
type Step struct {
	Name  string
	Stage pipeline.Stage[pipeline.Scene, pipeline.Scene]
}

// Orchestrator coordinates the execution of all pipeline stages.
// It holds no per-render state and is safe for concurrent use.
type Orchestrator struct {
	renderer    ports.Renderer
	layoutStage pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult]
	steps       []Step
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.Output]
	sink        ports.DebugSink
	logger      ports.Logger
}

// New creates a new Orchestrator. Steps run in order on the canvas
// allocated for each render.
func New(
	renderer ports.Renderer,
	layoutStage pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult],
	steps []Step,
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.Output],
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		renderer:    renderer,
		layoutStage: layoutStage,
		steps:       steps,
		encodeStage: encodeStage,
		sink:        sink,
		logger:      logger,
	}
}

// NewDefault wires the standard stage order: background, then the tilted
// group (shadow and image, frame, annotations), then the watermark.
func NewDefault(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Orchestrator {
	tilted := tilt.NewStage(logger,
		composite.NewStage(logger),
		mockup.NewStage(logger),
		annotate.NewStage(logger),
	)
	steps := []Step{
		{Name: "background", Stage: background.NewStage(renderer, logger)},
		{Name: "scene", Stage: tilted},
		{Name: "watermark", Stage: watermark.NewStage(logger)},
	}
	return New(renderer, layout.NewStage(), steps, encode.NewStage(renderer, logger), sink, logger)
}

// Render composites the source image as described by the settings and
// encodes the result. The caller's settings are never modified.
func (o *Orchestrator) Render(ctx context.Context, input pipeline.RenderInput) (pipeline.Output, error) {
	settings, err := prepareSettings(input.Settings)
	if err != nil {
		return pipeline.Output{}, err
	}

	if err := ctx.Err(); err != nil {
		return pipeline.Output{}, err
	}
	src, format, err := o.renderer.DecodeImage(input.Source)
	if err != nil {
		o.logger.Error(l10n.F("Failed to decode source: %s", err))
		return pipeline.Output{}, fmt.Errorf("%w: %v", pipeline.ErrDecode, err)
	}
	b := src.Bounds()
	o.logger.Info(l10n.F("Decoded %s source: %dx%d", format, b.Dx(), b.Dy()))

	lay, err := o.layoutStage.Execute(ctx, pipeline.LayoutInput{
		ImageWidth:  b.Dx(),
		ImageHeight: b.Dy(),
		Padding:     settings.Padding,
		Mockup:      settings.Mockup,
	})
	if err != nil {
		return pipeline.Output{}, fmt.Errorf("layout stage: %w", err)
	}
	o.logger.Info(l10n.F("Layout calculated: %dx%d canvas", lay.Canvas.Width, lay.Canvas.Height))
	o.saveDebugJSON(settings, lay)

	canvas, err := o.renderer.CreateCanvas(lay.Canvas.Width, lay.Canvas.Height)
	if err != nil {
		o.logger.Error(l10n.F("Failed to allocate %dx%d surface: %s", lay.Canvas.Width, lay.Canvas.Height, err))
		return pipeline.Output{}, fmt.Errorf("%w: %v", pipeline.ErrSurface, err)
	}

	scene := pipeline.Scene{
		Canvas:   canvas,
		Source:   src,
		Layout:   lay,
		Settings: settings,
		Rand:     input.Rand,
	}
	for i, step := range o.steps {
		if err := ctx.Err(); err != nil {
			return pipeline.Output{}, err
		}
		if scene, err = step.Stage.Execute(ctx, scene); err != nil {
			o.logger.Error(l10n.F("Stage %s failed: %s", step.Name, err))
			return pipeline.Output{}, fmt.Errorf("%s stage: %w", step.Name, err)
		}
		if o.sink.Enabled() {
			if err := o.sink.SaveStage(i, step.Name, canvas.ToImage()); err != nil {
				o.logger.Warn(l10n.F("Failed to save debug output: %s", err))
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return pipeline.Output{}, err
	}
	out, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		Image:   canvas.ToImage(),
		Format:  settings.Format,
		Quality: settings.Quality,
		Kind:    input.Kind,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode image: %s", err))
		return pipeline.Output{}, fmt.Errorf("encode stage: %w", err)
	}
	o.logger.Info(l10n.F("Rendered %s: %d bytes", out.Format, len(out.Data)))
	return out, nil
}

// Export re-encodes an image in another format without styling.
func (o *Orchestrator) Export(ctx context.Context, source []byte, format pipeline.Format, quality float64) (pipeline.Output, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.Output{}, err
	}
	img, src, err := o.renderer.DecodeImage(source)
	if err != nil {
		o.logger.Error(l10n.F("Failed to decode source: %s", err))
		return pipeline.Output{}, fmt.Errorf("%w: %v", pipeline.ErrDecode, err)
	}
	o.logger.Info(l10n.F("Exporting %s as %s", src, format))

	out, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{Image: img, Format: format, Quality: quality})
	if err != nil {
		return pipeline.Output{}, fmt.Errorf("encode stage: %w", err)
	}
	return out, nil
}

// prepareSettings deep-copies, normalizes and validates the caller's
// settings so no stage can alias the caller's slices or pointers.
func prepareSettings(in pipeline.Settings) (pipeline.Settings, error) {
	var s pipeline.Settings
	if err := copier.CopyWithOption(&s, &in, copier.Option{DeepCopy: true}); err != nil {
		return pipeline.Settings{}, fmt.Errorf("copy settings: %w", err)
	}
	s = s.Normalized()
	if err := s.Validate(); err != nil {
		return pipeline.Settings{}, fmt.Errorf("%w: %v", pipeline.ErrSettings, err)
	}
	return s, nil
}

func (o *Orchestrator) saveDebugJSON(settings pipeline.Settings, lay pipeline.LayoutResult) {
	if !o.sink.Enabled() {
		return
	}
	if data, err := json.MarshalIndent(lay, "", "  "); err == nil {
		if err := o.sink.SaveLayoutJSON(data); err != nil {
			o.logger.Warn(l10n.F("Failed to save debug output: %s", err))
		}
	}
	if data, err := json.MarshalIndent(settings, "", "  "); err == nil {
		if err := o.sink.SaveSettingsJSON(data); err != nil {
			o.logger.Warn(l10n.F("Failed to save debug output: %s", err))
		}
	}
}
