// Package shotframe provides a high-level API for beautifying screenshots.
package shotframe

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/shotframe/pkg/adapters/ggrenderer"
	"github.com/user/shotframe/pkg/adapters/logger"
	"github.com/user/shotframe/pkg/adapters/nullsink"
	"github.com/user/shotframe/pkg/catalog"
	"github.com/user/shotframe/pkg/orchestrator"
	"github.com/user/shotframe/pkg/pipeline"
)

// SettingsBuilder provides a fluent interface for building render settings.
// Errors from selectors are collected and reported by Build.
type SettingsBuilder struct {
	settings pipeline.Settings
	errs     []error
}

// NewSettingsBuilder creates a builder starting from the default settings.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{settings: pipeline.DefaultSettings()}
}

// NewSettingsBuilderFrom creates a builder starting from base, for example
// the settings of a configuration file.
func NewSettingsBuilderFrom(base pipeline.Settings) *SettingsBuilder {
	return &SettingsBuilder{settings: base}
}

// NewPresetBuilder creates a builder starting from a catalog preset.
func NewPresetBuilder(id string) *SettingsBuilder {
	b := NewSettingsBuilder()
	return b.WithPreset(id)
}

// Build returns the settings, normalized and validated.
func (b *SettingsBuilder) Build() (pipeline.Settings, error) {
	if err := errors.Join(b.errs...); err != nil {
		return pipeline.Settings{}, err
	}
	s := b.settings.Normalized()
	if err := s.Validate(); err != nil {
		return pipeline.Settings{}, fmt.Errorf("%w: %v", pipeline.ErrSettings, err)
	}
	return s, nil
}

// WithPreset applies a catalog preset over the current settings.
func (b *SettingsBuilder) WithPreset(id string) *SettingsBuilder {
	p, ok := catalog.PresetByID(id)
	if !ok {
		b.errs = append(b.errs, fmt.Errorf("%w: preset %q", catalog.ErrNotFound, id))
		return b
	}
	s, err := p.Apply(b.settings)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.settings = s
	return b
}

// WithBackground sets the background from a selector or color expression.
func (b *SettingsBuilder) WithBackground(selector string) *SettingsBuilder {
	bg, err := catalog.ResolveBackground(selector)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.settings.Background = bg
	return b
}

// WithPadding sets the padding around the screenshot (0-128).
func (b *SettingsBuilder) WithPadding(px int) *SettingsBuilder {
	b.settings.Padding = px
	return b
}

// WithBorderRadius sets the corner radius (0-64).
func (b *SettingsBuilder) WithBorderRadius(px int) *SettingsBuilder {
	b.settings.BorderRadius = px
	return b
}

// WithShadow sets the shadow strength.
func (b *SettingsBuilder) WithShadow(kind pipeline.ShadowKind) *SettingsBuilder {
	b.settings.Shadow = kind
	return b
}

// WithShadowOnMockup casts the shadow under device frames too.
func (b *SettingsBuilder) WithShadowOnMockup(on bool) *SettingsBuilder {
	b.settings.ShadowOnMockup = on
	return b
}

// WithMockup sets the device frame.
func (b *SettingsBuilder) WithMockup(t pipeline.MockupType) *SettingsBuilder {
	b.settings.Mockup = t
	return b
}

// WithFormat sets the output format.
func (b *SettingsBuilder) WithFormat(f pipeline.Format) *SettingsBuilder {
	b.settings.Format = f
	return b
}

// WithQuality sets the lossy encoder quality in (0,1].
func (b *SettingsBuilder) WithQuality(q float64) *SettingsBuilder {
	b.settings.Quality = q
	return b
}

// WithTilt sets the rotation in degrees. Values beyond ±15 are clamped.
func (b *SettingsBuilder) WithTilt(rotateX, rotateY float64) *SettingsBuilder {
	perspective := 1000.0
	if b.settings.Tilt != nil && b.settings.Tilt.Perspective > 0 {
		perspective = b.settings.Tilt.Perspective
	}
	b.settings.Tilt = &pipeline.Tilt{RotateX: rotateX, RotateY: rotateY, Perspective: perspective}
	return b
}

// WithAnnotation appends an annotation. Later annotations draw on top.
func (b *SettingsBuilder) WithAnnotation(a pipeline.Annotation) *SettingsBuilder {
	b.settings.Annotations = append(b.settings.Annotations, a)
	return b
}

// WithAnnotations replaces the annotation list.
func (b *SettingsBuilder) WithAnnotations(list []pipeline.Annotation) *SettingsBuilder {
	b.settings.Annotations = list
	return b
}

// WithoutWatermark disables the watermark.
func (b *SettingsBuilder) WithoutWatermark() *SettingsBuilder {
	b.settings.ShowWatermark = false
	b.settings.WatermarkText = ""
	return b
}

// WithWatermark enables the watermark. An empty text uses the default.
func (b *SettingsBuilder) WithWatermark(text string) *SettingsBuilder {
	b.settings.ShowWatermark = true
	b.settings.WatermarkText = text
	return b
}

// Render beautifies the encoded source image with the default engine and
// no logging.
func Render(ctx context.Context, source []byte, settings pipeline.Settings, kind pipeline.ReturnKind) (pipeline.Output, error) {
	orch := orchestrator.NewDefault(ggrenderer.New(), nullsink.New(), logger.NewNoop())
	return orch.Render(ctx, pipeline.RenderInput{Source: source, Settings: settings, Kind: kind})
}
