package summarizer

import (
	"time"

	"github.com/user/shotframe/pkg/pipeline"
)

// Summary describes one render from source to saved output.
type Summary struct {
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`

	Source   SourceInfo   `json:"source" yaml:"source"`
	Settings SettingsInfo `json:"settings" yaml:"settings"`
	Output   OutputInfo   `json:"output" yaml:"output"`
}

// SourceInfo describes the input screenshot.
type SourceInfo struct {
	Name   string `json:"name" yaml:"name"`
	Format string `json:"format" yaml:"format"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	Bytes  int    `json:"bytes" yaml:"bytes"`
}

// SettingsInfo is the styling that was applied.
type SettingsInfo struct {
	Preset      string `json:"preset" yaml:"preset"`
	Background  string `json:"background" yaml:"background"`
	Padding     int    `json:"padding" yaml:"padding"`
	Radius      int    `json:"radius" yaml:"radius"`
	Shadow      string `json:"shadow" yaml:"shadow"`
	Mockup      string `json:"mockup" yaml:"mockup"`
	Tilt        string `json:"tilt" yaml:"tilt"`
	Annotations int    `json:"annotations" yaml:"annotations"`
	Watermark   bool   `json:"watermark" yaml:"watermark"`
	Pro         bool   `json:"pro" yaml:"pro"`
}

// OutputInfo describes the encoded result.
type OutputInfo struct {
	Format     string `json:"format" yaml:"format"`
	Location   string `json:"location" yaml:"location"`
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	Bytes      int    `json:"bytes" yaml:"bytes"`
	DurationMs int64  `json:"durationMs" yaml:"durationMs"`
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets the input description.
func (b *Builder) WithSource(name, format string, width, height, size int) *Builder {
	b.summary.Source = SourceInfo{Name: name, Format: format, Width: width, Height: height, Bytes: size}
	return b
}

// WithSettings records the effective render settings.
func (b *Builder) WithSettings(preset string, s pipeline.Settings, pro bool) *Builder {
	tilt := "none"
	if s.Tilt.Active() {
		tilt = formatTilt(s.Tilt.RotateX, s.Tilt.RotateY)
	}
	b.summary.Settings = SettingsInfo{
		Preset:      preset,
		Background:  s.Background.String(),
		Padding:     s.Padding,
		Radius:      s.BorderRadius,
		Shadow:      string(s.Shadow),
		Mockup:      string(s.Mockup),
		Tilt:        tilt,
		Annotations: len(s.Annotations),
		Watermark:   s.ShowWatermark,
		Pro:         pro,
	}
	return b
}

// WithOutput records the encoded output and where it was saved.
func (b *Builder) WithOutput(out pipeline.Output, location string, elapsed time.Duration) *Builder {
	b.summary.Output = OutputInfo{
		Format:     string(out.Format),
		Location:   location,
		Width:      out.Width,
		Height:     out.Height,
		Bytes:      len(out.Data),
		DurationMs: elapsed.Milliseconds(),
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
