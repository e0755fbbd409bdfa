package summarizer

import (
	"testing"
	"time"

	"github.com/user/shotframe/pkg/pipeline"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithSource(t *testing.T) {
	summary := NewBuilder().
		WithSource("shot.png", "png", 200, 100, 4096).
		Build()

	want := SourceInfo{Name: "shot.png", Format: "png", Width: 200, Height: 100, Bytes: 4096}
	if summary.Source != want {
		t.Errorf("expected %+v, got %+v", want, summary.Source)
	}
}

func TestBuilder_WithSettings(t *testing.T) {
	s := pipeline.DefaultSettings()
	s.Mockup = pipeline.MockupIPhone
	s.Tilt = &pipeline.Tilt{RotateX: 5, RotateY: -10}
	s.Annotations = make([]pipeline.Annotation, 3)
	s.ShowWatermark = true

	got := NewBuilder().WithSettings("iphone-glass", s, true).Build().Settings

	if got.Preset != "iphone-glass" || got.Mockup != "iphone" || !got.Pro {
		t.Errorf("unexpected settings %+v", got)
	}
	if got.Tilt != "5.0° / -10.0°" {
		t.Errorf("unexpected tilt %q", got.Tilt)
	}
	if got.Annotations != 3 || !got.Watermark {
		t.Errorf("unexpected annotation/watermark info %+v", got)
	}
	if got.Background != "linear-gradient(135deg, #667eea 0%, #764ba2 100%)" {
		t.Errorf("unexpected background %q", got.Background)
	}
}

func TestBuilder_WithSettingsNoTilt(t *testing.T) {
	got := NewBuilder().WithSettings("", pipeline.DefaultSettings(), false).Build().Settings
	if got.Tilt != "none" {
		t.Errorf("expected no tilt, got %q", got.Tilt)
	}
}

func TestBuilder_WithOutput(t *testing.T) {
	out := pipeline.Output{Format: pipeline.FormatWebP, Data: make([]byte, 10), Width: 328, Height: 228}
	got := NewBuilder().WithOutput(out, "out/shot.webp", 1500*time.Millisecond).Build().Output

	want := OutputInfo{Format: "webp", Location: "out/shot.webp", Width: 328, Height: 228, Bytes: 10, DurationMs: 1500}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
