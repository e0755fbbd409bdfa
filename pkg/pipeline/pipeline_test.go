package pipeline

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#fff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#667eea", color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 255}},
		{"#00000080", color.NRGBA{A: 0x80}},
		{"rgba(0, 0, 0, 0.5)", color.NRGBA{A: 128}},
		{"rgb(255, 0, 0)", color.NRGBA{R: 255, A: 255}},
		{" White ", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"transparent", color.NRGBA{}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#ggg", "hsl(0, 0%, 0%)"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) expected error", bad)
		}
	}
}

func TestParseBackground(t *testing.T) {
	bg, err := ParseBackground("linear-gradient(90deg, #ff0000 0%, #00ff00 50%, #0000ff 100%)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bg.Kind != BackgroundLinear || len(bg.Colors) != 3 || bg.GradientAngle() != 90 {
		t.Errorf("unexpected gradient: %+v", bg)
	}

	bg, err = ParseBackground("linear-gradient(#111, #222)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bg.GradientAngle() != DefaultGradientAngle {
		t.Errorf("GradientAngle = %v, want default", bg.GradientAngle())
	}

	bg, err = ParseBackground("#123456")
	if err != nil || bg.Kind != BackgroundFlat {
		t.Errorf("flat background: %+v, %v", bg, err)
	}

	if _, err := ParseBackground("nonsense"); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestBackgroundString(t *testing.T) {
	got := LinearBackground([]string{"#667eea", "#764ba2"}, 135).String()
	want := "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSettingsNormalized(t *testing.T) {
	s := Settings{
		Padding:      500,
		BorderRadius: -3,
		Quality:      7,
		Tilt:         &Tilt{RotateX: 40, RotateY: -40, Perspective: 1000},
	}
	n := s.Normalized()

	if n.Padding != MaxPadding || n.BorderRadius != 0 {
		t.Errorf("ranges not clamped: padding %d radius %d", n.Padding, n.BorderRadius)
	}
	if n.Shadow != ShadowNone || n.Mockup != MockupNone || n.Format != FormatPNG {
		t.Errorf("enum defaults not applied: %+v", n)
	}
	if n.Quality != DefaultQuality {
		t.Errorf("Quality = %v, want %v", n.Quality, DefaultQuality)
	}
	if n.Tilt.RotateX != MaxTiltDegrees || n.Tilt.RotateY != -MaxTiltDegrees {
		t.Errorf("tilt not clamped: %+v", n.Tilt)
	}
	if s.Tilt.RotateX != 40 {
		t.Error("Normalized modified the receiver's tilt")
	}
	if n.WatermarkText != DefaultWatermarkText {
		t.Errorf("WatermarkText = %q", n.WatermarkText)
	}
}

func TestSettingsValidate(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}

	bad := []Settings{
		func() Settings { s := DefaultSettings(); s.Shadow = "huge"; return s }(),
		func() Settings { s := DefaultSettings(); s.Mockup = "tv"; return s }(),
		func() Settings { s := DefaultSettings(); s.Format = "gif"; return s }(),
		func() Settings {
			s := DefaultSettings()
			s.Annotations = []Annotation{{Type: "circle"}}
			return s
		}(),
	}
	for i, s := range bad {
		if err := s.Validate(); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("jpeg")
	if err != nil || f != FormatJPG {
		t.Errorf("ParseFormat(jpeg) = %q, %v", f, err)
	}
	if f.Extension() != "jpg" {
		t.Errorf("Extension() = %q", f.Extension())
	}
	if _, err := ParseFormat("tiff"); err == nil {
		t.Error("expected error for tiff")
	}
}

func TestDataURLRoundTrip(t *testing.T) {
	out := Output{MIME: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}, Kind: KindDataURL}

	url, ok := out.Value().(string)
	if !ok {
		t.Fatalf("Value() returned %T, want string", out.Value())
	}
	data, mime, err := DecodeDataURL(url)
	if err != nil {
		t.Fatalf("DecodeDataURL: %v", err)
	}
	if mime != "image/png" || string(data) != string(out.Data) {
		t.Errorf("got %q %v", mime, data)
	}

	for _, bad := range []string{"image/png;base64,AAAA", "data:image/png,AAAA", "data:image/png;base64", "data:image/png;base64,@@"} {
		if _, _, err := DecodeDataURL(bad); !errors.Is(err, ErrDataURL) {
			t.Errorf("DecodeDataURL(%q) error = %v, want ErrDataURL", bad, err)
		}
	}
}

func TestAnnotationBounds(t *testing.T) {
	a := Annotation{Type: AnnotationRect, X: 50, Y: 40, Width: -20, Height: -10}
	b := a.Bounds()
	if b.X != 30 || b.Y != 30 || b.W != 20 || b.H != 10 {
		t.Errorf("Bounds() = %+v", b)
	}
}
