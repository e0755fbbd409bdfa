package pipeline

import (
	"fmt"
	"math"

	"github.com/user/shotframe/pkg/ports"
)

// Setting ranges.
const (
	MaxPadding      = 128
	MaxBorderRadius = 64
	MaxTiltDegrees  = 15.0

	// DefaultQuality applies when Settings.Quality is zero.
	DefaultQuality = 0.92

	// ExportQuality is used for final downloads.
	ExportQuality = 0.95

	// DefaultWatermarkText is stamped when WatermarkText is empty.
	DefaultWatermarkText = "Made with Screenshot Beautifier"
)

// ShadowKind selects one of the fixed drop-shadow strengths.
type ShadowKind string

const (
	ShadowNone   ShadowKind = "none"
	ShadowSoft   ShadowKind = "soft"
	ShadowMedium ShadowKind = "medium"
	ShadowHard   ShadowKind = "hard"
)

// ShadowKinds lists all shadow kinds in catalog order.
var ShadowKinds = []ShadowKind{ShadowNone, ShadowSoft, ShadowMedium, ShadowHard}

// MockupType selects a device frame.
type MockupType string

const (
	MockupNone      MockupType = "none"
	MockupBrowser   MockupType = "browser"
	MockupMacBook   MockupType = "macbook"
	MockupIPhone    MockupType = "iphone"
	MockupAndroid   MockupType = "android"
	MockupOSChromeA MockupType = "os-chrome-a"
	MockupOSChromeB MockupType = "os-chrome-b"
)

// MockupTypes lists all frames in catalog order.
var MockupTypes = []MockupType{
	MockupNone, MockupBrowser, MockupMacBook, MockupIPhone,
	MockupAndroid, MockupOSChromeA, MockupOSChromeB,
}

// Format is an output container format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatWebP Format = "webp"
)

// Formats lists all output formats in catalog order.
var Formats = []Format{FormatPNG, FormatJPG, FormatWebP}

// ParseFormat parses a format name. "jpeg" is accepted as an alias of jpg.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPG, nil
	case "webp":
		return FormatWebP, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// ImageFormat maps the output format to the codec identifier.
func (f Format) ImageFormat() ports.ImageFormat {
	switch f {
	case FormatJPG:
		return ports.FormatJPEG
	case FormatWebP:
		return ports.FormatWebP
	default:
		return ports.FormatPNG
	}
}

// Extension returns the file extension without a dot.
func (f Format) Extension() string {
	if f == "" {
		return string(FormatPNG)
	}
	return string(f)
}

// Tilt is an affine approximation of a 3-D rotation.
type Tilt struct {
	RotateX     float64 `yaml:"rotate_x" json:"rotateX"`
	RotateY     float64 `yaml:"rotate_y" json:"rotateY"`
	Perspective float64 `yaml:"perspective" json:"perspective"`
}

// Active reports whether the tilt changes the scene.
func (t *Tilt) Active() bool {
	return t != nil && (t.RotateX != 0 || t.RotateY != 0)
}

// Settings is the declarative description of one render.
type Settings struct {
	Padding        int          `yaml:"padding" json:"padding"`
	BorderRadius   int          `yaml:"border_radius" json:"borderRadius"`
	Shadow         ShadowKind   `yaml:"shadow" json:"shadow"`
	ShadowOnMockup bool         `yaml:"shadow_on_mockup" json:"shadowOnMockup"`
	Background     Background   `yaml:"background" json:"background"`
	Mockup         MockupType   `yaml:"mockup" json:"mockupType"`
	Format         Format       `yaml:"format" json:"format"`
	Quality        float64      `yaml:"quality" json:"quality"`
	Tilt           *Tilt        `yaml:"tilt,omitempty" json:"tilt,omitempty"`
	Annotations    []Annotation `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	ShowWatermark  bool         `yaml:"show_watermark" json:"showWatermark"`
	WatermarkText  string       `yaml:"watermark_text,omitempty" json:"watermarkText,omitempty"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Padding:      64,
		BorderRadius: 12,
		Shadow:       ShadowMedium,
		Background:   LinearBackground([]string{"#667eea", "#764ba2"}, 135),
		Mockup:       MockupNone,
		Format:       FormatPNG,
		Quality:      DefaultQuality,
	}
}

// Normalized returns a copy with every field inside its valid range and
// empty enums replaced by their defaults. Slices and pointers are shared
// with the receiver; callers that mutate them deep-copy first.
func (s Settings) Normalized() Settings {
	s.Padding = clampInt(s.Padding, 0, MaxPadding)
	s.BorderRadius = clampInt(s.BorderRadius, 0, MaxBorderRadius)
	if s.Shadow == "" {
		s.Shadow = ShadowNone
	}
	if s.Mockup == "" {
		s.Mockup = MockupNone
	}
	if s.Format == "" {
		s.Format = FormatPNG
	}
	if s.Quality <= 0 || s.Quality > 1 || math.IsNaN(s.Quality) {
		s.Quality = DefaultQuality
	}
	if s.Tilt != nil {
		t := *s.Tilt
		t.RotateX = clampFloat(t.RotateX, -MaxTiltDegrees, MaxTiltDegrees)
		t.RotateY = clampFloat(t.RotateY, -MaxTiltDegrees, MaxTiltDegrees)
		s.Tilt = &t
	}
	if s.WatermarkText == "" {
		s.WatermarkText = DefaultWatermarkText
	}
	return s
}

// Validate reports enum values that are not recognized.
func (s Settings) Validate() error {
	if !knownShadow(s.Shadow) {
		return fmt.Errorf("unknown shadow %q", s.Shadow)
	}
	if !knownMockup(s.Mockup) {
		return fmt.Errorf("unknown mockup %q", s.Mockup)
	}
	if _, err := ParseFormat(string(s.Format)); err != nil {
		return err
	}
	for i, a := range s.Annotations {
		if !knownAnnotation(a.Type) {
			return fmt.Errorf("annotation %d: unknown type %q", i, a.Type)
		}
	}
	return nil
}

func knownShadow(k ShadowKind) bool {
	for _, v := range ShadowKinds {
		if v == k {
			return true
		}
	}
	return false
}

func knownMockup(m MockupType) bool {
	for _, v := range MockupTypes {
		if v == m {
			return true
		}
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(lo, math.Min(hi, v))
}
