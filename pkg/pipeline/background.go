package pipeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BackgroundKind discriminates the Background union.
type BackgroundKind string

const (
	BackgroundFlat   BackgroundKind = "flat"
	BackgroundLinear BackgroundKind = "linear"
	BackgroundMesh   BackgroundKind = "mesh"
)

// DefaultGradientAngle is used when a linear gradient has no angle.
const DefaultGradientAngle = 135.0

// MeshPoint is one color source of a mesh gradient, positioned relative to
// the canvas size.
type MeshPoint struct {
	Color string  `yaml:"color" json:"color"`
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
}

// Background describes how the canvas is filled. Only the fields of the
// selected Kind are meaningful.
type Background struct {
	Kind BackgroundKind `yaml:"kind" json:"kind"`

	// Flat
	Color string `yaml:"color,omitempty" json:"color,omitempty"`

	// Linear
	Colors []string `yaml:"colors,omitempty" json:"colors,omitempty"`
	Angle  *float64 `yaml:"angle,omitempty" json:"angle,omitempty"`

	// Mesh
	Points []MeshPoint `yaml:"points,omitempty" json:"points,omitempty"`
	Noise  float64     `yaml:"noise,omitempty" json:"noise,omitempty"`
}

// FlatBackground returns a single-color background.
func FlatBackground(c string) Background {
	return Background{Kind: BackgroundFlat, Color: c}
}

// LinearBackground returns a linear gradient background.
func LinearBackground(colors []string, angle float64) Background {
	return Background{Kind: BackgroundLinear, Colors: colors, Angle: &angle}
}

// MeshBackground returns a mesh gradient background.
func MeshBackground(points []MeshPoint, noise float64) Background {
	return Background{Kind: BackgroundMesh, Points: points, Noise: noise}
}

// GradientAngle returns the angle in degrees, or the default when unset.
func (b Background) GradientAngle() float64 {
	if b.Angle == nil {
		return DefaultGradientAngle
	}
	return *b.Angle
}

// String returns a CSS-like rendering of the background.
func (b Background) String() string {
	switch b.Kind {
	case BackgroundLinear:
		stops := make([]string, len(b.Colors))
		for i, c := range b.Colors {
			pos := 0.0
			if len(b.Colors) > 1 {
				pos = float64(i) / float64(len(b.Colors)-1) * 100
			}
			stops[i] = fmt.Sprintf("%s %g%%", c, pos)
		}
		return fmt.Sprintf("linear-gradient(%gdeg, %s)", b.GradientAngle(), strings.Join(stops, ", "))
	case BackgroundMesh:
		return fmt.Sprintf("mesh(%d points, noise %g)", len(b.Points), b.Noise)
	default:
		return b.Color
	}
}

var (
	gradientPattern = regexp.MustCompile(`(?i)^linear-gradient\((.*)\)$`)
	anglePattern    = regexp.MustCompile(`(-?\d+(?:\.\d+)?)deg`)
	hexPattern      = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)
)

// ParseBackground parses a color or a CSS linear-gradient expression.
// Gradient colors that are not hex are ignored; the background renderer
// falls back to a flat fill when fewer than two remain.
func ParseBackground(s string) (Background, error) {
	s = strings.TrimSpace(s)
	if m := gradientPattern.FindStringSubmatch(s); m != nil {
		body := m[1]
		angle := DefaultGradientAngle
		if a := anglePattern.FindStringSubmatch(body); a != nil {
			v, err := strconv.ParseFloat(a[1], 64)
			if err != nil {
				return Background{}, fmt.Errorf("parse gradient angle: %w", err)
			}
			angle = v
		}
		return LinearBackground(hexPattern.FindAllString(body, -1), angle), nil
	}
	if _, err := ParseColor(s); err != nil {
		return Background{}, fmt.Errorf("parse background: %w", err)
	}
	return FlatBackground(s), nil
}
