// Package catalog lists the built-in backgrounds, frames, formats and
// presets, each flagged as free or Pro.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/user/shotframe/pkg/pipeline"
)

// ErrNotFound is returned for selectors that name no catalog entry.
var ErrNotFound = errors.New("catalog: not found")

// Gradient is a linear gradient preset.
type Gradient struct {
	ID   int
	Name string
	CSS  string
	Pro  bool
}

// Background parses the gradient expression.
func (g Gradient) Background() pipeline.Background {
	bg, err := pipeline.ParseBackground(g.CSS)
	if err != nil {
		panic(fmt.Sprintf("catalog: gradient %d: %v", g.ID, err))
	}
	return bg
}

// Solid is a flat color preset.
type Solid struct {
	ID   string
	Name string
	Hex  string
	Pro  bool
}

// Mesh is a mesh gradient preset.
type Mesh struct {
	ID     int
	Name   string
	Points []pipeline.MeshPoint
	Noise  float64
	Pro    bool
}

// Background returns the mesh as a background with its own copy of the
// points.
func (m Mesh) Background() pipeline.Background {
	return pipeline.MeshBackground(append([]pipeline.MeshPoint(nil), m.Points...), m.Noise)
}

// Shadow names a shadow strength.
type Shadow struct {
	Kind pipeline.ShadowKind
	Name string
}

// Mockup describes a frame.
type Mockup struct {
	Type       pipeline.MockupType
	Name       string
	Pro        bool
	AspectHint string
}

// FormatInfo describes an export format.
type FormatInfo struct {
	Format pipeline.Format
	Name   string
	Pro    bool
}

var Gradients = []Gradient{
	{ID: 1, Name: "Purple Dream", CSS: "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"},
	{ID: 2, Name: "Pink Sunset", CSS: "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)"},
	{ID: 3, Name: "Ocean Blue", CSS: "linear-gradient(135deg, #4facfe 0%, #00f2fe 100%)"},
	{ID: 4, Name: "Fresh Mint", CSS: "linear-gradient(135deg, #43e97b 0%, #38f9d7 100%)"},
	{ID: 5, Name: "Warm Glow", CSS: "linear-gradient(135deg, #fa709a 0%, #fee140 100%)"},
	{ID: 6, Name: "Neon Purple", CSS: "linear-gradient(135deg, #7b2ff7 0%, #f107a3 100%)", Pro: true},
	{ID: 7, Name: "Aurora", CSS: "linear-gradient(135deg, #00c9ff 0%, #92fe9d 50%, #f0f 100%)", Pro: true},
	{ID: 8, Name: "Cyber", CSS: "linear-gradient(135deg, #0ff 0%, #f0f 50%, #ff0 100%)", Pro: true},
	{ID: 9, Name: "Deep Space", CSS: "linear-gradient(135deg, #0f0c29 0%, #302b63 50%, #24243e 100%)", Pro: true},
	{ID: 10, Name: "Sunset Vibes", CSS: "linear-gradient(135deg, #fc466b 0%, #3f5efb 100%)", Pro: true},
	{ID: 11, Name: "Peach Glow", CSS: "linear-gradient(135deg, #ffecd2 0%, #fcb69f 100%)", Pro: true},
	{ID: 12, Name: "Rose Gold", CSS: "linear-gradient(135deg, #f5af19 0%, #f12711 100%)", Pro: true},
	{ID: 13, Name: "Cool Sky", CSS: "linear-gradient(135deg, #2980b9 0%, #6dd5fa 50%, #fff 100%)", Pro: true},
	{ID: 14, Name: "Midnight", CSS: "linear-gradient(135deg, #232526 0%, #414345 100%)", Pro: true},
	{ID: 15, Name: "Candy", CSS: "linear-gradient(135deg, #d53369 0%, #daae51 100%)", Pro: true},
}

var Solids = []Solid{
	{ID: "white", Name: "White", Hex: "#ffffff"},
	{ID: "black", Name: "Black", Hex: "#0a0a0a"},
	{ID: "gray", Name: "Gray", Hex: "#6b7280"},
	{ID: "blue", Name: "Blue", Hex: "#3b82f6"},
	{ID: "purple", Name: "Purple", Hex: "#a855f7"},
	{ID: "red", Name: "Red", Hex: "#ef4444", Pro: true},
	{ID: "orange", Name: "Orange", Hex: "#f97316", Pro: true},
	{ID: "yellow", Name: "Yellow", Hex: "#eab308", Pro: true},
	{ID: "green", Name: "Green", Hex: "#22c55e", Pro: true},
	{ID: "pink", Name: "Pink", Hex: "#ec4899", Pro: true},
}

var Meshes = []Mesh{
	{
		ID: 101, Name: "Aurora Mesh", Noise: 0.05, Pro: true,
		Points: []pipeline.MeshPoint{
			{Color: "#00d2ff", X: 0.2, Y: 0.2},
			{Color: "#3a7bd5", X: 0.8, Y: 0.3},
			{Color: "#00f2fe", X: 0.4, Y: 0.7},
			{Color: "#4facfe", X: 0.9, Y: 0.9},
		},
	},
	{
		ID: 102, Name: "Sunset Glow", Noise: 0.03, Pro: true,
		Points: []pipeline.MeshPoint{
			{Color: "#ff9a9e", X: 0.1, Y: 0.1},
			{Color: "#fad0c4", X: 0.9, Y: 0.2},
			{Color: "#ffecd2", X: 0.5, Y: 0.5},
			{Color: "#fcb69f", X: 0.2, Y: 0.8},
		},
	},
	{
		ID: 103, Name: "Deep Space", Noise: 0.08, Pro: true,
		Points: []pipeline.MeshPoint{
			{Color: "#0f0c29", X: 0.1, Y: 0.1},
			{Color: "#302b63", X: 0.9, Y: 0.3},
			{Color: "#24243e", X: 0.4, Y: 0.6},
			{Color: "#141e30", X: 0.7, Y: 0.9},
		},
	},
}

var Shadows = []Shadow{
	{Kind: pipeline.ShadowNone, Name: "None"},
	{Kind: pipeline.ShadowSoft, Name: "Soft"},
	{Kind: pipeline.ShadowMedium, Name: "Medium"},
	{Kind: pipeline.ShadowHard, Name: "Hard"},
}

var Mockups = []Mockup{
	{Type: pipeline.MockupNone, Name: "None", AspectHint: "any"},
	{Type: pipeline.MockupBrowser, Name: "Browser", Pro: true, AspectHint: "landscape"},
	{Type: pipeline.MockupMacBook, Name: "MacBook", Pro: true, AspectHint: "landscape"},
	{Type: pipeline.MockupIPhone, Name: "iPhone", Pro: true, AspectHint: "portrait"},
	{Type: pipeline.MockupAndroid, Name: "Android", Pro: true, AspectHint: "portrait"},
	{Type: pipeline.MockupOSChromeA, Name: "Sequoia Window", Pro: true, AspectHint: "landscape"},
	{Type: pipeline.MockupOSChromeB, Name: "Windows 11 Window", Pro: true, AspectHint: "landscape"},
}

var Formats = []FormatInfo{
	{Format: pipeline.FormatPNG, Name: "PNG"},
	{Format: pipeline.FormatJPG, Name: "JPG", Pro: true},
	{Format: pipeline.FormatWebP, Name: "WebP", Pro: true},
}

// GradientByID returns the gradient with the given id.
func GradientByID(id int) (Gradient, bool) {
	for _, g := range Gradients {
		if g.ID == id {
			return g, true
		}
	}
	return Gradient{}, false
}

// SolidByID returns the solid color with the given id.
func SolidByID(id string) (Solid, bool) {
	for _, s := range Solids {
		if s.ID == id {
			return s, true
		}
	}
	return Solid{}, false
}

// MeshByID returns the mesh with the given id.
func MeshByID(id int) (Mesh, bool) {
	for _, m := range Meshes {
		if m.ID == id {
			return m, true
		}
	}
	return Mesh{}, false
}

// MockupByType returns the catalog entry of a frame.
func MockupByType(t pipeline.MockupType) (Mockup, bool) {
	for _, m := range Mockups {
		if m.Type == t {
			return m, true
		}
	}
	return Mockup{}, false
}

// FormatPro reports whether exporting to f requires Pro.
func FormatPro(f pipeline.Format) bool {
	for _, info := range Formats {
		if info.Format == f {
			return info.Pro
		}
	}
	return true
}

// ResolveBackground turns a background selector into a background.
// Selectors are "gradient:<id>", "solid:<id>", "mesh:<id>", or any color
// or linear-gradient expression accepted by pipeline.ParseBackground.
func ResolveBackground(sel string) (pipeline.Background, error) {
	sel = strings.TrimSpace(sel)
	kind, id, ok := strings.Cut(sel, ":")
	if !ok {
		return pipeline.ParseBackground(sel)
	}

	switch strings.ToLower(kind) {
	case "gradient":
		n, err := strconv.Atoi(id)
		if err != nil {
			return pipeline.Background{}, fmt.Errorf("%w: gradient %q", ErrNotFound, id)
		}
		g, ok := GradientByID(n)
		if !ok {
			return pipeline.Background{}, fmt.Errorf("%w: gradient %d", ErrNotFound, n)
		}
		return g.Background(), nil
	case "solid":
		s, ok := SolidByID(strings.ToLower(id))
		if !ok {
			return pipeline.Background{}, fmt.Errorf("%w: solid %q", ErrNotFound, id)
		}
		return pipeline.FlatBackground(s.Hex), nil
	case "mesh":
		n, err := strconv.Atoi(id)
		if err != nil {
			return pipeline.Background{}, fmt.Errorf("%w: mesh %q", ErrNotFound, id)
		}
		m, ok := MeshByID(n)
		if !ok {
			return pipeline.Background{}, fmt.Errorf("%w: mesh %d", ErrNotFound, n)
		}
		return m.Background(), nil
	}
	return pipeline.ParseBackground(sel)
}

// BackgroundPro reports whether bg is one of the Pro catalog backgrounds.
// Every mesh is Pro; custom colors and gradients are free.
func BackgroundPro(bg pipeline.Background) bool {
	switch bg.Kind {
	case pipeline.BackgroundMesh:
		return true
	case pipeline.BackgroundLinear:
		for _, g := range Gradients {
			if g.Pro && sameColors(g.Background().Colors, bg.Colors) {
				return true
			}
		}
	case pipeline.BackgroundFlat:
		for _, s := range Solids {
			if s.Pro && strings.EqualFold(s.Hex, strings.TrimSpace(bg.Color)) {
				return true
			}
		}
	}
	return false
}

func sameColors(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}
