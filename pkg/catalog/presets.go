package catalog

import (
	"fmt"
	"strings"

	"github.com/user/shotframe/pkg/pipeline"
)

// Preset is a named bundle of settings.
type Preset struct {
	ID           string
	Name         string
	Icon         string
	Background   string // selector for ResolveBackground
	Padding      int
	BorderRadius int
	Mockup       pipeline.MockupType
	Tilt         pipeline.Tilt
}

var Presets = []Preset{
	{
		ID: "macbook-stealth", Name: "Mac Stealth", Icon: "💻",
		Background: "mesh:103", Padding: 80, BorderRadius: 16,
		Mockup: pipeline.MockupMacBook,
		Tilt:   pipeline.Tilt{RotateX: 5, RotateY: -10, Perspective: 1200},
	},
	{
		ID: "iphone-glass", Name: "iPhone Glass", Icon: "📱",
		Background: "gradient:3", Padding: 64, BorderRadius: 40,
		Mockup: pipeline.MockupIPhone,
		Tilt:   pipeline.Tilt{Perspective: 1000},
	},
	{
		ID: "win-mica", Name: "Win 11 Mica", Icon: "🪟",
		Background: "mesh:101", Padding: 50, BorderRadius: 12,
		Mockup: pipeline.MockupOSChromeB,
		Tilt:   pipeline.Tilt{RotateX: -5, RotateY: 8, Perspective: 1500},
	},
	{
		ID: "social-prime", Name: "Social Prime", Icon: "✨",
		Background: "solid:black", Padding: 100, BorderRadius: 24,
		Mockup: pipeline.MockupNone,
		Tilt:   pipeline.Tilt{Perspective: 1000},
	},
}

// PresetByID returns the preset with the given id, case-insensitively.
func PresetByID(id string) (Preset, bool) {
	for _, p := range Presets {
		if strings.EqualFold(p.ID, id) {
			return p, true
		}
	}
	return Preset{}, false
}

// Apply returns s with the preset's background, padding, radius, frame
// and tilt. Other settings are kept.
func (p Preset) Apply(s pipeline.Settings) (pipeline.Settings, error) {
	bg, err := ResolveBackground(p.Background)
	if err != nil {
		return s, fmt.Errorf("preset %s: %w", p.ID, err)
	}
	tilt := p.Tilt
	s.Background = bg
	s.Padding = p.Padding
	s.BorderRadius = p.BorderRadius
	s.Mockup = p.Mockup
	s.Tilt = &tilt
	return s, nil
}

// Pro reports whether any part of the preset requires Pro.
func (p Preset) Pro() bool {
	if m, ok := MockupByType(p.Mockup); ok && m.Pro {
		return true
	}
	if p.Tilt.Active() {
		return true
	}
	bg, err := ResolveBackground(p.Background)
	return err == nil && BackgroundPro(bg)
}
