// Package entitlement decides which features a render may use and keeps
// the local license record.
package entitlement

import (
	"context"

	"github.com/user/shotframe/pkg/catalog"
	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

// Feature names a Pro feature that was removed from a render.
type Feature string

const (
	FeatureFormat      Feature = "format"
	FeatureMockup      Feature = "mockup"
	FeatureBackground  Feature = "background"
	FeatureTilt        Feature = "tilt"
	FeatureAnnotations Feature = "annotations"
)

// Downgrade records one change made to free-tier settings.
type Downgrade struct {
	Feature  Feature
	Wanted   string
	Fallback string
}

// FreeBackground replaces Pro backgrounds for free users.
var FreeBackground = pipeline.DefaultSettings().Background

// Restrict returns s limited to the free tier together with the Pro
// features that were removed. Free renders always carry the default
// watermark.
func Restrict(s pipeline.Settings) (pipeline.Settings, []Downgrade) {
	var downs []Downgrade

	if s.Format != "" && catalog.FormatPro(s.Format) {
		downs = append(downs, Downgrade{FeatureFormat, string(s.Format), string(pipeline.FormatPNG)})
		s.Format = pipeline.FormatPNG
	}
	if m, ok := catalog.MockupByType(s.Mockup); ok && m.Pro {
		downs = append(downs, Downgrade{FeatureMockup, string(s.Mockup), string(pipeline.MockupNone)})
		s.Mockup = pipeline.MockupNone
	}
	if catalog.BackgroundPro(s.Background) {
		downs = append(downs, Downgrade{FeatureBackground, s.Background.String(), FreeBackground.String()})
		s.Background = FreeBackground
	}
	if s.Tilt.Active() {
		downs = append(downs, Downgrade{FeatureTilt, "tilt", "none"})
	}
	s.Tilt = nil
	if len(s.Annotations) > 0 {
		downs = append(downs, Downgrade{FeatureAnnotations, "annotations", "none"})
		s.Annotations = nil
	}
	s.ShowWatermark = true
	s.WatermarkText = ""
	return s, downs
}

// Gate applies the policy for the current entitlement.
type Gate struct {
	entitlement ports.Entitlement
	logger      ports.Logger
}

// NewGate creates a Gate.
func NewGate(e ports.Entitlement, logger ports.Logger) *Gate {
	return &Gate{entitlement: e, logger: logger}
}

// Apply returns the settings unchanged for Pro users and restricted to the
// free tier otherwise. Each downgrade is logged as a warning.
func (g *Gate) Apply(ctx context.Context, s pipeline.Settings) pipeline.Settings {
	if g.entitlement.IsEntitled(ctx) {
		return s
	}
	restricted, downs := Restrict(s)
	for _, d := range downs {
		g.logger.Warn("%s requires Pro, falling back to %s", d.Feature, d.Fallback)
	}
	return restricted
}
