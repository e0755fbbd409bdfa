// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/user/shotframe/pkg/catalog"
	"github.com/user/shotframe/pkg/pipeline"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SHOTFRAME_"

// Config represents the full configuration for shotframe.
type Config struct {
	// Render defaults
	Preset         string         `yaml:"preset"`
	Background     string         `yaml:"background"`
	Padding        int            `yaml:"padding"`
	BorderRadius   int            `yaml:"border_radius"`
	Shadow         string         `yaml:"shadow"`
	ShadowOnMockup bool           `yaml:"shadow_on_mockup"`
	Mockup         string         `yaml:"mockup"`
	Format         string         `yaml:"format"`
	Quality        float64        `yaml:"quality"`
	Tilt           *pipeline.Tilt `yaml:"tilt"`
	ShowWatermark  bool           `yaml:"show_watermark"`
	WatermarkText  string         `yaml:"watermark_text"`

	// Output
	OutputDir string   `yaml:"output_dir"`
	Sink      string   `yaml:"sink"` // file | s3
	S3        S3Config `yaml:"s3"`

	// Capture
	Capture CaptureConfig `yaml:"capture"`

	// License
	License LicenseConfig `yaml:"license"`

	// Logging and debug
	LogLevel string `yaml:"log_level"`
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// S3Config configures the S3 sink.
type S3Config struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
	Region string `yaml:"region"`
}

// CaptureConfig configures URL capture.
type CaptureConfig struct {
	ChromePath        string  `yaml:"chrome_path"`
	Headless          bool    `yaml:"headless"`
	ViewportWidth     int     `yaml:"viewport_width"`
	ViewportHeight    int     `yaml:"viewport_height"`
	DeviceScaleFactor float64 `yaml:"device_scale_factor"`
	DelayMs           int     `yaml:"delay_ms"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// LicenseConfig configures the license store and the remote check.
type LicenseConfig struct {
	Store      string `yaml:"store"` // file | sqlite
	Path       string `yaml:"path"`
	ProjectID  string `yaml:"firestore_project"`
	APIKey     string `yaml:"firestore_api_key"`
	Collection string `yaml:"firestore_collection"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	s := pipeline.DefaultSettings()
	return Config{
		Background:   "gradient:1",
		Padding:      s.Padding,
		BorderRadius: s.BorderRadius,
		Shadow:       string(s.Shadow),
		Mockup:       string(s.Mockup),
		Format:       string(s.Format),
		Quality:      pipeline.ExportQuality,

		OutputDir: ".",
		Sink:      "file",

		Capture: CaptureConfig{
			Headless:          true,
			ViewportWidth:     1280,
			ViewportHeight:    800,
			DeviceScaleFactor: 1,
			TimeoutSec:        30,
		},

		License: LicenseConfig{
			Store:      "file",
			Path:       defaultLicensePath(),
			Collection: "pros",
		},

		LogLevel: "info",
		DebugDir: "./debug",
	}
}

func defaultLicensePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "shotframe-license.yaml"
	}
	return filepath.Join(dir, "shotframe", "license.yaml")
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadDotEnv loads .env files into the process environment. Missing files
// are ignored; variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from SHOTFRAME_* variables returned by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	var errs []error
	num := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	flag := func(name string, dst *bool) {
		if v, ok := lookup(EnvPrefix + name); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}

	str("PRESET", &c.Preset)
	str("BACKGROUND", &c.Background)
	num("PADDING", &c.Padding)
	num("BORDER_RADIUS", &c.BorderRadius)
	str("SHADOW", &c.Shadow)
	str("MOCKUP", &c.Mockup)
	str("FORMAT", &c.Format)
	flag("SHOW_WATERMARK", &c.ShowWatermark)
	str("WATERMARK_TEXT", &c.WatermarkText)

	str("OUTPUT_DIR", &c.OutputDir)
	str("SINK", &c.Sink)
	str("S3_BUCKET", &c.S3.Bucket)
	str("S3_PREFIX", &c.S3.Prefix)
	str("S3_REGION", &c.S3.Region)

	str("CHROME_PATH", &c.Capture.ChromePath)
	flag("HEADLESS", &c.Capture.Headless)

	str("LICENSE_STORE", &c.License.Store)
	str("LICENSE_PATH", &c.License.Path)
	str("FIRESTORE_PROJECT", &c.License.ProjectID)
	str("FIRESTORE_API_KEY", &c.License.APIKey)

	str("LOG_LEVEL", &c.LogLevel)
	flag("DEBUG", &c.Debug)
	str("DEBUG_DIR", &c.DebugDir)

	return errors.Join(errs...)
}

// Settings converts the render defaults into pipeline settings. A preset
// is applied first; explicit fields that differ from the defaults win.
func (c Config) Settings() (pipeline.Settings, error) {
	s := pipeline.DefaultSettings()
	def := Defaults()

	if c.Preset != "" {
		p, ok := catalog.PresetByID(c.Preset)
		if !ok {
			return s, fmt.Errorf("unknown preset %q", c.Preset)
		}
		var err error
		if s, err = p.Apply(s); err != nil {
			return s, err
		}
	}

	if c.Background != "" && (c.Preset == "" || c.Background != def.Background) {
		bg, err := catalog.ResolveBackground(c.Background)
		if err != nil {
			return s, fmt.Errorf("background: %w", err)
		}
		s.Background = bg
	}
	if c.Preset == "" || c.Padding != def.Padding {
		s.Padding = c.Padding
	}
	if c.Preset == "" || c.BorderRadius != def.BorderRadius {
		s.BorderRadius = c.BorderRadius
	}
	if c.Preset == "" || c.Mockup != def.Mockup {
		s.Mockup = pipeline.MockupType(c.Mockup)
	}
	if c.Tilt != nil {
		t := *c.Tilt
		s.Tilt = &t
	}

	s.Shadow = pipeline.ShadowKind(c.Shadow)
	s.ShadowOnMockup = c.ShadowOnMockup
	if c.Format != "" {
		f, err := pipeline.ParseFormat(strings.ToLower(c.Format))
		if err != nil {
			return s, err
		}
		s.Format = f
	}
	s.Quality = c.Quality
	s.ShowWatermark = c.ShowWatermark
	s.WatermarkText = c.WatermarkText

	if err := s.Normalized().Validate(); err != nil {
		return s, err
	}
	return s, nil
}
