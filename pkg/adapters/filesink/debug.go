// Package filesink writes rendered images and debug snapshots to a
// directory.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/user/shotframe/pkg/ports"
)

// DebugSink saves debug output to files under a base directory.
type DebugSink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// NewDebug creates a DebugSink.
func NewDebug(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *DebugSink {
	return &DebugSink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *DebugSink) Enabled() bool {
	return true
}

// SaveLayoutJSON saves the layout calculation result as layout.json.
func (s *DebugSink) SaveLayoutJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "layout.json"), data)
}

// SaveSettingsJSON saves the effective settings as settings.json.
func (s *DebugSink) SaveSettingsJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "settings.json"), data)
}

// SaveStage saves the surface after a stage as stages/NN-name.png.
func (s *DebugSink) SaveStage(index int, name string, img image.Image) error {
	dir := filepath.Join(s.baseDir, "stages")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode stage %s: %w", name, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%02d-%s.png", index, strings.ToLower(name)))
	return s.fs.WriteFile(path, data)
}

var _ ports.DebugSink = (*DebugSink)(nil)
