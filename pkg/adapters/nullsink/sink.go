// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/shotframe/pkg/ports"
)

// Sink discards all debug output.
type Sink struct{}

// New creates a new null sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false so the orchestrator skips snapshots entirely.
func (s *Sink) Enabled() bool {
	return false
}

// SaveLayoutJSON does nothing.
func (s *Sink) SaveLayoutJSON(data []byte) error {
	return nil
}

// SaveSettingsJSON does nothing.
func (s *Sink) SaveSettingsJSON(data []byte) error {
	return nil
}

// SaveStage does nothing.
func (s *Sink) SaveStage(index int, name string, img image.Image) error {
	return nil
}

var _ ports.DebugSink = (*Sink)(nil)
