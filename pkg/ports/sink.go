package ports

import (
	"context"
	"image"
)

// ImageSink persists or publishes an encoded image.
// The filename is sanitized by the caller before it reaches the sink.
type ImageSink interface {
	// Save stores data under filename and returns the final location,
	// which may differ from filename when the sink resolves conflicts.
	Save(ctx context.Context, filename string, data []byte, mime string) (string, error)
}

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate render surfaces for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveLayoutJSON saves the layout calculation result as JSON.
	SaveLayoutJSON(data []byte) error

	// SaveSettingsJSON saves the effective render settings as JSON.
	SaveSettingsJSON(data []byte) error

	// SaveStage saves a snapshot of the surface after the named stage.
	SaveStage(index int, name string, img image.Image) error
}
