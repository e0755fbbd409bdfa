package mocks

import (
	"context"
	"image"
	"sync"

	"github.com/user/shotframe/pkg/ports"
)

// Snapshot is one surface saved by a DebugSink.
type Snapshot struct {
	Name  string
	Image image.Image
}

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	LayoutJSON   []byte
	SettingsJSON []byte
	Stages       map[int]Snapshot
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Stages:  make(map[int]Snapshot),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveLayoutJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LayoutJSON = data
	return nil
}

func (m *DebugSink) SaveSettingsJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SettingsJSON = data
	return nil
}

func (m *DebugSink) SaveStage(index int, name string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Stages[index] = Snapshot{Name: name, Image: img}
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)

// NullSink is a no-op implementation of ports.DebugSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool                                           { return false }
func (m *NullSink) SaveLayoutJSON(data []byte) error                        { return nil }
func (m *NullSink) SaveSettingsJSON(data []byte) error                      { return nil }
func (m *NullSink) SaveStage(index int, name string, img image.Image) error { return nil }

var _ ports.DebugSink = (*NullSink)(nil)

// SavedImage is one call recorded by ImageSink.
type SavedImage struct {
	Filename string
	Data     []byte
	MIME     string
}

// ImageSink is a mock implementation of ports.ImageSink.
type ImageSink struct {
	mu sync.Mutex

	SaveFunc func(ctx context.Context, filename string, data []byte, mime string) (string, error)
	Saved    []SavedImage
}

func (m *ImageSink) Save(ctx context.Context, filename string, data []byte, mime string) (string, error) {
	m.mu.Lock()
	m.Saved = append(m.Saved, SavedImage{Filename: filename, Data: data, MIME: mime})
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, filename, data, mime)
	}
	return filename, nil
}

var _ ports.ImageSink = (*ImageSink)(nil)
