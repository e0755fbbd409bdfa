package mocks

import (
	"context"
	"errors"

	"github.com/user/shotframe/pkg/ports"
)

// Capturer returns Data for every capture and records the options.
type Capturer struct {
	Data    []byte
	Err     error
	Options []ports.CaptureOptions
}

func (m *Capturer) Capture(ctx context.Context, opts ports.CaptureOptions) ([]byte, error) {
	m.Options = append(m.Options, opts)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Data, nil
}

// Clipboard holds one image in memory.
type Clipboard struct {
	Data []byte
	MIME string
	Err  error
}

func (m *Clipboard) Write(ctx context.Context, data []byte, mime string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Data = append([]byte(nil), data...)
	m.MIME = mime
	return nil
}

func (m *Clipboard) Read(ctx context.Context) ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Data) == 0 {
		return nil, errors.New("clipboard is empty")
	}
	return m.Data, nil
}

var (
	_ ports.ScreenCapturer = (*Capturer)(nil)
	_ ports.Clipboard      = (*Clipboard)(nil)
)
