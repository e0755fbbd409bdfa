package ports

import (
	"context"
)

// ScreenCapturer captures a web page as an encoded raster image.
type ScreenCapturer interface {
	// Capture loads the page and returns a PNG screenshot.
	Capture(ctx context.Context, opts CaptureOptions) ([]byte, error)
}

// CaptureOptions configures a page capture.
type CaptureOptions struct {
	URL               string
	ViewportWidth     int     // CSS pixels
	ViewportHeight    int     // CSS pixels
	DeviceScaleFactor float64 // 0 means 1
	FullPage          bool    // capture beyond the viewport
	DelayMs           int     // settle time after load
	ChromePath        string
	Headless          bool
	IgnoreHTTPSErrors bool
	ProxyServer       string
}

// Clipboard exchanges images with the system clipboard.
type Clipboard interface {
	// Write places data tagged with a MIME type on the clipboard.
	Write(ctx context.Context, data []byte, mime string) error

	// Read returns the image currently on the clipboard.
	Read(ctx context.Context) ([]byte, error)
}
