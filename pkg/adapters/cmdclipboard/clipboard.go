// Package cmdclipboard exchanges images with the system clipboard through
// the platform's clipboard tools (wl-copy/wl-paste, xclip, osascript and
// pngpaste).
package cmdclipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/h2non/filetype"

	"github.com/user/shotframe/pkg/ports"
)

// ErrUnsupported is returned on platforms without a known clipboard tool.
var ErrUnsupported = errors.New("clipboard: no supported clipboard tool")

// Runner executes a command with stdin and returns its stdout.
type Runner func(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", name, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return out, nil
}

// Clipboard implements ports.Clipboard.
type Clipboard struct {
	platform string
	wayland  bool
	run      Runner
}

// New creates a Clipboard for the running platform.
func New() *Clipboard {
	return &Clipboard{
		platform: runtime.GOOS,
		wayland:  os.Getenv("WAYLAND_DISPLAY") != "",
		run:      execRunner,
	}
}

// NewWithRunner creates a Clipboard for a given platform and command runner.
func NewWithRunner(platform string, wayland bool, run Runner) *Clipboard {
	return &Clipboard{platform: platform, wayland: wayland, run: run}
}

// Write places the image on the clipboard.
func (c *Clipboard) Write(ctx context.Context, data []byte, mime string) error {
	switch {
	case c.platform == "darwin":
		return c.writeDarwin(ctx, data)
	case c.platform == "windows":
		return ErrUnsupported
	case c.wayland:
		_, err := c.run(ctx, data, "wl-copy", "--type", mime)
		return err
	default:
		_, err := c.run(ctx, data, "xclip", "-selection", "clipboard", "-t", mime, "-i")
		return err
	}
}

// writeDarwin goes through a temporary file because osascript cannot read
// image data from stdin.
func (c *Clipboard) writeDarwin(ctx context.Context, data []byte) error {
	f, err := os.CreateTemp("", "shotframe-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	script := fmt.Sprintf(`set the clipboard to (read (POSIX file %q) as «class PNGf»)`, filepath.ToSlash(f.Name()))
	_, err = c.run(ctx, nil, "osascript", "-e", script)
	return err
}

// Read returns the clipboard image. Content that is not an image is
// rejected.
func (c *Clipboard) Read(ctx context.Context) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case c.platform == "darwin":
		data, err = c.run(ctx, nil, "pngpaste", "-")
	case c.platform == "windows":
		return nil, ErrUnsupported
	case c.wayland:
		data, err = c.run(ctx, nil, "wl-paste", "--type", "image/png")
	default:
		data, err = c.run(ctx, nil, "xclip", "-selection", "clipboard", "-t", "image/png", "-o")
	}
	if err != nil {
		return nil, err
	}
	if !filetype.IsImage(data) {
		return nil, fmt.Errorf("clipboard does not hold an image")
	}
	return data, nil
}

var _ ports.Clipboard = (*Clipboard)(nil)
