package filesink

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/shotframe/pkg/ports"
)

// maxConflicts bounds the search for a free file name.
const maxConflicts = 10000

// Sink saves encoded images into a directory. A name that is already taken
// is uniquified as "name (1).ext", "name (2).ext" and so on.
type Sink struct {
	dir string
	fs  ports.FileSystem
}

// New creates a Sink writing into dir.
func New(dir string, fs ports.FileSystem) *Sink {
	return &Sink{dir: dir, fs: fs}
}

// Save writes data and returns the path it was written to.
func (s *Sink) Save(ctx context.Context, filename string, data []byte, mime string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if filename == "" || filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid file name %q", filename)
	}

	path, err := s.free(filename)
	if err != nil {
		return "", err
	}
	if err := s.fs.WriteFile(path, data); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func (s *Sink) free(filename string) (string, error) {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	path := filepath.Join(s.dir, filename)
	for i := 1; i <= maxConflicts; i++ {
		exists, err := s.fs.Exists(path)
		if err != nil {
			return "", err
		}
		if !exists {
			return path, nil
		}
		path = filepath.Join(s.dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
	}
	return "", fmt.Errorf("no free file name for %q", filename)
}

var _ ports.ImageSink = (*Sink)(nil)
