package orchestrator

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

var unsafeFilenameChars = regexp.MustCompile(`(?i)[^a-z0-9.]`)

// SanitizeFilename replaces every character other than ASCII letters,
// digits and dots with an underscore and lowercases the result.
func SanitizeFilename(name string) string {
	return strings.ToLower(unsafeFilenameChars.ReplaceAllString(name, "_"))
}

// DefaultFilename returns the download name used when none is given:
// screenshot-<unix milliseconds>.<ext>.
func DefaultFilename(format pipeline.Format, now time.Time) string {
	return fmt.Sprintf("screenshot-%d.%s", now.UnixMilli(), format.Extension())
}

// Save hands an encoded output to a sink under a sanitized filename. An
// empty filename gets DefaultFilename. It returns the sink's location.
func Save(ctx context.Context, sink ports.ImageSink, out pipeline.Output, filename string) (string, error) {
	if filename == "" {
		filename = DefaultFilename(out.Format, time.Now())
	}
	location, err := sink.Save(ctx, SanitizeFilename(filename), out.Data, out.MIME)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", filename, err)
	}
	return location, nil
}
