package orchestrator

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/user/shotframe/pkg/mocks"
	"github.com/user/shotframe/pkg/pipeline"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Screenshot.PNG", "screenshot.png"},
		{"my shot (1).jpg", "my_shot__1_.jpg"},
		{"../etc/passwd", ".._etc_passwd"},
		{"日本.webp", "__.webp"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultFilename(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	if got := DefaultFilename(pipeline.FormatWebP, now); got != "screenshot-1700000000123.webp" {
		t.Errorf("unexpected default filename %q", got)
	}
	if got := DefaultFilename("", now); got != "screenshot-1700000000123.png" {
		t.Errorf("empty format: got %q", got)
	}
}

func TestSave(t *testing.T) {
	sink := &mocks.ImageSink{}
	out := pipeline.Output{Format: pipeline.FormatJPG, MIME: "image/jpeg", Data: []byte{1}}

	loc, err := Save(context.Background(), sink, out, "My Shot.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc != "my_shot.jpg" || sink.Saved[0].MIME != "image/jpeg" {
		t.Errorf("unexpected save %q %+v", loc, sink.Saved[0])
	}

	// The default name goes through the same sanitizer.
	loc, err = Save(context.Background(), sink, out, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !regexp.MustCompile(`^screenshot_\d+\.jpg$`).MatchString(loc) {
		t.Errorf("unexpected default location %q", loc)
	}

	sink.SaveFunc = func(ctx context.Context, filename string, data []byte, mime string) (string, error) {
		return "", errors.New("read-only")
	}
	if _, err := Save(context.Background(), sink, out, "x.jpg"); err == nil {
		t.Error("expected sink error")
	}
}
