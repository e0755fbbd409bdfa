package encode

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/user/shotframe/pkg/adapters/ggrenderer"
	"github.com/user/shotframe/pkg/adapters/logger"
	"github.com/user/shotframe/pkg/mocks"
	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 30), G: 40, B: 200, A: uint8(255 - y*60)})
		}
	}
	return img
}

func TestStage_Execute(t *testing.T) {
	var gotFormat ports.ImageFormat
	var gotQuality float64
	mockRenderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality float64) ([]byte, error) {
			gotFormat, gotQuality = format, quality
			return []byte{1, 2, 3}, nil
		},
	}
	stage := NewStage(mockRenderer, logger.NewNoop())

	out, err := stage.Execute(context.Background(), pipeline.EncodeInput{
		Image:   testImage(),
		Format:  pipeline.FormatJPG,
		Quality: 0.8,
		Kind:    pipeline.KindDataURL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotFormat != ports.FormatJPEG || gotQuality != 0.8 {
		t.Errorf("encoder called with %v/%v", gotFormat, gotQuality)
	}
	if out.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", out.MIME)
	}
	if out.Width != 8 || out.Height != 4 {
		t.Errorf("expected 8x4, got %dx%d", out.Width, out.Height)
	}
	if got := out.Value(); got != "data:image/jpeg;base64,AQID" {
		t.Errorf("unexpected data URL %v", got)
	}
}

func TestStage_Execute_DefaultQuality(t *testing.T) {
	for _, q := range []float64{0, -1, 1.5} {
		var got float64
		mockRenderer := &mocks.Renderer{
			EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality float64) ([]byte, error) {
				got = quality
				return nil, nil
			},
		}
		_, err := NewStage(mockRenderer, logger.NewNoop()).Execute(context.Background(),
			pipeline.EncodeInput{Image: testImage(), Quality: q})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != pipeline.DefaultQuality {
			t.Errorf("quality %v: expected default, got %v", q, got)
		}
	}
}

func TestStage_Execute_Error(t *testing.T) {
	mockRenderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality float64) ([]byte, error) {
			return nil, errors.New("disk on fire")
		},
	}
	_, err := NewStage(mockRenderer, logger.NewNoop()).Execute(context.Background(),
		pipeline.EncodeInput{Image: testImage(), Format: pipeline.FormatWebP})
	if !errors.Is(err, pipeline.ErrEncode) {
		t.Fatalf("expected ErrEncode, got %v", err)
	}

	_, err = NewStage(mockRenderer, logger.NewNoop()).Execute(context.Background(), pipeline.EncodeInput{})
	if !errors.Is(err, pipeline.ErrEncode) {
		t.Fatalf("expected ErrEncode for a nil image, got %v", err)
	}
}

// PNG output must decode to the exact pixels, alpha included.
func TestStage_Execute_PNGRoundTrip(t *testing.T) {
	stage := NewStage(ggrenderer.New(), logger.NewNoop())
	src := testImage()

	out, err := stage.Execute(context.Background(), pipeline.EncodeInput{Image: src, Format: pipeline.FormatPNG})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(out.Data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			want := src.NRGBAAt(x, y)
			got := color.NRGBAModel.Convert(decoded.At(x, y)).(color.NRGBA)
			if got != want {
				t.Fatalf("pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}
