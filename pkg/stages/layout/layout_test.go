package layout

import (
	"context"
	"testing"

	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/stages/mockup"
)

func TestComputeLayout_NoMockup(t *testing.T) {
	result := ComputeLayout(pipeline.LayoutInput{
		ImageWidth:  200,
		ImageHeight: 100,
		Padding:     64,
		Mockup:      pipeline.MockupNone,
	})

	if result.Canvas != (pipeline.Dimension{Width: 328, Height: 228}) {
		t.Errorf("canvas: expected 328x228, got %+v", result.Canvas)
	}
	expected := pipeline.Rectangle{X: 64, Y: 64, Width: 200, Height: 100}
	if result.Image != expected {
		t.Errorf("image: expected %+v, got %+v", expected, result.Image)
	}
	if result.Frame != (pipeline.Rectangle{}) {
		t.Errorf("frame: expected zero, got %+v", result.Frame)
	}
}

func TestComputeLayout_Mockups(t *testing.T) {
	tests := []struct {
		mockup pipeline.MockupType
		canvas pipeline.Dimension
		image  pipeline.Rectangle
	}{
		{
			mockup: pipeline.MockupBrowser,
			canvas: pipeline.Dimension{Width: 200 + 40 + 80, Height: 100 + 40 + 32 + 80},
			image:  pipeline.Rectangle{X: 20 + 40, Y: 20 + 32 + 40, Width: 200, Height: 100},
		},
		{
			mockup: pipeline.MockupOSChromeA,
			canvas: pipeline.Dimension{Width: 320, Height: 100 + 40 + 38 + 80},
			image:  pipeline.Rectangle{X: 60, Y: 20 + 38 + 40, Width: 200, Height: 100},
		},
		{
			mockup: pipeline.MockupOSChromeB,
			canvas: pipeline.Dimension{Width: 320, Height: 100 + 40 + 40 + 80},
			image:  pipeline.Rectangle{X: 60, Y: 20 + 40 + 40, Width: 200, Height: 100},
		},
		{
			mockup: pipeline.MockupMacBook,
			canvas: pipeline.Dimension{Width: 200 + 40 + 24 + 80, Height: 100 + 40 + 24 + 12 + 16 + 80},
			image:  pipeline.Rectangle{X: 20 + 12 + 40, Y: 20 + 24 + 40, Width: 200, Height: 100},
		},
		{
			mockup: pipeline.MockupIPhone,
			canvas: pipeline.Dimension{Width: 200 + 40 + 24 + 80, Height: 100 + 40 + 24 + 80},
			image:  pipeline.Rectangle{X: 72, Y: 72, Width: 200, Height: 100},
		},
		{
			mockup: pipeline.MockupAndroid,
			canvas: pipeline.Dimension{Width: 200 + 40 + 16 + 80, Height: 100 + 40 + 16 + 80},
			image:  pipeline.Rectangle{X: 68, Y: 68, Width: 200, Height: 100},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.mockup), func(t *testing.T) {
			result := ComputeLayout(pipeline.LayoutInput{
				ImageWidth:  200,
				ImageHeight: 100,
				Padding:     20,
				Mockup:      tt.mockup,
			})
			if result.Canvas != tt.canvas {
				t.Errorf("canvas: expected %+v, got %+v", tt.canvas, result.Canvas)
			}
			if result.Image != tt.image {
				t.Errorf("image: expected %+v, got %+v", tt.image, result.Image)
			}
		})
	}
}

func TestComputeLayout_StripFrameKeepsHorizontalOffset(t *testing.T) {
	plain := ComputeLayout(pipeline.LayoutInput{ImageWidth: 300, ImageHeight: 200, Padding: 32})
	browser := ComputeLayout(pipeline.LayoutInput{ImageWidth: 300, ImageHeight: 200, Padding: 32, Mockup: pipeline.MockupBrowser})

	if browser.Image.X != plain.Image.X+mockup.FloatingMargin {
		t.Errorf("offsetX: expected only the floating margin, got %d vs %d", browser.Image.X, plain.Image.X)
	}
	if browser.Canvas.Width != plain.Canvas.Width+2*mockup.FloatingMargin {
		t.Errorf("width: expected only the floating margin, got %d vs %d", browser.Canvas.Width, plain.Canvas.Width)
	}
	if browser.Image.Y != plain.Image.Y+32+mockup.FloatingMargin {
		t.Errorf("offsetY: expected strip plus margin, got %d", browser.Image.Y)
	}
}

// TestComputeLayout_Invariants checks the width formula and containment
// for every padding and mockup combination.
func TestComputeLayout_Invariants(t *testing.T) {
	sizes := []pipeline.Dimension{{Width: 1, Height: 1}, {Width: 200, Height: 100}, {Width: 90, Height: 640}}

	for _, m := range pipeline.MockupTypes {
		for padding := 0; padding <= pipeline.MaxPadding; padding++ {
			for _, size := range sizes {
				result := ComputeLayout(pipeline.LayoutInput{
					ImageWidth:  size.Width,
					ImageHeight: size.Height,
					Padding:     padding,
					Mockup:      m,
				})

				wantW := size.Width + 2*padding + mockup.DeltaWidth(m)
				wantH := size.Height + 2*padding + mockup.DeltaHeight(m)
				if result.Canvas.Width != wantW || result.Canvas.Height != wantH {
					t.Fatalf("%s padding=%d: canvas %+v, want %dx%d", m, padding, result.Canvas, wantW, wantH)
				}

				bounds := pipeline.Rectangle{Width: result.Canvas.Width, Height: result.Canvas.Height}
				if !bounds.Contains(result.Image) {
					t.Fatalf("%s padding=%d: image %+v outside canvas", m, padding, result.Image)
				}
				if mockup.Framed(m) {
					if !bounds.Contains(result.Frame) {
						t.Fatalf("%s padding=%d: frame %+v outside canvas", m, padding, result.Frame)
					}
					if !result.Frame.Contains(result.Image) {
						t.Fatalf("%s padding=%d: image outside frame", m, padding)
					}
				}
			}
		}
	}
}

func TestStage_Execute(t *testing.T) {
	stage := NewStage()
	input := pipeline.LayoutInput{ImageWidth: 10, ImageHeight: 10, Padding: 5}

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result != ComputeLayout(input) {
		t.Error("Execute result differs from ComputeLayout")
	}
}
