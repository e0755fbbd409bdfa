package composite

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/shotframe/pkg/adapters/ggrenderer"
	"github.com/user/shotframe/pkg/adapters/logger"
	"github.com/user/shotframe/pkg/mocks"
	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

func sceneFor(c ports.Canvas, st pipeline.Settings) pipeline.Scene {
	layout := pipeline.LayoutResult{
		Canvas: pipeline.Dimension{Width: 328, Height: 228},
		Image:  pipeline.Rectangle{X: 64, Y: 64, Width: 200, Height: 100},
	}
	if st.Mockup == pipeline.MockupBrowser {
		layout = pipeline.LayoutResult{
			Canvas: pipeline.Dimension{Width: 408, Height: 340},
			Image:  pipeline.Rectangle{X: 104, Y: 136, Width: 200, Height: 100},
			Frame:  pipeline.Rectangle{X: 104, Y: 104, Width: 200, Height: 132},
		}
	}
	return pipeline.Scene{
		Canvas:   c,
		Source:   image.NewRGBA(image.Rect(0, 0, 200, 100)),
		Layout:   layout,
		Settings: st,
	}
}

func TestShadowFor(t *testing.T) {
	tests := []struct {
		kind    pipeline.ShadowKind
		blur    float64
		offsetY float64
	}{
		{pipeline.ShadowSoft, 40, 20},
		{pipeline.ShadowMedium, 60, 30},
		{pipeline.ShadowHard, 80, 40},
	}
	for _, tt := range tests {
		s, ok := ShadowFor(tt.kind)
		require.True(t, ok, tt.kind)
		assert.Equal(t, tt.blur, s.Blur)
		assert.Equal(t, tt.offsetY, s.OffsetY)
		assert.Equal(t, 0.0, s.OffsetX)
		assert.Equal(t, ShadowColor, s.Color)
	}

	_, ok := ShadowFor(pipeline.ShadowNone)
	assert.False(t, ok)
}

func TestDrawsShadow(t *testing.T) {
	assert.True(t, DrawsShadow(pipeline.Settings{Shadow: pipeline.ShadowSoft, Mockup: pipeline.MockupNone}))
	assert.False(t, DrawsShadow(pipeline.Settings{Shadow: pipeline.ShadowNone, Mockup: pipeline.MockupNone}))
	assert.False(t, DrawsShadow(pipeline.Settings{Shadow: pipeline.ShadowSoft, Mockup: pipeline.MockupIPhone}))
	assert.True(t, DrawsShadow(pipeline.Settings{Shadow: pipeline.ShadowSoft, Mockup: pipeline.MockupIPhone, ShadowOnMockup: true}))
}

func TestStage_Execute_Order(t *testing.T) {
	c := mocks.NewCanvas(328, 228)
	st := pipeline.Settings{Shadow: pipeline.ShadowMedium, Mockup: pipeline.MockupNone, BorderRadius: 12}

	_, err := NewStage(logger.NewNoop()).Execute(context.Background(), sceneFor(c, st))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Push", "SetShadow", "FillRoundedRect", "Pop",
		"Push", "ClipRoundedRect", "DrawImage", "Pop",
	}, c.Ops())

	r := ports.Rect{X: 64, Y: 64, W: 200, H: 100}
	assert.Equal(t, r, c.Find("FillRoundedRect")[0].Args[0])
	assert.Equal(t, ports.UniformRadii(12), c.Find("ClipRoundedRect")[0].Args[1])
	draw := c.Find("DrawImage")[0]
	assert.Equal(t, 64, draw.Args[1])
	assert.Equal(t, 64, draw.Args[2])
}

func TestStage_Execute_NoShadowUnderFrame(t *testing.T) {
	c := mocks.NewCanvas(408, 340)
	st := pipeline.Settings{Shadow: pipeline.ShadowHard, Mockup: pipeline.MockupBrowser, BorderRadius: 8}

	_, err := NewStage(logger.NewNoop()).Execute(context.Background(), sceneFor(c, st))
	require.NoError(t, err)

	assert.Empty(t, c.Find("SetShadow"))
	assert.Equal(t, ports.BottomRadii(8), c.Find("ClipRoundedRect")[0].Args[1])
}

func TestStage_Execute_ShadowOnMockupUsesBody(t *testing.T) {
	c := mocks.NewCanvas(408, 340)
	st := pipeline.Settings{Shadow: pipeline.ShadowSoft, Mockup: pipeline.MockupBrowser, ShadowOnMockup: true, BorderRadius: 8}

	_, err := NewStage(logger.NewNoop()).Execute(context.Background(), sceneFor(c, st))
	require.NoError(t, err)

	fill := c.Find("FillRoundedRect")
	require.Len(t, fill, 1)
	assert.Equal(t, ports.Rect{X: 104, Y: 104, W: 200, H: 132}, fill[0].Args[0])
}

func TestStage_Execute_GlareWhenTilted(t *testing.T) {
	c := mocks.NewCanvas(328, 228)
	st := pipeline.Settings{Shadow: pipeline.ShadowNone, Tilt: &pipeline.Tilt{RotateY: 10}}

	_, err := NewStage(logger.NewNoop()).Execute(context.Background(), sceneFor(c, st))
	require.NoError(t, err)

	assert.Equal(t, []string{"Push", "ClipRoundedRect", "DrawImage", "FillLinearGradient", "Pop"}, c.Ops())
	g := c.Find("FillLinearGradient")[0].Args[1].(ports.LinearGradient)
	assert.Len(t, g.Stops, 6)
	assert.Equal(t, 64.0, g.X0)
	assert.Equal(t, 264.0, g.X1)
	assert.Equal(t, 164.0, g.Y1)
}

func TestStage_Execute_ZeroTiltHasNoGlare(t *testing.T) {
	c := mocks.NewCanvas(328, 228)
	st := pipeline.Settings{Tilt: &pipeline.Tilt{}}

	_, err := NewStage(logger.NewNoop()).Execute(context.Background(), sceneFor(c, st))
	require.NoError(t, err)
	assert.Empty(t, c.Find("FillLinearGradient"))
}

func TestDrawClipped_Pixels(t *testing.T) {
	r := ggrenderer.New()
	c, err := r.CreateCanvas(100, 100)
	require.NoError(t, err)

	src := image.NewRGBA(image.Rect(0, 0, 60, 60))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	DrawClipped(c, src, ports.Rect{X: 20, Y: 20, W: 60, H: 60}, ports.UniformRadii(20), false)

	px := c.Pixels()
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, px.RGBAAt(50, 50), "center drawn")
	assert.Equal(t, uint8(0), px.RGBAAt(21, 21).A, "rounded corner clipped")
	assert.Equal(t, uint8(0), px.RGBAAt(10, 10).A, "outside untouched")
}

func TestZeroOrigin(t *testing.T) {
	full := image.NewRGBA(image.Rect(0, 0, 20, 20))
	full.Set(12, 13, color.RGBA{R: 9, A: 255})
	sub := full.SubImage(image.Rect(10, 10, 20, 20))

	out := zeroOrigin(sub)
	assert.Equal(t, image.Rect(0, 0, 10, 10), out.Bounds())
	r, _, _, _ := out.At(2, 3).RGBA()
	assert.Equal(t, uint32(9*257), r)

	assert.Same(t, full, zeroOrigin(full).(*image.RGBA))
}
