package tilt

import (
	"bytes"
	"context"
	"errors"
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/shotframe/pkg/adapters/ggrenderer"
	"github.com/user/shotframe/pkg/adapters/logger"
	"github.com/user/shotframe/pkg/mocks"
	"github.com/user/shotframe/pkg/pipeline"
	"github.com/user/shotframe/pkg/ports"
)

func TestShear(t *testing.T) {
	sx, sy := Shear(nil)
	assert.Zero(t, sx)
	assert.Zero(t, sy)

	sx, sy = Shear(&pipeline.Tilt{RotateX: 10, RotateY: -5})
	assert.InDelta(t, 10*math.Pi/180*0.2, sx, 1e-12)
	assert.InDelta(t, -5*math.Pi/180*0.2, sy, 1e-12)

	sx, _ = Shear(&pipeline.Tilt{RotateX: 90})
	assert.InDelta(t, 15*math.Pi/180*0.2, sx, 1e-12, "clamped to the maximum angle")
}

func TestApply(t *testing.T) {
	c := mocks.NewCanvas(200, 100)
	Apply(c, &pipeline.Tilt{}, 200, 100)
	assert.Empty(t, c.Calls, "zero tilt is not applied")

	Apply(c, &pipeline.Tilt{RotateY: 10}, 200, 100)
	calls := c.Find("ShearAbout")
	require.Len(t, calls, 1)
	assert.Equal(t, 0.0, calls[0].Args[0])
	assert.Equal(t, 100.0, calls[0].Args[2])
	assert.Equal(t, 50.0, calls[0].Args[3])
}

func fill(name string) pipeline.Stage[pipeline.Scene, pipeline.Scene] {
	return pipeline.StageFunc[pipeline.Scene, pipeline.Scene](func(ctx context.Context, s pipeline.Scene) (pipeline.Scene, error) {
		s.Canvas.FillRect(ports.Rect{X: 20, Y: 20, W: 60, H: 60}, image.White)
		return s, nil
	})
}

func TestStage_Execute_WrapsInner(t *testing.T) {
	c := mocks.NewCanvas(100, 100)
	stage := NewStage(logger.NewNoop(), fill("a"), fill("b"))

	scene := pipeline.Scene{Canvas: c, Settings: pipeline.Settings{Tilt: &pipeline.Tilt{RotateX: 5}}}
	_, err := stage.Execute(context.Background(), scene)
	require.NoError(t, err)

	assert.Equal(t, []string{"Push", "ShearAbout", "FillRect", "FillRect", "Pop"}, c.Ops())
	assert.Equal(t, 0, c.Depth)
}

func TestStage_Execute_PopsOnError(t *testing.T) {
	c := mocks.NewCanvas(100, 100)
	boom := errors.New("boom")
	failing := pipeline.StageFunc[pipeline.Scene, pipeline.Scene](func(ctx context.Context, s pipeline.Scene) (pipeline.Scene, error) {
		return s, boom
	})
	stage := NewStage(logger.NewNoop(), failing, fill("never"))

	_, err := stage.Execute(context.Background(), pipeline.Scene{Canvas: c})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Depth)
	assert.Empty(t, c.Find("FillRect"))
}

func TestStage_Execute_Canceled(t *testing.T) {
	c := mocks.NewCanvas(100, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStage(logger.NewNoop(), fill("a")).Execute(ctx, pipeline.Scene{Canvas: c})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, c.Depth)
}

// A zero tilt must leave the pixels identical to an untilted draw.
func TestStage_ZeroTiltIsIdentity(t *testing.T) {
	render := func(tl *pipeline.Tilt) []byte {
		c, err := ggrenderer.New().CreateCanvas(100, 100)
		require.NoError(t, err)
		_, err = NewStage(logger.NewNoop(), fill("a")).Execute(context.Background(),
			pipeline.Scene{Canvas: c, Settings: pipeline.Settings{Tilt: tl}})
		require.NoError(t, err)
		return bytes.Clone(c.Pixels().Pix)
	}

	assert.Equal(t, render(nil), render(&pipeline.Tilt{}))
	assert.NotEqual(t, render(nil), render(&pipeline.Tilt{RotateY: 15}))
}
