package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/shotframe/pkg/pipeline"
)

func TestGradients_Parse(t *testing.T) {
	require.Len(t, Gradients, 15)
	for _, g := range Gradients {
		bg := g.Background()
		assert.Equal(t, pipeline.BackgroundLinear, bg.Kind, g.Name)
		assert.GreaterOrEqual(t, len(bg.Colors), 2, g.Name)
		assert.Equal(t, 135.0, bg.GradientAngle(), g.Name)
		assert.Equal(t, g.ID > 5, g.Pro, g.Name)
	}

	g, ok := GradientByID(7)
	require.True(t, ok)
	assert.Equal(t, []string{"#00c9ff", "#92fe9d", "#f0f"}, g.Background().Colors)
}

func TestResolveBackground(t *testing.T) {
	bg, err := ResolveBackground("mesh:102")
	require.NoError(t, err)
	assert.Equal(t, pipeline.BackgroundMesh, bg.Kind)
	assert.Equal(t, 0.03, bg.Noise)
	assert.Len(t, bg.Points, 4)

	bg, err = ResolveBackground("solid:Black")
	require.NoError(t, err)
	assert.Equal(t, pipeline.FlatBackground("#0a0a0a"), bg)

	bg, err = ResolveBackground("gradient:1")
	require.NoError(t, err)
	assert.Equal(t, []string{"#667eea", "#764ba2"}, bg.Colors)

	bg, err = ResolveBackground("#123456")
	require.NoError(t, err)
	assert.Equal(t, pipeline.BackgroundFlat, bg.Kind)

	bg, err = ResolveBackground("rgba(0, 0, 0, 0.5)")
	require.NoError(t, err)
	assert.Equal(t, "rgba(0, 0, 0, 0.5)", bg.Color)

	for _, bad := range []string{"mesh:999", "mesh:x", "gradient:0", "solid:teal"} {
		_, err := ResolveBackground(bad)
		assert.ErrorIs(t, err, ErrNotFound, bad)
	}
	_, err = ResolveBackground("not a color")
	assert.Error(t, err)
}

func TestMesh_BackgroundCopiesPoints(t *testing.T) {
	m, _ := MeshByID(101)
	bg := m.Background()
	bg.Points[0].Color = "#000000"
	assert.Equal(t, "#00d2ff", Meshes[0].Points[0].Color)
}

func TestBackgroundPro(t *testing.T) {
	free, _ := ResolveBackground("gradient:2")
	pro, _ := ResolveBackground("gradient:8")
	mesh, _ := ResolveBackground("mesh:101")

	assert.False(t, BackgroundPro(free))
	assert.True(t, BackgroundPro(pro))
	assert.True(t, BackgroundPro(mesh))
	assert.True(t, BackgroundPro(pipeline.FlatBackground("#EF4444")))
	assert.False(t, BackgroundPro(pipeline.FlatBackground("#ffffff")))
	assert.False(t, BackgroundPro(pipeline.FlatBackground("#abcdef")), "custom colors are free")
}

func TestFormatPro(t *testing.T) {
	assert.False(t, FormatPro(pipeline.FormatPNG))
	assert.True(t, FormatPro(pipeline.FormatJPG))
	assert.True(t, FormatPro(pipeline.FormatWebP))
}

func TestMockups_CoverAllTypes(t *testing.T) {
	for _, mt := range pipeline.MockupTypes {
		m, ok := MockupByType(mt)
		require.True(t, ok, mt)
		assert.Equal(t, mt != pipeline.MockupNone, m.Pro, mt)
	}
}

func TestPresets(t *testing.T) {
	for _, p := range Presets {
		t.Run(p.ID, func(t *testing.T) {
			base := pipeline.DefaultSettings()
			base.ShowWatermark = true

			s, err := p.Apply(base)
			require.NoError(t, err)
			assert.NoError(t, s.Validate())
			assert.Equal(t, p.Padding, s.Padding)
			assert.Equal(t, p.Mockup, s.Mockup)
			assert.True(t, s.ShowWatermark, "unrelated settings are kept")
			require.NotNil(t, s.Tilt)
			assert.Equal(t, p.Tilt, *s.Tilt)
		})
	}

	p, ok := PresetByID("SOCIAL-PRIME")
	require.True(t, ok)
	assert.False(t, p.Pro())
	p, _ = PresetByID("macbook-stealth")
	assert.True(t, p.Pro())

	_, ok = PresetByID("missing")
	assert.False(t, ok)
}
