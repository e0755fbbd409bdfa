package cmdclipboard

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

type call struct {
	stdin []byte
	argv  []string
}

func recorder(out []byte, err error) (Runner, *[]call) {
	var calls []call
	return func(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
		calls = append(calls, call{stdin: stdin, argv: append([]string{name}, args...)})
		return out, err
	}, &calls
}

func TestWrite(t *testing.T) {
	tests := []struct {
		platform string
		wayland  bool
		want     string
	}{
		{"linux", false, "xclip -selection clipboard -t image/png -i"},
		{"linux", true, "wl-copy --type image/png"},
		{"freebsd", false, "xclip -selection clipboard -t image/png -i"},
	}
	for _, tt := range tests {
		run, calls := recorder(nil, nil)
		c := NewWithRunner(tt.platform, tt.wayland, run)
		require.NoError(t, c.Write(context.Background(), pngMagic, "image/png"))
		require.Len(t, *calls, 1)
		assert.Equal(t, tt.want, strings.Join((*calls)[0].argv, " "))
		assert.Equal(t, pngMagic, (*calls)[0].stdin)
	}
}

func TestWrite_Darwin(t *testing.T) {
	run, calls := recorder(nil, nil)
	c := NewWithRunner("darwin", false, run)
	require.NoError(t, c.Write(context.Background(), pngMagic, "image/png"))
	require.Len(t, *calls, 1)
	assert.Equal(t, "osascript", (*calls)[0].argv[0])
	assert.Contains(t, (*calls)[0].argv[2], "«class PNGf»")
}

func TestRead(t *testing.T) {
	run, calls := recorder(pngMagic, nil)
	c := NewWithRunner("linux", true, run)
	data, err := c.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, pngMagic, data)
	assert.Equal(t, "wl-paste --type image/png", strings.Join((*calls)[0].argv, " "))
}

func TestRead_Errors(t *testing.T) {
	run, _ := recorder([]byte("just text"), nil)
	_, err := NewWithRunner("linux", false, run).Read(context.Background())
	assert.Error(t, err)

	run, _ = recorder(nil, errors.New("xclip: not found"))
	_, err = NewWithRunner("linux", false, run).Read(context.Background())
	assert.ErrorContains(t, err, "not found")

	_, err = NewWithRunner("windows", false, run).Read(context.Background())
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.ErrorIs(t, NewWithRunner("windows", false, run).Write(context.Background(), pngMagic, "image/png"), ErrUnsupported)
}
