package pipeline

import "errors"

var (
	// ErrDecode is returned when the source image cannot be decoded.
	ErrDecode = errors.New("pipeline: decode failed")

	// ErrSurface is returned when a drawing surface cannot be allocated.
	ErrSurface = errors.New("pipeline: surface unavailable")

	// ErrEncode is returned when the surface cannot be serialized.
	ErrEncode = errors.New("pipeline: encode failed")
)

// ErrSettings is returned when settings name an unknown enum value.
var ErrSettings = errors.New("pipeline: invalid settings")
