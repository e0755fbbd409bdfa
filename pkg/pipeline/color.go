package pipeline

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

var namedColors = map[string]color.NRGBA{
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"black":       {A: 255},
	"red":         {R: 255, A: 255},
	"transparent": {},
}

// ParseColor parses a CSS-like color: #rgb, #rgba, #rrggbb, #rrggbbaa,
// rgb(r, g, b), rgba(r, g, b, a) or one of a few names.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color")
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if strings.HasPrefix(s, "rgb") {
		return parseRGBFunc(s)
	}
	return color.NRGBA{}, fmt.Errorf("unsupported color %q", s)
}

// MustColor parses s and falls back to def when s is empty or invalid.
func MustColor(s string, def color.NRGBA) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		return def
	}
	return c
}

// RGBA returns an opaque color with alpha a in [0,1].
func RGBA(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clampFloat(a, 0, 1) * 255))}
}

func parseHex(hex string) (color.NRGBA, error) {
	for i := 0; i < len(hex); i++ {
		if _, ok := hexValue(hex[i]); !ok {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q", "#"+hex)
		}
	}

	digit := func(i int) uint8 {
		v, _ := hexValue(hex[i])
		return v
	}
	pair := func(i int) uint8 {
		return digit(i)<<4 | digit(i+1)
	}
	short := func(i int) uint8 {
		return digit(i)<<4 | digit(i)
	}

	switch len(hex) {
	case 3:
		return color.NRGBA{R: short(0), G: short(1), B: short(2), A: 255}, nil
	case 4:
		return color.NRGBA{R: short(0), G: short(1), B: short(2), A: short(3)}, nil
	case 6:
		return color.NRGBA{R: pair(0), G: pair(2), B: pair(4), A: 255}, nil
	case 8:
		return color.NRGBA{R: pair(0), G: pair(2), B: pair(4), A: pair(6)}, nil
	}
	return color.NRGBA{}, fmt.Errorf("invalid hex color %q", "#"+hex)
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

func parseRGBFunc(s string) (color.NRGBA, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return color.NRGBA{}, fmt.Errorf("invalid color function %q", s)
	}
	name := s[:open]
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if (name == "rgb" && len(parts) != 3) || (name == "rgba" && len(parts) != 4) {
		return color.NRGBA{}, fmt.Errorf("invalid color function %q", s)
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid channel in %q: %w", s, err)
		}
		ch[i] = uint8(math.Round(clampFloat(v, 0, 255)))
	}
	alpha := 1.0
	if len(parts) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
		alpha = v
	}
	return RGBA(ch[0], ch[1], ch[2], alpha), nil
}
