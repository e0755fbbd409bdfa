package ggrenderer

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type faceKey struct {
	bold bool
	size float64
}

// fontSet parses the embedded Go fonts once. Parsed fonts are read-only
// and shared; faces keep glyph caches and belong to a single canvas.
type fontSet struct {
	once    sync.Once
	regular *truetype.Font
	bold    *truetype.Font
}

func (f *fontSet) load() {
	f.once.Do(func() {
		// A parse failure leaves the font nil and newFace falls back
		// to basicfont.
		f.regular, _ = truetype.Parse(goregular.TTF)
		f.bold, _ = truetype.Parse(gobold.TTF)
	})
}

func (f *fontSet) newFace(key faceKey) font.Face {
	f.load()
	ttf := f.regular
	if key.bold {
		ttf = f.bold
	}
	if ttf == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: key.size, Hinting: font.HintingNone})
}

// face returns the canvas-local face of the given pixel size.
func (c *Canvas) face(bold bool, size float64) font.Face {
	if size <= 0 {
		size = 16
	}
	key := faceKey{bold: bold, size: size}
	if face, ok := c.faces[key]; ok {
		return face
	}
	face := c.fonts.newFace(key)
	c.faces[key] = face
	return face
}
