package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is a parsed OpenType font. A Font is read-only and safe for
// concurrent use; sizes are chosen per shaping call.
type Font struct {
	data []byte
	font *font.Font
}

// ParseFont parses TrueType or OpenType font data.
func ParseFont(data []byte) (*Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &Font{data: data, font: face.Font}, nil
}

var defaultFont = sync.OnceValue(func() *Font {
	f, err := ParseFont(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
})

// DefaultFont returns the built-in Go Regular font.
func DefaultFont() *Font {
	return defaultFont()
}

// Data returns the raw font data. Renderers parse it with their own
// font backend.
func (f *Font) Data() []byte {
	return f.data
}

// newFace creates a face for one shaping call. font.Face is not safe
// for concurrent use, unlike font.Font.
func (f *Font) newFace() *font.Face {
	return font.NewFace(f.font)
}
