// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"
	"slices"

	"github.com/gogpu/shape"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type parsedFont = opentype.Font

// text draws one line at its baseline origin. Right-to-left lines are
// drawn with their runes reversed, which is exact for unjoined scripts
// and an approximation for Arabic.
func (c *canvas) text(item shape.TextItem, m shape.Matrix) {
	if item.Text == "" || !(item.FontSize > 0) {
		return
	}
	f, err := c.fonts.get(item.Font)
	if err != nil {
		shape.Logger().Warn("raster: font unavailable", "text", item.Text, "err", err)
		return
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    item.FontSize * math.Abs(m.A),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		shape.Logger().Warn("raster: font face", "size", item.FontSize, "err", err)
		return
	}
	defer face.Close()

	s := item.Text
	if item.RTL {
		r := []rune(s)
		slices.Reverse(r)
		s = string(r)
	}

	origin := m.TransformPoint(shape.Point{})
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(item.Fill.Color.Color()),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(origin.X), Y: toFixed(origin.Y)},
	}
	d.DrawString(s)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// get returns the parsed font for data, parsing it on first use. Nil
// data selects Go Regular.
func (fc *fontCache) get(data []byte) (*parsedFont, error) {
	if len(data) == 0 {
		data = goregular.TTF
	}
	key := &data[0]

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if f, ok := fc.fonts[key]; ok {
		return f, nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	if fc.fonts == nil {
		fc.fonts = make(map[*byte]*parsedFont)
	}
	fc.fonts[key] = f
	return f, nil
}
