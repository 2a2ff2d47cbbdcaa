// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster renders laid-out frames to images.
//
// Fills are scan-converted with golang.org/x/image/vector and text is
// drawn with golang.org/x/image/font/opentype. Frame coordinates are in
// points; WithScale sets the number of pixels per point.
//
// Usage:
//
//	frag, err := sq.Layout(ctx, shape.NewStyles(), regions)
//	if err != nil {
//	    return err
//	}
//	img, err := raster.New(raster.WithScale(2)).Render(ctx, frag.IntoFrame())
package raster

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"
	"sync"

	"github.com/gogpu/shape"
	"golang.org/x/image/vector"
)

// ErrInvalidSize is returned for frames that cannot be rendered to a
// finite image.
var ErrInvalidSize = errors.New("raster: invalid frame size")

// DefaultTolerance is the curve flattening tolerance in pixels.
const DefaultTolerance = 0.25

// MaxDimension is the largest image width or height, in pixels, that
// Render produces.
const MaxDimension = 1 << 15

// Option configures a Renderer.
type Option func(*options)

type options struct {
	scale      float64
	background shape.RGBA
	tolerance  float64
}

// WithScale sets the number of pixels per point. Default: 1.
func WithScale(s float64) Option {
	return func(o *options) {
		o.scale = s
	}
}

// WithBackground fills the image before drawing. Default: transparent.
func WithBackground(c shape.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithTolerance sets the curve flattening tolerance in pixels.
func WithTolerance(t float64) Option {
	return func(o *options) {
		o.tolerance = t
	}
}

// Renderer draws frames into RGBA images. A Renderer is safe for
// concurrent use; each Render call uses its own rasterizer.
type Renderer struct {
	opts  options
	fonts fontCache
}

// New creates a renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		opts: options{
			scale:     1,
			tolerance: DefaultTolerance,
		},
	}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r
}

// Render draws the frame into a new image sized to the frame at the
// renderer's scale. Items outside the frame are clipped.
func (r *Renderer) Render(ctx context.Context, f *shape.Frame) (*image.RGBA, error) {
	if !(r.opts.scale > 0) || math.IsInf(r.opts.scale, 0) {
		return nil, fmt.Errorf("%w: scale %v", ErrInvalidSize, r.opts.scale)
	}
	size := f.Size()
	if !size.IsFinite() || size.Width < 0 || size.Height < 0 {
		return nil, fmt.Errorf("%w: %v x %v", ErrInvalidSize, size.Width, size.Height)
	}

	pw := math.Ceil(size.Width * r.opts.scale)
	ph := math.Ceil(size.Height * r.opts.scale)
	if pw > MaxDimension || ph > MaxDimension {
		return nil, fmt.Errorf("%w: %v x %v pixels exceeds %d", ErrInvalidSize, pw, ph, MaxDimension)
	}
	w, h := int(pw), int(ph)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if r.opts.background != shape.Transparent {
		draw.Draw(img, img.Bounds(), image.NewUniform(r.opts.background.Color()), image.Point{}, draw.Src)
	}
	if w == 0 || h == 0 {
		return img, nil
	}

	c := &canvas{
		img:       img,
		ras:       vector.NewRasterizer(w, h),
		tolerance: r.opts.tolerance,
		fonts:     &r.fonts,
	}
	if err := c.frame(ctx, f, shape.Scale(r.opts.scale, r.opts.scale)); err != nil {
		return nil, err
	}
	shape.Logger().Debug("raster: rendered", "width", w, "height", h, "scale", r.opts.scale)
	return img, nil
}

// canvas holds the state of one Render call.
type canvas struct {
	img       *image.RGBA
	ras       *vector.Rasterizer
	tolerance float64
	fonts     *fontCache
}

func (c *canvas) frame(ctx context.Context, f *shape.Frame, m shape.Matrix) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, it := range f.Items() {
		local := m.PreTranslate(it.Pos)
		switch item := it.Item.(type) {
		case shape.GroupItem:
			if err := c.frame(ctx, item.Frame, local); err != nil {
				return err
			}
		case shape.ShapeItem:
			c.primitive(item.Primitive, local)
		case shape.TextItem:
			c.text(item, local)
		case shape.MetaItem:
			// Metadata has no visual representation.
		}
	}
	return nil
}

func (c *canvas) primitive(p shape.Primitive, m shape.Matrix) {
	path := p.Geometry.ToPath().Transform(m)
	lines, closed := path.Flatten(c.tolerance)

	if paint, ok := p.Fill.Get(); ok {
		c.fill(lines, closed, paint)
	}
	if s, ok := p.Stroke.Get(); ok && s.Thickness > 0 {
		// Frames only translate and scale uniformly.
		width := s.Thickness * math.Abs(m.A)
		c.stroke(lines, closed, width, s.Paint)
	}
}

// fill scan-converts the closed subpaths. Open subpaths are not filled.
func (c *canvas) fill(lines [][]shape.Point, closed []bool, paint shape.Paint) {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	var drawn bool
	for i, pts := range lines {
		if !closed[i] || len(pts) < 3 {
			continue
		}
		addPolygon(c.ras, pts)
		drawn = true
	}
	if drawn {
		c.ras.Draw(c.img, b, image.NewUniform(paint.Color.Color()), image.Point{})
	}
}

func addPolygon(ras *vector.Rasterizer, pts []shape.Point) {
	ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		ras.LineTo(float32(p.X), float32(p.Y))
	}
	ras.ClosePath()
}

// fontCache holds parsed fonts keyed by the address of their data.
type fontCache struct {
	mu    sync.Mutex
	fonts map[*byte]*parsedFont
}
