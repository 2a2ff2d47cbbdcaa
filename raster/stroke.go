// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"

	"github.com/gogpu/shape"
)

// joinSegments is the number of sides of the polygon approximating a
// round join.
const joinSegments = 16

// stroke outlines the polylines with butt caps and round joins. Every
// segment and join is added with the same orientation, so overlapping
// pieces saturate instead of cancelling.
func (c *canvas) stroke(lines [][]shape.Point, closed []bool, width float64, paint shape.Paint) {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	hw := width / 2

	var drawn bool
	for i, pts := range lines {
		pts = dedupe(pts)
		if closed[i] && len(pts) > 1 && pts[0] != pts[len(pts)-1] {
			pts = append(pts, pts[0])
		}
		for j := 1; j < len(pts); j++ {
			c.segment(pts[j-1], pts[j], hw)
			drawn = true
		}
		last := len(pts) - 1
		for j := 1; j < last; j++ {
			c.join(pts[j], hw)
		}
		if closed[i] && last > 1 {
			c.join(pts[0], hw)
		}
	}
	if drawn {
		c.ras.Draw(c.img, b, image.NewUniform(paint.Color.Color()), image.Point{})
	}
}

// segment adds the rectangle covering one segment.
func (c *canvas) segment(p0, p1 shape.Point, hw float64) {
	d := p1.Sub(p0)
	n := shape.Pt(-d.Y, d.X).Mul(hw / d.Length())
	addPolygon(c.ras, []shape.Point{p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n)})
}

// join adds a disc at a vertex, wound like the segment rectangles.
func (c *canvas) join(center shape.Point, hw float64) {
	pts := make([]shape.Point, joinSegments)
	for k := range pts {
		a := -2 * math.Pi * float64(k) / joinSegments
		pts[k] = shape.Pt(center.X+hw*math.Cos(a), center.Y+hw*math.Sin(a))
	}
	addPolygon(c.ras, pts)
}

// dedupe drops consecutive duplicate points, which have no direction.
func dedupe(pts []shape.Point) []shape.Point {
	out := make([]shape.Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}
