package shape

import (
	"fmt"
	"math"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Point
}

// Extent returns the width and height of the box.
func (b Box) Extent() Size {
	return Size{Width: b.Max.X - b.Min.X, Height: b.Max.Y - b.Min.Y}
}

// Degenerate reports an error wrapping ErrDegenerateGeometry if the box
// has no usable extent on an axis.
func (b Box) Degenerate() error {
	e := b.Extent()
	switch {
	case !usableExtent(e.Width) && !usableExtent(e.Height):
		return fmt.Errorf("%w: zero width and height", ErrDegenerateGeometry)
	case !usableExtent(e.Width):
		return fmt.Errorf("%w: zero width", ErrDegenerateGeometry)
	case !usableExtent(e.Height):
		return fmt.Errorf("%w: zero height", ErrDegenerateGeometry)
	}
	return nil
}

// PolygonBounds computes the bounding box of the vertices in a single
// pass. It reports false for an empty vertex list.
func PolygonBounds(vs []Vertex) (Box, bool) {
	if len(vs) == 0 {
		return Box{}, false
	}
	b := Box{
		Min: Pt(math.Inf(1), math.Inf(1)),
		Max: Pt(math.Inf(-1), math.Inf(-1)),
	}
	for _, v := range vs {
		b.Min.X = min(b.Min.X, v.X)
		b.Min.Y = min(b.Min.Y, v.Y)
		b.Max.X = max(b.Max.X, v.X)
		b.Max.Y = max(b.Max.Y, v.Y)
	}
	return b, true
}

// NormalizeVertices maps the vertices into a box of the given size so
// that their bounding box becomes exactly (0,0)-(size), keeping order
// and relative positions. Each axis is scaled by target / (max - min).
//
// An axis without extent (all vertices share the coordinate) cannot be
// scaled; every vertex is placed on the middle of the target on that
// axis, so the polygon becomes a centered line. A non-finite target
// yields nil.
func NormalizeVertices(vs []Vertex, size Size) []Point {
	b, ok := PolygonBounds(vs)
	if !ok || !size.IsFinite() {
		return nil
	}
	extent := b.Extent()
	mapX := axisMapper(b.Min.X, extent.Width, size.Width)
	mapY := axisMapper(b.Min.Y, extent.Height, size.Height)

	out := make([]Point, len(vs))
	for i, v := range vs {
		out[i] = Pt(mapX(v.X), mapY(v.Y))
	}
	return out
}

// NormalizePolygon builds a closed path through the normalized vertices
// in their original order. An empty vertex list yields an empty path.
func NormalizePolygon(vs []Vertex, size Size) *Path {
	path := NewPath()
	pts := NormalizeVertices(vs, size)
	if len(pts) == 0 {
		return path
	}
	path.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		path.LineTo(pt.X, pt.Y)
	}
	path.Close()
	return path
}

func axisMapper(lo, extent, target float64) func(float64) float64 {
	if !usableExtent(extent) {
		mid := target / 2
		return func(float64) float64 { return mid }
	}
	// Dividing first keeps the extreme vertices exactly on 0 and target.
	return func(v float64) float64 { return (v - lo) / extent * target }
}

// usableExtent reports whether a bounding box extent can divide.
func usableExtent(e float64) bool {
	return e > 0 && !math.IsInf(e, 0)
}
