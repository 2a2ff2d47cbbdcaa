package shape

import "math"

// Geometry is the outline of a paint primitive, in the primitive's local
// coordinates with the origin at the top-left of its box.
type Geometry interface {
	isGeometry()

	// ToPath converts the geometry to a path.
	ToPath() *Path
}

// RectGeometry is an axis-aligned rectangle from the origin.
type RectGeometry struct {
	Size Size
}

func (RectGeometry) isGeometry() {}

// ToPath returns the rectangle as a closed path.
func (g RectGeometry) ToPath() *Path {
	p := NewPath()
	p.Rectangle(0, 0, g.Size.Width, g.Size.Height)
	return p
}

// EllipseGeometry is the ellipse inscribed in a box from the origin.
type EllipseGeometry struct {
	Size Size
}

func (EllipseGeometry) isGeometry() {}

// ToPath returns the ellipse as four cubic segments.
func (g EllipseGeometry) ToPath() *Path {
	rx, ry := g.Size.Width/2, g.Size.Height/2
	p := NewPath()
	p.Ellipse(rx, ry, rx, ry)
	return p
}

// Primitive is a geometry with an optional fill and an optional stroke.
// Open paths are only stroked.
type Primitive struct {
	Geometry Geometry
	Fill     Option[Paint]
	Stroke   Option[Stroke]
}

// paintShape adds the shape's visuals beneath the frame's contents.
func paintShape(frame *Frame, kind ShapeKind, fill Option[Paint], stroke Sides[Option[Stroke]], outset Sides[RelAbs], radius Corners[RelAbs], vertices []Vertex) {
	if !kind.IsRound() && !kind.IsPolygonal() {
		frame.FillAndStroke(fill, stroke, outset, radius)
		return
	}

	out := ResolveSides(outset, frame.Size())
	size := frame.Size().Add(SumByAxis(out))
	pos := Pt(-out.Left, -out.Top)

	var geom Geometry
	if kind.IsRound() {
		geom = EllipseGeometry{Size: size}
	} else {
		if b, ok := PolygonBounds(vertices); ok {
			if err := b.Degenerate(); err != nil {
				Logger().Debug("shape: polygon flattened", "err", err, "vertices", len(vertices))
			}
		}
		path := NormalizePolygon(vertices, size)
		if path.IsEmpty() {
			return
		}
		geom = path
	}

	frame.Prepend(pos, ShapeItem{Primitive: Primitive{
		Geometry: geom,
		Fill:     fill,
		Stroke:   stroke.Left,
	}})
}

// roundedRect builds the primitives for a rectangle of the given size.
// A uniform stroke yields a single primitive; otherwise the fill comes
// first, followed by one open path per run of adjacent edges that share
// a stroke. Each edge's path spans half of each adjacent corner.
func roundedRect(size Size, radius Corners[float64], fill Option[Paint], stroke Sides[Option[Stroke]]) []Primitive {
	limit := max(0, size.MinBySide()/2)
	r := MapCorners(radius, func(v float64) float64 {
		if math.IsNaN(v) {
			return 0
		}
		return max(0, min(v, limit))
	})
	rounded := r != Corners[float64]{}

	var outline Geometry = RectGeometry{Size: size}
	if rounded {
		outline = roundedPath(size, r)
	}

	if UniformSides(stroke) {
		if fill.IsNone() && stroke.Top.IsNone() {
			return nil
		}
		return []Primitive{{Geometry: outline, Fill: fill, Stroke: stroke.Top}}
	}

	var prims []Primitive
	if fill.IsSome() {
		prims = append(prims, Primitive{Geometry: outline, Fill: fill})
	}

	// Start after an edge change so no run wraps around the origin.
	start := 0
	for i := range allSides {
		if stroke.Get(allSides[i]) != stroke.Get(allSides[(i+3)%4]) {
			start = i
			break
		}
	}

	for n := 0; n < 4; {
		first := (start + n) % 4
		s := stroke.Get(allSides[first])
		count := 1
		for n+count < 4 && stroke.Get(allSides[(first+count)%4]) == s {
			count++
		}
		n += count
		if s.IsNone() {
			continue
		}

		p := NewPath()
		from := cornerPoint(size, r, Corner(first), 0.5)
		p.MoveTo(from.X, from.Y)
		for k := range count {
			edgePath(p, size, r, (first+k)%4)
		}
		prims = append(prims, Primitive{Geometry: p, Stroke: s})
	}
	return prims
}

// roundedPath returns a closed outline with per-corner radii.
func roundedPath(size Size, r Corners[float64]) *Path {
	p := NewPath()
	from := cornerPoint(size, r, TopLeft, 0)
	p.MoveTo(from.X, from.Y)
	for c := range 4 {
		corner := Corner(c)
		center := cornerCenter(size, r, corner)
		a := cornerAngle(corner)
		p.ArcTo(center.X, center.Y, r.Get(corner), a, a+math.Pi/2)
		next := cornerPoint(size, r, Corner((c+1)%4), 0)
		p.LineTo(next.X, next.Y)
	}
	p.Close()
	return p
}

// edgePath continues p along edge i (in Side order) from the middle of
// its starting corner's arc to the middle of its ending corner's arc.
func edgePath(p *Path, size Size, r Corners[float64], i int) {
	c0, c1 := Corner(i), Corner((i+1)%4)

	center := cornerCenter(size, r, c0)
	a := cornerAngle(c0)
	p.ArcTo(center.X, center.Y, r.Get(c0), a+math.Pi/4, a+math.Pi/2)

	next := cornerPoint(size, r, c1, 0)
	p.LineTo(next.X, next.Y)

	center = cornerCenter(size, r, c1)
	a = cornerAngle(c1)
	p.ArcTo(center.X, center.Y, r.Get(c1), a, a+math.Pi/4)
}

// cornerAngle is the angle at which a corner's arc starts. Arcs run
// clockwise through a quarter turn.
func cornerAngle(c Corner) float64 {
	return math.Pi + float64(c)*math.Pi/2
}

func cornerCenter(size Size, r Corners[float64], c Corner) Point {
	rad := r.Get(c)
	switch c {
	case TopLeft:
		return Pt(rad, rad)
	case TopRight:
		return Pt(size.Width-rad, rad)
	case BottomRight:
		return Pt(size.Width-rad, size.Height-rad)
	default:
		return Pt(rad, size.Height-rad)
	}
}

// cornerPoint returns the point at fraction t of the corner's arc. A
// sharp corner is the same point for every t.
func cornerPoint(size Size, r Corners[float64], c Corner, t float64) Point {
	center := cornerCenter(size, r, c)
	rad := r.Get(c)
	if rad == 0 {
		return center
	}
	a := cornerAngle(c) + t*math.Pi/2
	return Pt(center.X+rad*math.Cos(a), center.Y+rad*math.Sin(a))
}
