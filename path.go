package shape

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

func (*Path) isGeometry() {}

// ToPath returns the path itself.
func (p *Path) ToPath() *Path {
	return p
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Ellipse adds an ellipse to the path.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// ArcTo continues the path with a circular arc around (cx, cy) from
// angle1 to angle2 (radians, clockwise on screen since Y points down).
// A line joins the current point to the arc's start when they differ,
// and an empty path starts at the arc. A zero radius arc degenerates to
// a line to the center.
func (p *Path) ArcTo(cx, cy, r, angle1, angle2 float64) {
	if r <= 0 {
		p.LineTo(cx, cy)
		return
	}

	start := Pt(cx+r*math.Cos(angle1), cy+r*math.Sin(angle1))
	switch {
	case p.IsEmpty():
		p.MoveTo(start.X, start.Y)
	case p.CurrentPoint().Sub(start).Length() > 1e-9:
		p.LineTo(start.X, start.Y)
	}

	// Maximum 90 degrees per segment
	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil(math.Abs(angle2-angle1) / maxAngle))
	if numSegments == 0 {
		return
	}
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		p.arcSegment(cx, cy, r, a1, a1+angleStep)
	}
}

// arcSegment adds a single arc segment of at most 90 degrees.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	p.CubicTo(x1-alpha*r*sin1, y1+alpha*r*cos1, x2+alpha*r*sin2, y2-alpha*r*cos2, x2, y2)
}

// Flatten approximates the path with polylines, one per subpath.
// Curves are split into segments no longer than roughly tolerance.
// The second result reports which subpaths were closed.
func (p *Path) Flatten(tolerance float64) ([][]Point, []bool) {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	var (
		lines  [][]Point
		closed []bool
		cur    []Point
	)
	flush := func(isClosed bool) {
		if len(cur) > 0 {
			lines = append(lines, cur)
			closed = append(closed, isClosed)
		}
		cur = nil
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			cur = []Point{e.Point}
		case LineTo:
			cur = append(cur, e.Point)
		case CubicTo:
			var from Point
			if len(cur) > 0 {
				from = cur[len(cur)-1]
			}
			cur = appendCubic(cur, from, e.Control1, e.Control2, e.Point, tolerance)
		case Close:
			flush(true)
		}
	}
	flush(false)
	return lines, closed
}

// appendCubic appends the flattened curve, excluding its start point.
func appendCubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	// The control polygon bounds the curve length.
	length := p0.Sub(p1).Length() + p1.Sub(p2).Length() + p2.Sub(p3).Length()
	n := int(math.Ceil(length / (tolerance * 8)))
	n = max(1, min(n, 64))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		c := 3 * mt * t * t
		d := t * t * t
		dst = append(dst, Point{
			X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
			Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		})
	}
	return dst
}
