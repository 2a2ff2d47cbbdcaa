package shape

import (
	"context"
	"slices"

	"github.com/google/uuid"
)

// Shape is a geometric element with optional content. It implements
// Content, so shapes can be nested in each other and in any other
// content.
type Shape struct {
	kind     ShapeKind
	props    Props
	body     Content
	vertices []Vertex
	id       uuid.UUID
}

func newShape(kind ShapeKind, body Content, vertices []Vertex, opts []ShapeOption) *Shape {
	s := &Shape{kind: kind, body: body, vertices: vertices, id: uuid.New()}
	for _, opt := range opts {
		opt(&s.props)
	}
	return s
}

// NewRect creates a rectangle. Without a body or size it defaults to
// at most 45pt by 30pt.
func NewRect(body Content, opts ...ShapeOption) *Shape {
	return newShape(Rect, body, nil, opts)
}

// NewSquare creates a square. The square grows to fit its body while
// keeping a 1:1 aspect ratio; without a body it defaults to at most
// 30pt.
func NewSquare(body Content, opts ...ShapeOption) *Shape {
	return newShape(Square, body, nil, opts)
}

// NewEllipse creates an ellipse. Without a body or size it defaults to
// at most 45pt by 30pt.
func NewEllipse(body Content, opts ...ShapeOption) *Shape {
	return newShape(Ellipse, body, nil, opts)
}

// NewCircle creates a circle. Use WithCircleRadius to size it
// explicitly.
func NewCircle(body Content, opts ...ShapeOption) *Shape {
	return newShape(Circle, body, nil, opts)
}

// NewPolygon creates a polygon through the given vertices, scaled to
// fill the shape's frame.
func NewPolygon(vertices []Vertex, body Content, opts ...ShapeOption) *Shape {
	return newShape(Polygon, body, slices.Clone(vertices), opts)
}

// ParsePolygon creates a polygon from a vertex list in the form
// "x,y; x,y; ...". The list is validated immediately.
func ParsePolygon(path string, body Content, opts ...ShapeOption) (*Shape, error) {
	vertices, err := ParseVertices(path)
	if err != nil {
		return nil, err
	}
	return newShape(Polygon, body, vertices, opts), nil
}

// Kind returns the shape's kind.
func (s *Shape) Kind() ShapeKind {
	return s.kind
}

// ID returns the identity attached to the shape's frames.
func (s *Shape) ID() uuid.UUID {
	return s.id
}

// Vertices returns the polygon's vertices; nil for other kinds.
func (s *Shape) Vertices() []Vertex {
	return s.vertices
}

// Layout folds the shape's attributes with the style chain and lays the
// shape out.
func (s *Shape) Layout(ctx context.Context, st *Styles, regions Regions) (Fragment, error) {
	r := st.resolve(s.kind, s.props)
	return LayoutShape(ctx, st, regions, Params{
		Kind:     s.kind,
		Body:     s.body,
		Sizing:   r.sizing,
		Fill:     r.fill,
		Stroke:   r.stroke,
		Inset:    r.inset,
		Outset:   r.outset,
		Radius:   r.radius,
		Vertices: s.vertices,
		ID:       s.id,
	})
}
