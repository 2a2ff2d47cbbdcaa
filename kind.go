package shape

// ShapeKind is the category of a shape. It is fixed for the lifetime of
// a shape and decides how the shape is sized and painted.
type ShapeKind int

const (
	// Square is a rectangle with equal side lengths.
	Square ShapeKind = iota
	// Rect is a quadrilateral with four right angles.
	Rect
	// Circle is an ellipse with coinciding foci.
	Circle
	// Ellipse is a curve around two focal points.
	Ellipse
	// Polygon is a closed path through any number of vertices.
	Polygon
)

// IsRound reports whether the kind is curvy.
func (k ShapeKind) IsRound() bool {
	return k == Circle || k == Ellipse
}

// IsQuadratic reports whether the kind must end up with equal width and
// height.
func (k ShapeKind) IsQuadratic() bool {
	return k == Square || k == Circle
}

// IsPolygonal reports whether the kind is drawn from a vertex list.
func (k ShapeKind) IsPolygonal() bool {
	return k == Polygon
}

// String returns the kind name.
func (k ShapeKind) String() string {
	switch k {
	case Square:
		return "square"
	case Rect:
		return "rect"
	case Circle:
		return "circle"
	case Ellipse:
		return "ellipse"
	case Polygon:
		return "polygon"
	default:
		return "unknown"
	}
}
