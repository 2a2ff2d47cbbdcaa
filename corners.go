package shape

// Corner identifies one corner of a box.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// allCorners lists the corners in clockwise order starting at the top left.
var allCorners = [4]Corner{TopLeft, TopRight, BottomRight, BottomLeft}

// String returns the corner name.
func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	default:
		return "unknown"
	}
}

// Corners holds a fully resolved value for each corner of a box.
type Corners[T any] struct {
	TopLeft, TopRight, BottomRight, BottomLeft T
}

// SplatCorners returns Corners with v on every corner.
func SplatCorners[T any](v T) Corners[T] {
	return Corners[T]{TopLeft: v, TopRight: v, BottomRight: v, BottomLeft: v}
}

// Get returns the value at one corner.
func (c Corners[T]) Get(corner Corner) T {
	switch corner {
	case TopLeft:
		return c.TopLeft
	case TopRight:
		return c.TopRight
	case BottomRight:
		return c.BottomRight
	default:
		return c.BottomLeft
	}
}

// Set stores the value for one corner.
func (c *Corners[T]) Set(corner Corner, v T) {
	switch corner {
	case TopLeft:
		c.TopLeft = v
	case TopRight:
		c.TopRight = v
	case BottomRight:
		c.BottomRight = v
	default:
		c.BottomLeft = v
	}
}

// MapCorners applies f to every corner.
func MapCorners[T, U any](c Corners[T], f func(T) U) Corners[U] {
	return Corners[U]{
		TopLeft:     f(c.TopLeft),
		TopRight:    f(c.TopRight),
		BottomRight: f(c.BottomRight),
		BottomLeft:  f(c.BottomLeft),
	}
}

// PartialCorners is one scope's view of a per-corner attribute.
type PartialCorners[T any] struct {
	TopLeft, TopRight, BottomRight, BottomLeft Option[T]
	Rest                                       Option[T]
}

// AllCorners returns a scope that sets every corner to v.
func AllCorners[T any](v T) PartialCorners[T] {
	return PartialCorners[T]{Rest: Some(v)}
}

// With returns a copy of p with one corner set explicitly.
func (p PartialCorners[T]) With(corner Corner, v T) PartialCorners[T] {
	switch corner {
	case TopLeft:
		p.TopLeft = Some(v)
	case TopRight:
		p.TopRight = Some(v)
	case BottomRight:
		p.BottomRight = Some(v)
	default:
		p.BottomLeft = Some(v)
	}
	return p
}

// WithSide returns a copy of p with both corners adjacent to side set:
// top sets top-left and top-right, right sets top-right and
// bottom-right, and so on.
func (p PartialCorners[T]) WithSide(side Side, v T) PartialCorners[T] {
	switch side {
	case Top:
		return p.With(TopLeft, v).With(TopRight, v)
	case Right:
		return p.With(TopRight, v).With(BottomRight, v)
	case Bottom:
		return p.With(BottomRight, v).With(BottomLeft, v)
	default:
		return p.With(TopLeft, v).With(BottomLeft, v)
	}
}

// WithRest returns a copy of p with the catch-all value set.
func (p PartialCorners[T]) WithRest(v T) PartialCorners[T] {
	p.Rest = Some(v)
	return p
}

func (p PartialCorners[T]) explicit(corner Corner) Option[T] {
	switch corner {
	case TopLeft:
		return p.TopLeft
	case TopRight:
		return p.TopRight
	case BottomRight:
		return p.BottomRight
	default:
		return p.BottomLeft
	}
}

// Get returns the scope's value for one corner: the explicit value if
// set, otherwise Rest.
func (p PartialCorners[T]) Get(corner Corner) Option[T] {
	return p.explicit(corner).Or(p.Rest)
}

// Fold combines p (the inner scope) with outer, inner values first.
func (p PartialCorners[T]) Fold(outer PartialCorners[T]) PartialCorners[T] {
	var out PartialCorners[T]
	for _, corner := range allCorners {
		if v := p.Get(corner).Or(outer.Get(corner)); v.IsSome() {
			out = out.With(corner, v.value)
		}
	}
	out.Rest = p.Rest.Or(outer.Rest)
	return out
}

// FoldCorners resolves an ordered list of scopes, innermost first, into
// one value per corner, falling back to def.
func FoldCorners[T any](scopes []PartialCorners[T], def T) Corners[T] {
	var out Corners[T]
	for _, corner := range allCorners {
		v := None[T]()
		for _, scope := range scopes {
			if v = scope.Get(corner); v.IsSome() {
				break
			}
		}
		out.Set(corner, v.UnwrapOr(def))
	}
	return out
}
