package shape

// Side identifies one edge of a box.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// allSides lists the sides in clockwise order starting at the top.
var allSides = [4]Side{Top, Right, Bottom, Left}

// String returns the side name.
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Sides holds a fully resolved value for each edge of a box.
type Sides[T any] struct {
	Top, Right, Bottom, Left T
}

// SplatSides returns Sides with v on every edge.
func SplatSides[T any](v T) Sides[T] {
	return Sides[T]{Top: v, Right: v, Bottom: v, Left: v}
}

// Get returns the value on one side.
func (s Sides[T]) Get(side Side) T {
	switch side {
	case Top:
		return s.Top
	case Right:
		return s.Right
	case Bottom:
		return s.Bottom
	default:
		return s.Left
	}
}

// Set stores the value for one side.
func (s *Sides[T]) Set(side Side, v T) {
	switch side {
	case Top:
		s.Top = v
	case Right:
		s.Right = v
	case Bottom:
		s.Bottom = v
	default:
		s.Left = v
	}
}

// MapSides applies f to every edge.
func MapSides[T, U any](s Sides[T], f func(T) U) Sides[U] {
	return Sides[U]{Top: f(s.Top), Right: f(s.Right), Bottom: f(s.Bottom), Left: f(s.Left)}
}

// AnySide reports whether pred holds on at least one edge.
func AnySide[T any](s Sides[T], pred func(T) bool) bool {
	return pred(s.Top) || pred(s.Right) || pred(s.Bottom) || pred(s.Left)
}

// UniformSides reports whether all four edges hold equal values.
func UniformSides[T comparable](s Sides[T]) bool {
	return s.Top == s.Right && s.Right == s.Bottom && s.Bottom == s.Left
}

// PartialSides is one scope's view of a per-edge attribute. Each edge
// may be unset; Rest applies to every edge the scope does not set
// explicitly.
type PartialSides[T any] struct {
	Top, Right, Bottom, Left Option[T]
	Rest                     Option[T]
}

// AllSides returns a scope that sets every edge to v.
func AllSides[T any](v T) PartialSides[T] {
	return PartialSides[T]{Rest: Some(v)}
}

// SidesXY returns a scope that sets left and right to x and top and
// bottom to y.
func SidesXY[T any](x, y T) PartialSides[T] {
	return PartialSides[T]{Left: Some(x), Right: Some(x), Top: Some(y), Bottom: Some(y)}
}

// With returns a copy of p with one edge set explicitly.
func (p PartialSides[T]) With(side Side, v T) PartialSides[T] {
	switch side {
	case Top:
		p.Top = Some(v)
	case Right:
		p.Right = Some(v)
	case Bottom:
		p.Bottom = Some(v)
	default:
		p.Left = Some(v)
	}
	return p
}

// WithRest returns a copy of p with the catch-all value set.
func (p PartialSides[T]) WithRest(v T) PartialSides[T] {
	p.Rest = Some(v)
	return p
}

// explicit returns the value the scope sets explicitly on one edge.
func (p PartialSides[T]) explicit(side Side) Option[T] {
	switch side {
	case Top:
		return p.Top
	case Right:
		return p.Right
	case Bottom:
		return p.Bottom
	default:
		return p.Left
	}
}

// Get returns the scope's value for one edge: the explicit value if
// set, otherwise Rest.
func (p PartialSides[T]) Get(side Side) Option[T] {
	return p.explicit(side).Or(p.Rest)
}

// IsEmpty reports whether the scope sets nothing at all.
func (p PartialSides[T]) IsEmpty() bool {
	return p.Top.IsNone() && p.Right.IsNone() && p.Bottom.IsNone() &&
		p.Left.IsNone() && p.Rest.IsNone()
}

// Fold combines p (the inner scope) with outer. Every edge either scope
// provides becomes explicit in the result, with the inner value taking
// precedence.
func (p PartialSides[T]) Fold(outer PartialSides[T]) PartialSides[T] {
	return p.FoldWith(outer, nil)
}

// FoldWith is Fold with a merge function for values present in both
// scopes. A nil merge keeps the inner value.
func (p PartialSides[T]) FoldWith(outer PartialSides[T], merge func(inner, outer T) T) PartialSides[T] {
	var out PartialSides[T]
	for _, side := range allSides {
		if v := mergeOption(p.Get(side), outer.Get(side), merge); v.IsSome() {
			out = out.With(side, v.value)
		}
	}
	out.Rest = mergeOption(p.Rest, outer.Rest, merge)
	return out
}

// FoldSides resolves an ordered list of scopes, innermost first, into
// one value per edge. For each edge the first scope that sets it,
// explicitly or through Rest, wins; edges no scope sets get def.
func FoldSides[T any](scopes []PartialSides[T], def T) Sides[T] {
	return FoldSidesWith(scopes, def, nil)
}

// FoldSidesWith is FoldSides for values that fold themselves: every
// value found for an edge is merged into the result, innermost first.
// A nil merge keeps the first value found.
func FoldSidesWith[T any](scopes []PartialSides[T], def T, merge func(inner, outer T) T) Sides[T] {
	var out Sides[T]
	for _, side := range allSides {
		acc := None[T]()
		for _, scope := range scopes {
			acc = mergeOption(acc, scope.Get(side), merge)
			if acc.IsSome() && merge == nil {
				break
			}
		}
		out.Set(side, acc.UnwrapOr(def))
	}
	return out
}

func mergeOption[T any](inner, outer Option[T], merge func(inner, outer T) T) Option[T] {
	switch {
	case inner.IsNone():
		return outer
	case outer.IsNone() || merge == nil:
		return inner
	default:
		return Some(merge(inner.value, outer.value))
	}
}
