package shape

import "slices"

// DefaultFontSize is the font size, in points, of a fresh style chain.
const DefaultFontSize = 11.0

// DefaultInset is the padding, in points, between a shape's outline and
// its content when no inset is set.
const DefaultInset = 5.0

// Props holds the shape attributes one scope sets. Unset fields defer to
// outer scopes.
type Props struct {
	Width  Option[Smart[Rel]]
	Height Option[Smart[Rel]]
	Fill   Option[Option[Paint]]
	Stroke Option[StrokeSpec]
	Inset  PartialSides[Rel]
	Outset PartialSides[Rel]
	Radius PartialCorners[Rel]
}

// Rule sets default attributes for every shape of one kind beneath the
// point where it is applied.
type Rule struct {
	Kind  ShapeKind
	Props Props
}

// Set returns a rule for shapes of the given kind.
func Set(kind ShapeKind, opts ...ShapeOption) Rule {
	r := Rule{Kind: kind}
	for _, opt := range opts {
		opt(&r.Props)
	}
	return r
}

// Styles is an immutable style chain: the font size, the set rules in
// effect and the metadata to attach to frames. Derive children with
// With, WithFontSize and WithMeta; the parent is never modified.
type Styles struct {
	fontSize float64
	rules    []Rule // outermost first
	meta     []Meta
}

// NewStyles returns the root style chain.
func NewStyles() *Styles {
	return &Styles{fontSize: DefaultFontSize}
}

// FontSize returns the font size in points.
func (s *Styles) FontSize() float64 {
	return s.fontSize
}

// Meta returns the metadata attached to frames laid out with s.
func (s *Styles) Meta() []Meta {
	return s.meta
}

// With returns a child chain with the rules applied innermost.
func (s *Styles) With(rules ...Rule) *Styles {
	child := *s
	child.rules = append(slices.Clip(s.rules), rules...)
	return &child
}

// WithFontSize returns a child chain with a different font size.
func (s *Styles) WithFontSize(size float64) *Styles {
	child := *s
	child.fontSize = size
	return &child
}

// WithMeta returns a child chain that attaches extra metadata.
func (s *Styles) WithMeta(meta ...Meta) *Styles {
	child := *s
	child.meta = append(slices.Clip(s.meta), meta...)
	return &child
}

// scopes returns own followed by the props of every rule for kind,
// innermost first.
func (s *Styles) scopes(kind ShapeKind, own Props) []Props {
	out := []Props{own}
	for i := len(s.rules) - 1; i >= 0; i-- {
		if s.rules[i].Kind == kind {
			out = append(out, s.rules[i].Props)
		}
	}
	return out
}

// firstSet returns the innermost set value of a scalar attribute.
func firstSet[T any](scopes []Props, get func(Props) Option[T]) Option[T] {
	for _, p := range scopes {
		if v := get(p); v.IsSome() {
			return v
		}
	}
	return None[T]()
}

func collectSides(scopes []Props, get func(Props) PartialSides[Rel]) []PartialSides[Rel] {
	out := make([]PartialSides[Rel], len(scopes))
	for i, p := range scopes {
		out[i] = get(p)
	}
	return out
}

// resolved holds the attributes of one shape after folding the cascade.
type resolved struct {
	sizing Axes[Smart[Rel]]
	fill   Option[Paint]
	stroke Smart[Sides[SideStroke]]
	inset  Sides[RelAbs]
	outset Sides[RelAbs]
	radius Corners[RelAbs]
}

// resolve folds every attribute of a shape across the chain.
func (s *Styles) resolve(kind ShapeKind, own Props) resolved {
	scopes := s.scopes(kind, own)
	toAbs := func(r Rel) RelAbs { return r.Resolve(s) }

	var r resolved
	r.sizing.X = firstSet(scopes, func(p Props) Option[Smart[Rel]] { return p.Width }).UnwrapOr(Auto[Rel]())
	r.sizing.Y = firstSet(scopes, func(p Props) Option[Smart[Rel]] { return p.Height }).UnwrapOr(Auto[Rel]())
	r.fill = firstSet(scopes, func(p Props) Option[Option[Paint]] { return p.Fill }).UnwrapOr(None[Paint]())

	var specs []StrokeSpec
	for _, p := range scopes {
		if spec, ok := p.Stroke.Get(); ok {
			specs = append(specs, spec)
		}
	}
	r.stroke = foldStrokeSpecs(specs)

	inset := FoldSides(collectSides(scopes, func(p Props) PartialSides[Rel] { return p.Inset }), Pts(DefaultInset))
	outset := FoldSides(collectSides(scopes, func(p Props) PartialSides[Rel] { return p.Outset }), Rel{})
	r.inset = MapSides(inset, toAbs)
	r.outset = MapSides(outset, toAbs)

	radii := make([]PartialCorners[Rel], len(scopes))
	for i, p := range scopes {
		radii[i] = p.Radius
	}
	r.radius = MapCorners(FoldCorners(radii, Rel{}), toAbs)

	// Curves and polygons have a single outline and no corners.
	if kind.IsRound() || kind.IsPolygonal() {
		r.stroke = MapSmart(r.stroke, func(s Sides[SideStroke]) Sides[SideStroke] { return SplatSides(s.Left) })
		r.radius = Corners[RelAbs]{}
	}
	return r
}
