package shape

// DefaultStrokeThickness is the thickness, in points, of a stroke that
// does not specify one.
const DefaultStrokeThickness = 1.0

// Stroke defines how an outline is drawn.
type Stroke struct {
	// Paint colors the outline. Default: black.
	Paint Paint

	// Thickness is the line width in points. Default: 1.
	Thickness float64
}

// DefaultStroke returns a solid 1pt black stroke.
func DefaultStroke() Stroke {
	return Stroke{
		Paint:     Solid(Black),
		Thickness: DefaultStrokeThickness,
	}
}

// PartialStroke is a stroke whose paint and thickness are each optional.
// Missing fields are inherited from outer scopes and finally defaulted.
type PartialStroke struct {
	Paint     Option[Paint]
	Thickness Option[Length]
}

// StrokePaint returns a partial stroke with only a paint. The thickness
// is inherited, defaulting to 1pt.
func StrokePaint(p Paint) PartialStroke {
	return PartialStroke{Paint: Some(p)}
}

// StrokeThickness returns a partial stroke with only a thickness. The
// paint is inherited, defaulting to black.
func StrokeThickness(l Length) PartialStroke {
	return PartialStroke{Thickness: Some(l)}
}

// StrokeOf returns a fully specified partial stroke.
func StrokeOf(p Paint, l Length) PartialStroke {
	return PartialStroke{Paint: Some(p), Thickness: Some(l)}
}

// Fold fills the fields s leaves unset from outer.
func (s PartialStroke) Fold(outer PartialStroke) PartialStroke {
	return PartialStroke{
		Paint:     s.Paint.Or(outer.Paint),
		Thickness: s.Thickness.Or(outer.Thickness),
	}
}

// UnwrapOrDefault resolves the stroke, defaulting missing fields.
func (s PartialStroke) UnwrapOrDefault(st *Styles) Stroke {
	def := DefaultStroke()
	return Stroke{
		Paint:     s.Paint.UnwrapOr(def.Paint),
		Thickness: MapOption(s.Thickness, func(l Length) float64 { return l.Resolve(st) }).UnwrapOr(def.Thickness),
	}
}

// SideStroke is the stroke intent for one edge: None disables the edge,
// Some gives a (partial) stroke.
type SideStroke = Option[PartialStroke]

// StrokeSpec is a shape's stroke attribute as set in one scope: automatic,
// or a per-edge map where an unset edge means "no override".
type StrokeSpec = Smart[PartialSides[SideStroke]]

// StrokeAll returns a custom spec stroking every edge with s.
func StrokeAll(s PartialStroke) StrokeSpec {
	return Custom(AllSides(Some(s)))
}

// StrokeNone returns a custom spec that disables every edge.
func StrokeNone() StrokeSpec {
	return Custom(AllSides(None[PartialStroke]()))
}

// StrokeSides returns a custom spec from an explicit per-edge map.
func StrokeSides(sides PartialSides[SideStroke]) StrokeSpec {
	return Custom(sides)
}

// mergeSideStroke folds two edge intents found in nested scopes. An
// inner disable wins; otherwise the strokes fold field by field.
func mergeSideStroke(inner, outer SideStroke) SideStroke {
	in, ok := inner.Get()
	if !ok {
		return inner
	}
	out, ok := outer.Get()
	if !ok {
		return inner
	}
	return Some(in.Fold(out))
}

// foldStrokeSpecs folds the stroke attribute across scopes, innermost
// first. An automatic scope ends the fold: the scopes inside it that are
// custom override it, everything outside is ignored.
func foldStrokeSpecs(specs []StrokeSpec) Smart[Sides[SideStroke]] {
	var maps []PartialSides[SideStroke]
	for _, spec := range specs {
		m, ok := spec.Get()
		if !ok {
			break
		}
		maps = append(maps, m)
	}
	if len(maps) == 0 {
		return Auto[Sides[SideStroke]]()
	}
	return Custom(FoldSidesWith(maps, None[PartialStroke](), mergeSideStroke))
}

// resolveStroke turns the folded stroke attribute into concrete per-edge
// strokes. An automatic stroke is a 1pt black outline when there is no
// fill and no outline otherwise.
func resolveStroke(st *Styles, spec Smart[Sides[SideStroke]], hasFill bool) Sides[Option[Stroke]] {
	sides, ok := spec.Get()
	if !ok {
		if hasFill {
			return SplatSides(None[Stroke]())
		}
		return SplatSides(Some(DefaultStroke()))
	}
	return MapSides(sides, func(s SideStroke) Option[Stroke] {
		return MapOption(s, func(p PartialStroke) Stroke { return p.UnwrapOrDefault(st) })
	})
}

// hasStroke reports whether any edge is stroked.
func hasStroke(s Sides[Option[Stroke]]) bool {
	return AnySide(s, Option[Stroke].IsSome)
}
