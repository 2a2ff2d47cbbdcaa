package shape

// ShapeOption sets one attribute of a shape or of a set rule.
//
// Example:
//
//	// A red, 2pt outlined rectangle of half the available width
//	r := shape.NewRect(nil,
//		shape.WithWidth(shape.Percent(50)),
//		shape.WithStroke(shape.StrokeOf(shape.Solid(shape.Red), shape.Abs(2))),
//	)
type ShapeOption func(*Props)

// WithWidth sets an explicit width, relative to the parent region.
func WithWidth(w Rel) ShapeOption {
	return func(p *Props) {
		p.Width = Some(Custom(w))
	}
}

// WithHeight sets an explicit height, relative to the parent region.
func WithHeight(h Rel) ShapeOption {
	return func(p *Props) {
		p.Height = Some(Custom(h))
	}
}

// WithAutoWidth makes the width content-driven, overriding outer rules.
func WithAutoWidth() ShapeOption {
	return func(p *Props) {
		p.Width = Some(Auto[Rel]())
	}
}

// WithAutoHeight makes the height content-driven, overriding outer rules.
func WithAutoHeight() ShapeOption {
	return func(p *Props) {
		p.Height = Some(Auto[Rel]())
	}
}

// WithSize sets width and height to the same length. It is the side
// length of a square.
func WithSize(l Length) ShapeOption {
	return func(p *Props) {
		p.Width = Some(Custom(l.Rel()))
		p.Height = Some(Custom(l.Rel()))
	}
}

// WithCircleRadius sets width and height to twice the radius.
func WithCircleRadius(r Length) ShapeOption {
	return WithSize(r.Scale(2))
}

// WithFill fills the shape. Setting a fill removes the automatic stroke.
func WithFill(paint Paint) ShapeOption {
	return func(p *Props) {
		p.Fill = Some(Some(paint))
	}
}

// WithoutFill removes a fill set by outer rules.
func WithoutFill() ShapeOption {
	return func(p *Props) {
		p.Fill = Some(None[Paint]())
	}
}

// WithStroke strokes every edge.
func WithStroke(s PartialStroke) ShapeOption {
	return WithStrokeSpec(StrokeAll(s))
}

// WithoutStroke disables the outline on every edge.
func WithoutStroke() ShapeOption {
	return WithStrokeSpec(StrokeNone())
}

// WithAutoStroke restores the automatic outline: 1pt black unless the
// shape is filled.
func WithAutoStroke() ShapeOption {
	return WithStrokeSpec(Auto[PartialSides[SideStroke]]())
}

// WithStrokeSides strokes edges individually. Edges left unset in sides
// take their value from outer rules; edges set to None are not stroked.
func WithStrokeSides(sides PartialSides[SideStroke]) ShapeOption {
	return WithStrokeSpec(StrokeSides(sides))
}

// WithStrokeSpec sets the stroke attribute directly.
func WithStrokeSpec(spec StrokeSpec) ShapeOption {
	return func(p *Props) {
		p.Stroke = Some(spec)
	}
}

// WithInset sets the padding between outline and content per edge.
func WithInset(inset PartialSides[Rel]) ShapeOption {
	return func(p *Props) {
		p.Inset = inset
	}
}

// WithOutset grows the painted shape beyond its layout size per edge.
func WithOutset(outset PartialSides[Rel]) ShapeOption {
	return func(p *Props) {
		p.Outset = outset
	}
}

// WithCornerRadius rounds corners, relative to half the shorter side.
// Only rectangles and squares have corners.
func WithCornerRadius(radius PartialCorners[Rel]) ShapeOption {
	return func(p *Props) {
		p.Radius = radius
	}
}
