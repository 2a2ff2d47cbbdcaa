package shape

import (
	"context"
	"math"

	"github.com/google/uuid"
)

// Default size, in points, of a shape without content and explicit size.
// The default is capped to the available region.
const (
	DefaultWidth  = 45.0
	DefaultHeight = 30.0
)

// roundInsetRatio widens the padding of round shapes so that content laid
// out in the padded box stays inside the curve: the largest rectangle
// inscribed in a circle leaves (1 - sqrt(2)/2)/2 of the diameter free on
// each side.
var roundInsetRatio = 0.5 - math.Sqrt2/4

// Params are the fully folded attributes of one shape.
type Params struct {
	Kind ShapeKind

	// Body is the optional content; nil for an empty shape.
	Body Content

	// Sizing holds the width (X) and height (Y) intents.
	Sizing Axes[Smart[Rel]]

	Fill Option[Paint]

	// Stroke is automatic or one intent per edge; None disables an edge.
	Stroke Smart[Sides[SideStroke]]

	Inset  Sides[RelAbs]
	Outset Sides[RelAbs]
	Radius Corners[RelAbs]

	// Vertices outline a polygon; ignored for other kinds.
	Vertices []Vertex

	// ID is attached to the frame as Elem metadata unless it is uuid.Nil.
	ID uuid.UUID
}

// LayoutShape sizes a shape within the regions, lays out its body and
// paints it. The result always holds exactly one frame. Errors from the
// body's layout are returned unchanged.
func LayoutShape(ctx context.Context, st *Styles, regions Regions, p Params) (Fragment, error) {
	base := regions.Base()
	resolved := Axes[Option[float64]]{
		X: resolveAxis(st, p.Sizing.X, base.Width),
		Y: resolveAxis(st, p.Sizing.Y, base.Height),
	}

	var frame *Frame
	if p.Body != nil {
		region := Size{
			Width:  resolved.X.UnwrapOr(base.Width),
			Height: resolved.Y.UnwrapOr(base.Height),
		}

		inset := p.Inset
		if p.Kind.IsRound() {
			inset = MapSides(inset, func(side RelAbs) RelAbs {
				return side.Add(RelAbs{Ratio: roundInsetRatio})
			})
		}

		child := Pad(p.Body, inset)
		expand := Axes[bool]{X: p.Sizing.X.IsCustom(), Y: p.Sizing.Y.IsCustom()}
		var err error
		frame, err = layoutOne(ctx, st, child, OneRegion(region, expand))
		if err != nil {
			return nil, err
		}

		// Relayout with full expansion into a square region to make sure
		// the result is really a square or circle.
		if p.Kind.IsQuadratic() {
			length := min(frame.Size().MaxBySide(), region.MinBySide())
			square := Splat(length)
			frame, err = layoutOne(ctx, st, child, OneRegion(square, SplatAxes(true)))
			if err != nil {
				return nil, err
			}
			if frame.Size() != square {
				Logger().Debug("shape: content overflowed square region",
					"kind", p.Kind, "size", frame.Size(), "side", length)
				frame.SetSize(square)
			}
		}
	} else {
		def := Sz(DefaultWidth, DefaultHeight).Min(base)
		size := Size{
			Width:  resolved.X.UnwrapOr(def.Width),
			Height: resolved.Y.UnwrapOr(def.Height),
		}
		if p.Kind.IsQuadratic() {
			size = Splat(size.MinBySide())
		}
		frame = NewFrame(size)
	}

	stroke := resolveStroke(st, p.Stroke, p.Fill.IsSome())
	if p.Fill.IsSome() || hasStroke(stroke) {
		paintShape(frame, p.Kind, p.Fill, stroke, p.Outset, p.Radius, p.Vertices)
	}

	frame.AttachMeta(st, p.ID)

	Logger().Debug("shape: laid out",
		"kind", p.Kind, "body", p.Body != nil, "width", frame.Width(), "height", frame.Height())
	return FragmentOf(frame), nil
}

// resolveAxis resolves an explicit size intent against the base length.
func resolveAxis(st *Styles, s Smart[Rel], base float64) Option[float64] {
	rel, ok := s.Get()
	if !ok {
		return None[float64]()
	}
	return Some(rel.Resolve(st).RelativeTo(base))
}

// layoutOne lays out content into a single region and returns its frame.
func layoutOne(ctx context.Context, st *Styles, c Content, regions Regions) (*Frame, error) {
	frag, err := c.Layout(ctx, st, regions)
	if err != nil {
		return nil, err
	}
	if frame := frag.IntoFrame(); frame != nil {
		return frame, nil
	}
	return NewFrame(Size{}), nil
}
