package shape

import (
	"context"
	"math"
)

// Content is anything that can lay itself out into regions. Shapes are
// content themselves, so they nest.
type Content interface {
	// Layout produces one frame per region used. With Expand set on an
	// axis, frames must span the full region on that axis.
	Layout(ctx context.Context, st *Styles, regions Regions) (Fragment, error)
}

// Pad wraps body with padding on each side. Padding ratios are relative
// to the padded box itself, not to the available region.
func Pad(body Content, padding Sides[RelAbs]) Content {
	return &padded{body: body, padding: padding}
}

type padded struct {
	body    Content
	padding Sides[RelAbs]
}

func (p *padded) Layout(ctx context.Context, st *Styles, regions Regions) (Fragment, error) {
	pod := regions.Map(func(s Size) Size { return shrink(s, p.padding) })
	frag, err := p.body.Layout(ctx, st, pod)
	if err != nil {
		return nil, err
	}
	for _, frame := range frag {
		// Apply the padding inversely, so that the grown size padded
		// yields the frame's size.
		grown := grow(frame.Size(), p.padding)
		pad := ResolveSides(p.padding, grown)
		frame.SetSize(grown)
		frame.Translate(Pt(pad.Left, pad.Top))
	}
	return frag, nil
}

// shrink removes the padding, resolved against size, from size.
// Unbounded axes stay unbounded.
func shrink(size Size, padding Sides[RelAbs]) Size {
	sum := SumByAxis(ResolveSides(padding, size))
	out := size
	if !math.IsInf(size.Width, 0) {
		out.Width -= sum.Width
	}
	if !math.IsInf(size.Height, 0) {
		out.Height -= sum.Height
	}
	return out
}

// grow is the inverse of shrink: it returns the size s such that
// shrinking s by padding yields size.
func grow(size Size, padding Sides[RelAbs]) Size {
	x := padding.Left.Add(padding.Right)
	y := padding.Top.Add(padding.Bottom)
	return Size{
		Width:  safeDiv(size.Width+x.Abs, 1-x.Ratio),
		Height: safeDiv(size.Height+y.Abs, 1-y.Ratio),
	}
}

// safeDiv divides, returning zero instead of a non-finite result.
func safeDiv(a, b float64) float64 {
	v := a / b
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
