package shape

import "fmt"

// Length is a length with an absolute part in points and a part
// relative to the current font size.
type Length struct {
	Abs float64 // points
	Em  float64 // multiples of the font size
}

// Abs returns an absolute length in points.
func Abs(pt float64) Length {
	return Length{Abs: pt}
}

// Em returns a length relative to the font size.
func Em(em float64) Length {
	return Length{Em: em}
}

// Add returns the sum of two lengths.
func (l Length) Add(o Length) Length {
	return Length{Abs: l.Abs + o.Abs, Em: l.Em + o.Em}
}

// Scale multiplies both parts of the length.
func (l Length) Scale(k float64) Length {
	return Length{Abs: l.Abs * k, Em: l.Em * k}
}

// Resolve converts the length to points using the styles' font size.
func (l Length) Resolve(st *Styles) float64 {
	return l.Abs + l.Em*st.FontSize()
}

// Rel returns the length as a relative length with no ratio part.
func (l Length) Rel() Rel {
	return Rel{Length: l}
}

func (l Length) String() string {
	switch {
	case l.Em == 0:
		return fmt.Sprintf("%gpt", l.Abs)
	case l.Abs == 0:
		return fmt.Sprintf("%gem", l.Em)
	default:
		return fmt.Sprintf("%gpt + %gem", l.Abs, l.Em)
	}
}

// Rel is a length relative to some base size: Ratio*base + Length.
type Rel struct {
	Ratio  float64
	Length Length
}

// Ratio returns a relative length of r times the base (0.5 = 50%).
func Ratio(r float64) Rel {
	return Rel{Ratio: r}
}

// Percent returns a relative length of p percent of the base.
func Percent(p float64) Rel {
	return Rel{Ratio: p / 100}
}

// Pts returns a purely absolute relative length.
func Pts(pt float64) Rel {
	return Rel{Length: Abs(pt)}
}

// Scale multiplies both the ratio and the length.
func (r Rel) Scale(k float64) Rel {
	return Rel{Ratio: r.Ratio * k, Length: r.Length.Scale(k)}
}

// Resolve converts the font-relative part to points.
func (r Rel) Resolve(st *Styles) RelAbs {
	return RelAbs{Ratio: r.Ratio, Abs: r.Length.Resolve(st)}
}

// RelAbs is a resolved relative length: Ratio*base + Abs points.
type RelAbs struct {
	Ratio float64
	Abs   float64
}

// RelativeTo resolves the length against a base size. A zero ratio
// ignores the base, even an infinite one.
func (r RelAbs) RelativeTo(base float64) float64 {
	if r.Ratio == 0 {
		return r.Abs
	}
	return r.Ratio*base + r.Abs
}

// Add returns the component-wise sum.
func (r RelAbs) Add(o RelAbs) RelAbs {
	return RelAbs{Ratio: r.Ratio + o.Ratio, Abs: r.Abs + o.Abs}
}

// IsZero reports whether both parts are zero.
func (r RelAbs) IsZero() bool {
	return r.Ratio == 0 && r.Abs == 0
}

// ResolveSides resolves each side relative to the matching axis of size:
// left and right against the width, top and bottom against the height.
func ResolveSides(s Sides[RelAbs], size Size) Sides[float64] {
	return Sides[float64]{
		Top:    s.Top.RelativeTo(size.Height),
		Right:  s.Right.RelativeTo(size.Width),
		Bottom: s.Bottom.RelativeTo(size.Height),
		Left:   s.Left.RelativeTo(size.Width),
	}
}

// SumByAxis returns the total horizontal and vertical extent of s.
func SumByAxis(s Sides[float64]) Size {
	return Size{Width: s.Left + s.Right, Height: s.Top + s.Bottom}
}
