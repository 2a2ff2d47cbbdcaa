package shape

import "math"

// Point represents a 2D point or vector, in points (1/72 inch).
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Axes holds one value per layout axis.
type Axes[T any] struct {
	X, Y T
}

// SplatAxes returns Axes with the same value on both axes.
func SplatAxes[T any](v T) Axes[T] {
	return Axes[T]{X: v, Y: v}
}

// Size is the extent of a frame or region, in points.
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Splat returns a square size with both sides set to v.
func Splat(v float64) Size {
	return Size{Width: v, Height: v}
}

// Add returns the component-wise sum of two sizes.
func (s Size) Add(o Size) Size {
	return Size{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// Min returns the component-wise minimum of two sizes.
func (s Size) Min(o Size) Size {
	return Size{Width: min(s.Width, o.Width), Height: min(s.Height, o.Height)}
}

// MinBySide returns the shorter of the two sides.
func (s Size) MinBySide() float64 {
	return min(s.Width, s.Height)
}

// MaxBySide returns the longer of the two sides.
func (s Size) MaxBySide() float64 {
	return max(s.Width, s.Height)
}

// ToPoint returns the size as a vector from the origin.
func (s Size) ToPoint() Point {
	return Point{X: s.Width, Y: s.Height}
}

// IsFinite reports whether both sides are finite numbers.
func (s Size) IsFinite() bool {
	return !math.IsInf(s.Width, 0) && !math.IsNaN(s.Width) &&
		!math.IsInf(s.Height, 0) && !math.IsNaN(s.Height)
}
