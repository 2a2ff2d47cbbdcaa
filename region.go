package shape

import "iter"

// Regions is the space available to a layout operation: the current
// region plus the heights of any regions that follow it.
type Regions struct {
	// Size is the current region.
	Size Size

	// Backlog holds the heights of the following regions, which share
	// the current region's width.
	Backlog []float64

	// Expand says, per axis, whether content must fill the region
	// instead of taking its natural size.
	Expand Axes[bool]
}

// OneRegion returns a single region of the given size.
func OneRegion(size Size, expand Axes[bool]) Regions {
	return Regions{Size: size, Expand: expand}
}

// Base returns the size that relative lengths resolve against.
func (r Regions) Base() Size {
	return r.Size
}

// Iter yields the current region followed by the backlog regions.
func (r Regions) Iter() iter.Seq[Size] {
	return func(yield func(Size) bool) {
		if !yield(r.Size) {
			return
		}
		for _, h := range r.Backlog {
			if !yield(Size{Width: r.Size.Width, Height: h}) {
				return
			}
		}
	}
}

// Map returns regions with f applied to the current region and to every
// backlog region.
func (r Regions) Map(f func(Size) Size) Regions {
	out := Regions{Size: f(r.Size), Expand: r.Expand}
	if len(r.Backlog) > 0 {
		out.Backlog = make([]float64, len(r.Backlog))
		for i, h := range r.Backlog {
			out.Backlog[i] = f(Size{Width: r.Size.Width, Height: h}).Height
		}
	}
	return out
}

// Fragment is the output of a layout operation: one frame per region
// used.
type Fragment []*Frame

// FragmentOf returns a fragment holding a single frame.
func FragmentOf(f *Frame) Fragment {
	return Fragment{f}
}

// IntoFrame returns the fragment's first frame, or nil if it is empty.
func (f Fragment) IntoFrame() *Frame {
	if len(f) == 0 {
		return nil
	}
	return f[0]
}
