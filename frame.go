package shape

import (
	"slices"

	"github.com/google/uuid"
)

// Item is something placed in a frame.
type Item interface {
	isItem()
}

// GroupItem places a nested frame.
type GroupItem struct {
	Frame *Frame
}

// ShapeItem places a paint primitive.
type ShapeItem struct {
	Primitive Primitive
}

// TextItem places a line of shaped text. The item's position is the
// left end of the baseline.
type TextItem struct {
	Text     string
	FontSize float64
	Width    float64
	Fill     Paint
	RTL      bool

	// Font is the OpenType data the text was shaped with. Nil selects
	// the renderer's default font.
	Font []byte
}

// MetaItem attaches metadata to an area of a frame.
type MetaItem struct {
	Size Size
	Meta Meta
}

func (GroupItem) isItem() {}
func (ShapeItem) isItem() {}
func (TextItem) isItem()  {}
func (MetaItem) isItem()  {}

// Meta is metadata carried by frames for introspection and output.
type Meta interface {
	isMeta()
}

// Link marks an area as a link to a destination.
type Link struct {
	Dest string
}

// Hide removes all visible content from frames it is attached to.
type Hide struct{}

// Elem records which element produced a frame.
type Elem struct {
	ID uuid.UUID
}

func (Link) isMeta() {}
func (Hide) isMeta() {}
func (Elem) isMeta() {}

// Positioned is an item at an offset from the frame's origin.
type Positioned struct {
	Pos  Point
	Item Item
}

// Frame is a sized container of positioned items. Items paint in order,
// so later items appear above earlier ones.
type Frame struct {
	size  Size
	items []Positioned
}

// NewFrame creates an empty frame.
func NewFrame(size Size) *Frame {
	return &Frame{size: size}
}

// Size returns the frame's size.
func (f *Frame) Size() Size {
	return f.size
}

// Width returns the frame's width.
func (f *Frame) Width() float64 {
	return f.size.Width
}

// Height returns the frame's height.
func (f *Frame) Height() float64 {
	return f.size.Height
}

// SetSize resizes the frame without moving its items.
func (f *Frame) SetSize(size Size) {
	f.size = size
}

// Items returns the frame's items in paint order.
func (f *Frame) Items() []Positioned {
	return f.items
}

// Len returns the number of items.
func (f *Frame) Len() int {
	return len(f.items)
}

// Push adds an item above all existing items.
func (f *Frame) Push(pos Point, item Item) {
	f.items = append(f.items, Positioned{Pos: pos, Item: item})
}

// PushFrame adds a nested frame above all existing items. Empty frames
// are skipped.
func (f *Frame) PushFrame(pos Point, child *Frame) {
	if child.Len() == 0 {
		return
	}
	f.Push(pos, GroupItem{Frame: child})
}

// Prepend adds an item beneath all existing items.
func (f *Frame) Prepend(pos Point, item Item) {
	f.items = slices.Insert(f.items, 0, Positioned{Pos: pos, Item: item})
}

// PrependMultiple adds items beneath all existing items, keeping their
// relative order.
func (f *Frame) PrependMultiple(items []Positioned) {
	f.items = slices.Insert(f.items, 0, items...)
}

// Translate moves all items by offset.
func (f *Frame) Translate(offset Point) {
	if offset == (Point{}) {
		return
	}
	for i := range f.items {
		f.items[i].Pos = f.items[i].Pos.Add(offset)
	}
}

// Clear removes all items.
func (f *Frame) Clear() {
	f.items = nil
}

// FillAndStroke paints a rectangle with per-edge strokes and per-corner
// radii beneath the frame's contents. The outset grows the painted box
// beyond the frame on each side; radii resolve relative to half the
// shorter side of the grown box.
func (f *Frame) FillAndStroke(fill Option[Paint], stroke Sides[Option[Stroke]], outset Sides[RelAbs], radius Corners[RelAbs]) {
	out := ResolveSides(outset, f.size)
	size := f.size.Add(SumByAxis(out))
	pos := Pt(-out.Left, -out.Top)
	half := size.MinBySide() / 2
	r := MapCorners(radius, func(v RelAbs) float64 { return v.RelativeTo(half) })

	prims := roundedRect(size, r, fill, stroke)
	items := make([]Positioned, len(prims))
	for i, prim := range prims {
		items[i] = Positioned{Pos: pos, Item: ShapeItem{Primitive: prim}}
	}
	f.PrependMultiple(items)
}

// AttachMeta applies the styles' metadata and the element identity to
// the frame. Hidden frames lose their contents.
func (f *Frame) AttachMeta(st *Styles, id uuid.UUID) {
	for _, m := range st.Meta() {
		if _, ok := m.(Hide); ok {
			f.Clear()
			return
		}
	}
	metas := st.Meta()
	if id != uuid.Nil {
		metas = append(slices.Clone(metas), Elem{ID: id})
	}
	items := make([]Positioned, len(metas))
	for i, m := range metas {
		items[i] = Positioned{Item: MetaItem{Size: f.size, Meta: m}}
	}
	f.PrependMultiple(items)
}
