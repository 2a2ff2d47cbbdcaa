package shape

import (
	"testing"
)

func TestDefaultStroke(t *testing.T) {
	s := DefaultStroke()
	if s.Thickness != 1.0 {
		t.Errorf("DefaultStroke().Thickness = %v, want 1.0", s.Thickness)
	}
	if s.Paint != Solid(Black) {
		t.Errorf("DefaultStroke().Paint = %v, want black", s.Paint)
	}
}

func TestPartialStroke_UnwrapOrDefault(t *testing.T) {
	st := NewStyles().WithFontSize(10)
	tests := []struct {
		name string
		in   PartialStroke
		want Stroke
	}{
		{"empty", PartialStroke{}, DefaultStroke()},
		{"paint only", StrokePaint(Solid(Red)), Stroke{Paint: Solid(Red), Thickness: 1}},
		{"thickness only", StrokeThickness(Abs(3)), Stroke{Paint: Solid(Black), Thickness: 3}},
		{"em thickness", StrokeThickness(Em(0.5)), Stroke{Paint: Solid(Black), Thickness: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.UnwrapOrDefault(st); got != tt.want {
				t.Errorf("UnwrapOrDefault() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveStroke_Auto(t *testing.T) {
	st := NewStyles()
	auto := Auto[Sides[SideStroke]]()

	got := resolveStroke(st, auto, false)
	if got != SplatSides(Some(DefaultStroke())) {
		t.Errorf("auto without fill = %+v, want default stroke on every edge", got)
	}
	if !hasStroke(got) {
		t.Error("hasStroke(auto without fill) = false, want true")
	}

	got = resolveStroke(st, auto, true)
	if hasStroke(got) {
		t.Errorf("auto with fill = %+v, want no stroke", got)
	}
}

func strokeOf(st *Styles, kind ShapeKind, opts ...ShapeOption) Sides[Option[Stroke]] {
	var own Props
	for _, opt := range opts {
		opt(&own)
	}
	r := st.resolve(kind, own)
	return resolveStroke(st, r.stroke, r.fill.IsSome())
}

func TestStrokeCascade(t *testing.T) {
	red2 := Some(Stroke{Paint: Solid(Red), Thickness: 2})
	black2 := Some(Stroke{Paint: Solid(Black), Thickness: 2})
	def := Some(DefaultStroke())
	none := None[Stroke]()

	tests := []struct {
		name  string
		rules []Rule
		opts  []ShapeOption
		want  Sides[Option[Stroke]]
	}{
		{
			name: "unset is automatic",
			want: SplatSides(def),
		},
		{
			name: "fill removes automatic stroke",
			opts: []ShapeOption{WithFill(Solid(Blue))},
			want: SplatSides(none),
		},
		{
			name:  "thickness and paint fold separately",
			rules: []Rule{Set(Rect, WithStroke(StrokeThickness(Abs(2))))},
			opts:  []ShapeOption{WithStroke(StrokePaint(Solid(Red)))},
			want:  SplatSides(red2),
		},
		{
			name:  "rules for other kinds are ignored",
			rules: []Rule{Set(Ellipse, WithStroke(StrokeThickness(Abs(2))))},
			opts:  []ShapeOption{WithStroke(StrokePaint(Solid(Red)))},
			want:  SplatSides(Some(Stroke{Paint: Solid(Red), Thickness: 1})),
		},
		{
			name:  "inner none disables outer stroke",
			rules: []Rule{Set(Rect, WithStroke(StrokeThickness(Abs(2))))},
			opts:  []ShapeOption{WithoutStroke()},
			want:  SplatSides(none),
		},
		{
			name:  "inner edge overrides one side",
			rules: []Rule{Set(Rect, WithStroke(StrokeThickness(Abs(2))))},
			opts: []ShapeOption{WithStrokeSides(PartialSides[SideStroke]{
				Top: Some(Some(StrokePaint(Solid(Red)))),
			})},
			want: Sides[Option[Stroke]]{Top: red2, Right: black2, Bottom: black2, Left: black2},
		},
		{
			name: "unset edges of a custom map are not stroked",
			opts: []ShapeOption{WithStrokeSides(PartialSides[SideStroke]{
				Bottom: Some(Some(PartialStroke{})),
			})},
			want: Sides[Option[Stroke]]{Top: none, Right: none, Bottom: def, Left: none},
		},
		{
			name:  "inner auto stops the fold",
			rules: []Rule{Set(Rect, WithStroke(StrokeThickness(Abs(2))))},
			opts:  []ShapeOption{WithAutoStroke()},
			want:  SplatSides(def),
		},
		{
			name: "later rule is inner",
			rules: []Rule{
				Set(Rect, WithStroke(StrokeOf(Solid(Blue), Abs(5)))),
				Set(Rect, WithStroke(StrokeOf(Solid(Red), Abs(2)))),
			},
			want: SplatSides(red2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewStyles().With(tt.rules...)
			if got := strokeOf(st, Rect, tt.opts...); got != tt.want {
				t.Errorf("stroke = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStrokeRoundKindsUseOneOutline(t *testing.T) {
	sides := PartialSides[SideStroke]{
		Left: Some(Some(StrokePaint(Solid(Red)))),
		Top:  Some(None[PartialStroke]()),
	}.WithRest(Some(StrokePaint(Solid(Blue))))

	for _, kind := range []ShapeKind{Circle, Ellipse, Polygon} {
		t.Run(kind.String(), func(t *testing.T) {
			got := strokeOf(NewStyles(), kind, WithStrokeSides(sides))
			want := SplatSides(Some(Stroke{Paint: Solid(Red), Thickness: 1}))
			if got != want {
				t.Errorf("stroke = %+v, want %+v", got, want)
			}
		})
	}
}
