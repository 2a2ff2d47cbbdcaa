package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/shape"
)

func TestLoadPage_Default(t *testing.T) {
	page, err := loadPage("")
	if err != nil {
		t.Fatalf("loadPage() error = %v", err)
	}
	if len(page.Shapes) != 5 {
		t.Errorf("len(Shapes) = %d, want 5", len(page.Shapes))
	}
	for i, def := range page.Shapes {
		if _, err := def.Build(); err != nil {
			t.Errorf("shape %d (%s): Build() error = %v", i, def.Kind, err)
		}
	}

	f, err := page.Layout(context.Background())
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if f.Width() != page.Width+page.Gap || f.Len() != len(page.Shapes) {
		t.Errorf("page = %v with %d items, want width %v and %d items",
			f.Size(), f.Len(), page.Width+page.Gap, len(page.Shapes))
	}
}

func TestDecodePage_Defaults(t *testing.T) {
	page, err := decodePage(strings.NewReader(`
[[shapes]]
kind = "circle"
radius = 10
`))
	if err != nil {
		t.Fatalf("decodePage() error = %v", err)
	}
	if page.Cell != 120 || page.FontSize != shape.DefaultFontSize {
		t.Errorf("page = %+v, want default cell and font size", page)
	}
	s, err := page.Shapes[0].Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if s.Kind() != shape.Circle {
		t.Errorf("Kind() = %v, want circle", s.Kind())
	}
}

func TestDecodePage_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown field", "colour = 1"},
		{"bad syntax", "width = "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodePage(strings.NewReader(tt.in)); err == nil {
				t.Error("decodePage() succeeded, want error")
			}
		})
	}
}

func TestShapeDef_BuildErrors(t *testing.T) {
	tests := []struct {
		name string
		def  ShapeDef
	}{
		{"unknown kind", ShapeDef{Kind: "hexagon"}},
		{"bad vertices", ShapeDef{Kind: "polygon", Vertices: "1,2,3"}},
		{"bad stroke side", ShapeDef{StrokeSides: map[string]StrokeDef{"middle": {}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.def.Build(); err == nil {
				t.Error("Build() succeeded, want error")
			}
		})
	}

	_, err := ShapeDef{Kind: "polygon", Vertices: "1,x"}.Build()
	if !errors.Is(err, shape.ErrVertexSyntax) {
		t.Errorf("Build() error = %v, want ErrVertexSyntax", err)
	}
}

func TestStrokeSides_Precedence(t *testing.T) {
	sides, err := strokeSides(map[string]StrokeDef{
		"rest": {Thickness: 1},
		"x":    {Thickness: 2},
		"left": {Thickness: 3},
	})
	if err != nil {
		t.Fatalf("strokeSides() error = %v", err)
	}
	thickness := func(side shape.Side) float64 {
		s, _ := sides.Get(side).Get()
		p, _ := s.Get()
		l, _ := p.Thickness.Get()
		return l.Resolve(shape.NewStyles())
	}
	want := map[shape.Side]float64{shape.Top: 1, shape.Bottom: 1, shape.Right: 2, shape.Left: 3}
	for side, w := range want {
		if got := thickness(side); got != w {
			t.Errorf("%v thickness = %v, want %v", side, got, w)
		}
	}
}
