package shape

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestNormalizeVertices(t *testing.T) {
	tests := []struct {
		name string
		vs   []Vertex
		size Size
		want []Point
	}{
		{
			name: "square into square",
			vs:   []Vertex{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
			size: Sz(20, 20),
			want: []Point{{0, 0}, {20, 0}, {20, 20}, {0, 20}},
		},
		{
			name: "offset triangle",
			vs:   []Vertex{{5, 5}, {7, 5}, {6, 9}},
			size: Sz(10, 40),
			want: []Point{{0, 0}, {10, 0}, {5, 40}},
		},
		{
			name: "negative coordinates keep order",
			vs:   []Vertex{{0, -1}, {-2, 1}, {2, 1}},
			size: Sz(4, 4),
			want: []Point{{2, 0}, {0, 4}, {4, 4}},
		},
		{
			name: "flat axis is centered",
			vs:   []Vertex{{0, 3}, {10, 3}},
			size: Sz(20, 8),
			want: []Point{{0, 4}, {20, 4}},
		},
		{
			name: "single vertex",
			vs:   []Vertex{{1, 1}},
			size: Sz(6, 2),
			want: []Point{{3, 1}},
		},
		{
			name: "empty",
			size: Sz(6, 2),
		},
		{
			name: "infinite target",
			vs:   []Vertex{{0, 0}, {1, 1}},
			size: Sz(math.Inf(1), 2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeVertices(tt.vs, tt.size)
			if !slices.Equal(got, tt.want) {
				t.Errorf("NormalizeVertices() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeVertices_BoundsMatchTarget(t *testing.T) {
	vs := []Vertex{{0.3, -7.1}, {13.7, 2.2}, {-4.4, 9.9}, {1.1, 1.1}, {6, -2}}
	sizes := []Size{Sz(1, 1), Sz(45, 30), Sz(0.1, 1000), Sz(333.3, 77.7)}

	for _, size := range sizes {
		pts := NormalizeVertices(vs, size)
		if len(pts) != len(vs) {
			t.Fatalf("len = %d, want %d", len(pts), len(vs))
		}
		mapped := make([]Vertex, len(pts))
		for i, p := range pts {
			mapped[i] = Vertex{X: p.X, Y: p.Y}
		}
		b, _ := PolygonBounds(mapped)
		if b.Min != (Point{}) || b.Max != size.ToPoint() {
			t.Errorf("size %v: bounds = %+v, want (0,0)-(%v,%v)", size, b, size.Width, size.Height)
		}
	}
}

func TestNormalizePolygon(t *testing.T) {
	p := NormalizePolygon([]Vertex{{0, 0}, {1, 0}, {0, 1}}, Sz(10, 10))
	elems := p.Elements()
	if len(elems) != 4 {
		t.Fatalf("len(Elements()) = %d, want 4", len(elems))
	}
	if _, ok := elems[0].(MoveTo); !ok {
		t.Errorf("Elements()[0] = %T, want MoveTo", elems[0])
	}
	if l, ok := elems[1].(LineTo); !ok || l.Point != Pt(10, 0) {
		t.Errorf("Elements()[1] = %#v, want LineTo(10, 0)", elems[1])
	}
	if _, ok := elems[3].(Close); !ok {
		t.Errorf("Elements()[3] = %T, want Close", elems[3])
	}

	if !NormalizePolygon(nil, Sz(10, 10)).IsEmpty() {
		t.Error("NormalizePolygon(nil) is not empty")
	}
}

func TestBox_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		vs   []Vertex
		want bool
	}{
		{"area", []Vertex{{0, 0}, {1, 1}}, false},
		{"horizontal line", []Vertex{{0, 0}, {1, 0}}, true},
		{"vertical line", []Vertex{{0, 0}, {0, 1}}, true},
		{"point", []Vertex{{2, 2}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := PolygonBounds(tt.vs)
			if !ok {
				t.Fatal("PolygonBounds() ok = false")
			}
			err := b.Degenerate()
			if got := errors.Is(err, ErrDegenerateGeometry); got != tt.want {
				t.Errorf("Degenerate() = %v, want degenerate %v", err, tt.want)
			}
		})
	}

	if _, ok := PolygonBounds(nil); ok {
		t.Error("PolygonBounds(nil) ok = true, want false")
	}
}
