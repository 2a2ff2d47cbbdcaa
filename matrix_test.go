package shape

import (
	"testing"
)

func TestMatrix_TransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, 20), Pt(3, 4), Pt(13, 24)},
		{"scale", Scale(2, 3), Pt(3, 4), Pt(6, 12)},
		{"scale then translate", Translate(1, 1).Multiply(Scale(2, 2)), Pt(3, 4), Pt(7, 9)},
		{"translate then scale", Scale(2, 2).Multiply(Translate(1, 1)), Pt(3, 4), Pt(8, 10)},
		{"pre-translate", Scale(2, 2).PreTranslate(Pt(5, 0)), Pt(0, 0), Pt(10, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.p); got != tt.want {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrix_MultiplyIdentity(t *testing.T) {
	m := Matrix{A: 2, B: 0.5, C: 3, D: -1, E: 4, F: 7}
	if got := m.Multiply(Identity()); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
	if got := Identity().Multiply(m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
}

func TestMatrix_Constructors(t *testing.T) {
	if got, want := Translate(3, 4), (Matrix{A: 1, C: 3, E: 1, F: 4}); got != want {
		t.Errorf("Translate(3, 4) = %v, want %v", got, want)
	}
	if got, want := Scale(2, 5), (Matrix{A: 2, E: 5}); got != want {
		t.Errorf("Scale(2, 5) = %v, want %v", got, want)
	}
}
