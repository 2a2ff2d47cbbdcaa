package shape

import (
	"image/color"
	"testing"
)

func TestRGBA_NRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.NRGBA
	}{
		{"opaque black", Black, color.NRGBA{0, 0, 0, 255}},
		{"opaque white", White, color.NRGBA{255, 255, 255, 255}},
		{"opaque red", Red, color.NRGBA{255, 0, 0, 255}},
		{"transparent", Transparent, color.NRGBA{}},
		{"50% alpha red", RGBA{1, 0, 0, 0.5}, color.NRGBA{255, 0, 0, 127}},
		{"out of range clamps", RGBA{2, -1, 0, 1}, color.NRGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.NRGBA(); got != tt.want {
				t.Errorf("NRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#3498db", color.NRGBA{0x34, 0x98, 0xdb, 0xff}},
		{"3498db80", color.NRGBA{0x34, 0x98, 0xdb, 0x80}},
		{"#f00", color.NRGBA{0xff, 0, 0, 0xff}},
		{"#f008", color.NRGBA{0xff, 0, 0, 0x88}},
		{"zz", color.NRGBA{0, 0, 0, 0xff}},
		{"", color.NRGBA{0, 0, 0, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Hex(tt.in).NRGBA(); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPaint_String(t *testing.T) {
	if got, want := Solid(Hex("#3498db")).String(), "#3498dbff"; got != want {
		t.Errorf("Paint.String() = %q, want %q", got, want)
	}
}
