// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/shape"
)

var (
	red         = color.RGBA{R: 255, A: 255}
	black       = color.RGBA{A: 255}
	transparent = color.RGBA{}
)

func render(t *testing.T, f *shape.Frame, opts ...Option) *image.RGBA {
	t.Helper()
	img, err := New(opts...).Render(context.Background(), f)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return img
}

func filled(g shape.Geometry, c shape.RGBA) shape.ShapeItem {
	return shape.ShapeItem{Primitive: shape.Primitive{
		Geometry: g,
		Fill:     shape.Some(shape.Solid(c)),
	}}
}

func checkPixels(t *testing.T, img *image.RGBA, want map[image.Point]color.RGBA) {
	t.Helper()
	for p, c := range want {
		if got := img.RGBAAt(p.X, p.Y); got != c {
			t.Errorf("pixel %v = %v, want %v", p, got, c)
		}
	}
}

func TestRender_FilledRect(t *testing.T) {
	f := shape.NewFrame(shape.Sz(20, 20))
	f.Push(shape.Pt(5, 5), filled(shape.RectGeometry{Size: shape.Sz(10, 10)}, shape.Red))

	img := render(t, f)
	checkPixels(t, img, map[image.Point]color.RGBA{
		{5, 5}:   red,
		{14, 14}: red,
		{10, 10}: red,
		{4, 10}:  transparent,
		{15, 10}: transparent,
		{0, 0}:   transparent,
	})
}

func TestRender_Scale(t *testing.T) {
	tests := []struct {
		name  string
		size  shape.Size
		scale float64
		want  image.Point
	}{
		{"unit", shape.Sz(10, 5), 1, image.Pt(10, 5)},
		{"double", shape.Sz(10, 5), 2, image.Pt(20, 10)},
		{"fractional rounds up", shape.Sz(10.2, 5), 2, image.Pt(21, 10)},
		{"empty", shape.Sz(0, 0), 3, image.Pt(0, 0)},
		{"largest", shape.Sz(MaxDimension, 1), 1, image.Pt(MaxDimension, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := render(t, shape.NewFrame(tt.size), WithScale(tt.scale))
			if got := img.Bounds().Size(); got != tt.want {
				t.Errorf("image size = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRender_ScaledFill(t *testing.T) {
	f := shape.NewFrame(shape.Sz(10, 10))
	f.Push(shape.Pt(5, 0), filled(shape.RectGeometry{Size: shape.Sz(5, 10)}, shape.Red))

	img := render(t, f, WithScale(4))
	checkPixels(t, img, map[image.Point]color.RGBA{
		{20, 0}:  red,
		{39, 39}: red,
		{19, 20}: transparent,
	})
}

func TestRender_Stroke(t *testing.T) {
	f := shape.NewFrame(shape.Sz(20, 20))
	f.Push(shape.Point{}, shape.ShapeItem{Primitive: shape.Primitive{
		Geometry: shape.RectGeometry{Size: shape.Sz(20, 20)},
		Stroke:   shape.Some(shape.Stroke{Paint: shape.Solid(shape.Black), Thickness: 2}),
	}})

	img := render(t, f, WithScale(4))
	checkPixels(t, img, map[image.Point]color.RGBA{
		{1, 40}:  black,
		{40, 1}:  black,
		{78, 40}: black,
		{0, 0}:   black,
		{79, 79}: black,
		{40, 40}: transparent,
		{10, 40}: transparent,
	})
}

func TestRender_OpenStrokeNotFilled(t *testing.T) {
	p := shape.NewPath()
	p.MoveTo(0, 10)
	p.LineTo(20, 10)
	p.LineTo(20, 0)

	f := shape.NewFrame(shape.Sz(20, 20))
	f.Push(shape.Point{}, shape.ShapeItem{Primitive: shape.Primitive{
		Geometry: p,
		Fill:     shape.Some(shape.Solid(shape.Red)),
		Stroke:   shape.Some(shape.Stroke{Paint: shape.Solid(shape.Black), Thickness: 2}),
	}})

	img := render(t, f)
	checkPixels(t, img, map[image.Point]color.RGBA{
		{5, 9}:  black,
		{5, 10}: black,
		{15, 5}: transparent,
		{5, 15}: transparent,
	})
}

func TestRender_Circle(t *testing.T) {
	f := shape.NewFrame(shape.Sz(20, 20))
	f.Push(shape.Point{}, filled(shape.EllipseGeometry{Size: shape.Sz(20, 20)}, shape.Red))

	img := render(t, f)
	checkPixels(t, img, map[image.Point]color.RGBA{
		{10, 10}: red,
		{9, 1}:   red,
		{0, 0}:   transparent,
		{19, 19}: transparent,
	})
}

func TestRender_NestedGroups(t *testing.T) {
	inner := shape.NewFrame(shape.Sz(10, 10))
	inner.Push(shape.Point{}, filled(shape.RectGeometry{Size: shape.Sz(10, 10)}, shape.Red))
	outer := shape.NewFrame(shape.Sz(30, 10))
	outer.PushFrame(shape.Pt(10, 0), inner)

	img := render(t, outer)
	checkPixels(t, img, map[image.Point]color.RGBA{
		{5, 5}:  transparent,
		{15, 5}: red,
		{25, 5}: transparent,
	})
}

func TestRender_Background(t *testing.T) {
	f := shape.NewFrame(shape.Sz(4, 4))
	f.Push(shape.Point{}, filled(shape.RectGeometry{Size: shape.Sz(2, 4)}, shape.Red))

	img := render(t, f, WithBackground(shape.White))
	checkPixels(t, img, map[image.Point]color.RGBA{
		{0, 0}: red,
		{3, 3}: {R: 255, G: 255, B: 255, A: 255},
	})
}

func TestRender_Text(t *testing.T) {
	f := shape.NewFrame(shape.Sz(100, 30))
	f.Push(shape.Pt(2, 20), shape.TextItem{
		Text:     "Hello",
		FontSize: 16,
		Width:    40,
		Fill:     shape.Solid(shape.Black),
	})

	img := render(t, f)
	var inked int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A > 0 {
				inked++
				if y > 25 {
					t.Fatalf("ink at %v, below the descender", image.Pt(x, y))
				}
			}
		}
	}
	if inked == 0 {
		t.Error("text drew no pixels")
	}
}

func TestRender_BadFontSkipped(t *testing.T) {
	f := shape.NewFrame(shape.Sz(20, 20))
	f.Push(shape.Pt(0, 15), shape.TextItem{
		Text:     "x",
		FontSize: 12,
		Fill:     shape.Solid(shape.Black),
		Font:     []byte("not a font"),
	})

	img := render(t, f)
	if got := img.RGBAAt(5, 10); got != transparent {
		t.Errorf("pixel = %v, want nothing drawn", got)
	}
}

func TestRender_LaidOutShape(t *testing.T) {
	ctx := context.Background()
	rect := shape.NewRect(nil, shape.WithFill(shape.Solid(shape.Red)), shape.WithoutStroke())
	frag, err := rect.Layout(ctx, shape.NewStyles(), shape.OneRegion(shape.Sz(100, 100), shape.Axes[bool]{}))
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	img := render(t, frag[0])
	if got := img.Bounds().Size(); got != image.Pt(shape.DefaultWidth, shape.DefaultHeight) {
		t.Errorf("image size = %v, want the default shape size", got)
	}
	checkPixels(t, img, map[image.Point]color.RGBA{{22, 15}: red})

	hidden, err := rect.Layout(ctx, shape.NewStyles().WithMeta(shape.Hide{}),
		shape.OneRegion(shape.Sz(100, 100), shape.Axes[bool]{}))
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	checkPixels(t, render(t, hidden[0]), map[image.Point]color.RGBA{{22, 15}: transparent})
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		size shape.Size
		opts []Option
	}{
		{"infinite width", shape.Sz(math.Inf(1), 10), nil},
		{"NaN height", shape.Sz(10, math.NaN()), nil},
		{"negative", shape.Sz(-1, 10), nil},
		{"zero scale", shape.Sz(10, 10), []Option{WithScale(0)}},
		{"huge frame", shape.Sz(1e9, 10), nil},
		{"huge after scaling", shape.Sz(10, MaxDimension), []Option{WithScale(2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...).Render(context.Background(), shape.NewFrame(tt.size))
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("Render() error = %v, want ErrInvalidSize", err)
			}
		})
	}
}

func TestRender_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Render(ctx, shape.NewFrame(shape.Sz(10, 10)))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
}
