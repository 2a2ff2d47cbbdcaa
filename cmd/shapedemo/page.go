package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gogpu/shape"
	"github.com/gogpu/shape/text"
	"github.com/pelletier/go-toml/v2"
)

//go:embed page.toml
var defaultPage []byte

// Page describes a demo page. Shapes are placed left to right and wrap
// into rows at the page width.
type Page struct {
	Width      float64    `toml:"width"`
	Gap        float64    `toml:"gap"`
	Cell       float64    `toml:"cell"`
	FontSize   float64    `toml:"font_size"`
	Background string     `toml:"background"`
	RectInset  float64    `toml:"rect_inset"`
	Shapes     []ShapeDef `toml:"shapes"`
}

// ShapeDef describes one shape. Zero sizes are left automatic.
type ShapeDef struct {
	Kind         string               `toml:"kind"`
	Text         string               `toml:"text"`
	TextColor    string               `toml:"text_color"`
	Width        float64              `toml:"width"`
	Height       float64              `toml:"height"`
	Size         float64              `toml:"size"`
	Radius       float64              `toml:"radius"`
	Fill         string               `toml:"fill"`
	NoStroke     bool                 `toml:"no_stroke"`
	Stroke       *StrokeDef           `toml:"stroke"`
	StrokeSides  map[string]StrokeDef `toml:"stroke_sides"`
	CornerRadius float64              `toml:"corner_radius"`
	Vertices     string               `toml:"vertices"`
}

// StrokeDef is a partial stroke. Unset fields inherit.
type StrokeDef struct {
	Color     string  `toml:"color"`
	Thickness float64 `toml:"thickness"`
}

// loadPage reads a page from path, or the built-in page if path is empty.
func loadPage(path string) (*Page, error) {
	if path == "" {
		return decodePage(bytes.NewReader(defaultPage))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodePage(f)
}

func decodePage(r io.Reader) (*Page, error) {
	page := &Page{
		Width:    420,
		Gap:      20,
		Cell:     120,
		FontSize: shape.DefaultFontSize,
	}
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(page); err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}
	return page, nil
}

// Styles returns the style chain the page's shapes are laid out with.
func (p *Page) Styles() *shape.Styles {
	st := shape.NewStyles().WithFontSize(p.FontSize)
	if p.RectInset > 0 {
		st = st.With(shape.Set(shape.Rect, shape.WithInset(shape.AllSides(shape.Pts(p.RectInset)))))
	}
	return st
}

// Build creates the shape element.
func (d ShapeDef) Build() (*shape.Shape, error) {
	var opts []shape.ShapeOption
	if d.Width > 0 {
		opts = append(opts, shape.WithWidth(shape.Pts(d.Width)))
	}
	if d.Height > 0 {
		opts = append(opts, shape.WithHeight(shape.Pts(d.Height)))
	}
	if d.Size > 0 {
		opts = append(opts, shape.WithSize(shape.Abs(d.Size)))
	}
	if d.Radius > 0 {
		opts = append(opts, shape.WithCircleRadius(shape.Abs(d.Radius)))
	}
	if d.Fill != "" {
		opts = append(opts, shape.WithFill(shape.Solid(shape.Hex(d.Fill))))
	}
	switch {
	case d.NoStroke:
		opts = append(opts, shape.WithoutStroke())
	case len(d.StrokeSides) > 0:
		sides, err := strokeSides(d.StrokeSides)
		if err != nil {
			return nil, err
		}
		opts = append(opts, shape.WithStrokeSides(sides))
	case d.Stroke != nil:
		opts = append(opts, shape.WithStroke(d.Stroke.partial()))
	}
	if d.CornerRadius > 0 {
		opts = append(opts, shape.WithCornerRadius(shape.AllCorners(shape.Pts(d.CornerRadius))))
	}

	var body shape.Content
	if d.Text != "" {
		var topts []text.Option
		if d.TextColor != "" {
			topts = append(topts, text.WithFill(shape.Solid(shape.Hex(d.TextColor))))
		}
		body = text.New(d.Text, topts...)
	}

	switch strings.ToLower(d.Kind) {
	case "rect", "":
		return shape.NewRect(body, opts...), nil
	case "square":
		return shape.NewSquare(body, opts...), nil
	case "ellipse":
		return shape.NewEllipse(body, opts...), nil
	case "circle":
		return shape.NewCircle(body, opts...), nil
	case "polygon":
		return shape.ParsePolygon(d.Vertices, body, opts...)
	default:
		return nil, fmt.Errorf("page: unknown shape kind %q", d.Kind)
	}
}

func (s StrokeDef) partial() shape.PartialStroke {
	var p shape.PartialStroke
	if s.Color != "" {
		p.Paint = shape.Some(shape.Solid(shape.Hex(s.Color)))
	}
	if s.Thickness > 0 {
		p.Thickness = shape.Some(shape.Abs(s.Thickness))
	}
	return p
}

// strokeSides maps the keys top, right, bottom, left, x, y and rest to
// a per-edge stroke map. Named edges win over x and y, which win over
// rest.
func strokeSides(m map[string]StrokeDef) (shape.PartialSides[shape.SideStroke], error) {
	var sides shape.PartialSides[shape.SideStroke]
	set := func(side shape.Side, key string) {
		if s, ok := m[key]; ok {
			sides = sides.With(side, shape.Some(s.partial()))
		}
	}
	for key := range m {
		switch key {
		case "top", "right", "bottom", "left", "x", "y", "rest":
		default:
			return sides, fmt.Errorf("page: unknown stroke side %q", key)
		}
	}
	if s, ok := m["rest"]; ok {
		sides = sides.WithRest(shape.Some(s.partial()))
	}
	set(shape.Left, "x")
	set(shape.Right, "x")
	set(shape.Top, "y")
	set(shape.Bottom, "y")
	set(shape.Top, "top")
	set(shape.Right, "right")
	set(shape.Bottom, "bottom")
	set(shape.Left, "left")
	return sides, nil
}
