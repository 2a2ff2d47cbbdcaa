// Command shapedemo lays out a page of shapes and renders it to a PNG.
//
// The page is described in TOML; without -page a built-in page is used.
package main

import (
	"context"
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/shape"
	"github.com/gogpu/shape/raster"
)

func main() {
	var (
		pagePath = flag.String("page", "", "page description (TOML); built-in page if empty")
		output   = flag.String("output", "shapes.png", "output file")
		scale    = flag.Float64("scale", 2, "pixels per point")
		vertices = flag.String("vertices", "", "extra polygon as x,y;x,y;...")
		verbose  = flag.Bool("v", false, "log layout decisions")
	)
	flag.Parse()

	if *verbose {
		shape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	page, err := loadPage(*pagePath)
	if err != nil {
		log.Fatalf("Failed to load page: %v", err)
	}
	if *vertices != "" {
		page.Shapes = append(page.Shapes, ShapeDef{
			Kind:     "polygon",
			Vertices: *vertices,
			Width:    page.Cell,
			Height:   page.Cell,
			Fill:     "#34495e",
		})
	}

	ctx := context.Background()
	frame, err := page.Layout(ctx)
	if err != nil {
		log.Fatalf("Failed to lay out: %v", err)
	}

	opts := []raster.Option{raster.WithScale(*scale)}
	if page.Background != "" {
		opts = append(opts, raster.WithBackground(shape.Hex(page.Background)))
	}
	img, err := raster.New(opts...).Render(ctx, frame)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, img.Bounds().Dx(), img.Bounds().Dy())
}

// Layout builds the page's shapes and places them left to right,
// wrapping into rows. Each shape is laid out in a cell-sized region.
func (p *Page) Layout(ctx context.Context) (*shape.Frame, error) {
	st := p.Styles()
	region := shape.OneRegion(shape.Sz(p.Cell, p.Cell), shape.Axes[bool]{})

	var (
		x, y, rowHeight float64
		placed          []shape.Positioned
	)
	for _, def := range p.Shapes {
		s, err := def.Build()
		if err != nil {
			return nil, err
		}
		frag, err := s.Layout(ctx, st, region)
		if err != nil {
			return nil, err
		}
		f := frag[0]
		if x > 0 && x+p.Gap+f.Width() > p.Width {
			x, y = 0, y+rowHeight+p.Gap
			rowHeight = 0
		}
		placed = append(placed, shape.Positioned{
			Pos:  shape.Pt(x+p.Gap, y+p.Gap),
			Item: shape.GroupItem{Frame: f},
		})
		x += p.Gap + f.Width()
		rowHeight = max(rowHeight, f.Height())
	}

	page := shape.NewFrame(shape.Sz(p.Width+p.Gap, y+rowHeight+2*p.Gap))
	for _, it := range placed {
		page.Push(it.Pos, it.Item)
	}
	return page, nil
}
