// Package text provides word-wrapped text content for shapes.
//
// Text is measured with HarfBuzz shaping from go-text/typesetting, split
// into bidi runs with golang.org/x/text/unicode/bidi, and laid out as one
// shape.TextItem per line.
//
// # Example usage
//
//	label := text.New("Hello, shapes!", text.WithSize(shape.Abs(14)))
//	box := shape.NewRect(label, shape.WithWidth(shape.Pts(80)))
//
//	frag, err := box.Layout(ctx, shape.NewStyles(), regions)
//
// # Fonts
//
// The built-in font is Go Regular. Other fonts are loaded with
// ParseFont and selected per text with WithFont:
//
//	f, err := text.ParseFont(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	label := text.New("Hello", text.WithFont(f))
package text
