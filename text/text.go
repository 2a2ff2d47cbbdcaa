package text

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/gogpu/shape"
)

// DefaultLeading is the line height as a multiple of the font's own
// line spacing.
const DefaultLeading = 1.0

var defaultShaper = sync.OnceValue(NewShaper)

// Option configures a Text.
type Option func(*options)

type options struct {
	font    *Font
	size    shape.Option[shape.Length]
	fill    shape.Paint
	leading float64
	shaper  *Shaper
}

// WithFont sets the font. Default: Go Regular.
func WithFont(f *Font) Option {
	return func(o *options) {
		o.font = f
	}
}

// WithSize sets the font size. Default: the styles' font size.
func WithSize(l shape.Length) Option {
	return func(o *options) {
		o.size = shape.Some(l)
	}
}

// WithFill sets the text color. Default: black.
func WithFill(p shape.Paint) Option {
	return func(o *options) {
		o.fill = p
	}
}

// WithLeading scales the distance between baselines.
func WithLeading(factor float64) Option {
	return func(o *options) {
		o.leading = factor
	}
}

// WithShaper sets the shaper used to measure lines.
func WithShaper(s *Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}

// Text is a block of text that wraps at word boundaries to the width of
// its region. Explicit newlines start new paragraphs. Lines whose
// content is mostly right-to-left are aligned to the right edge.
type Text struct {
	content string
	opts    options
}

// New creates a text block.
func New(content string, opts ...Option) *Text {
	t := &Text{
		content: content,
		opts: options{
			fill:    shape.Solid(shape.Black),
			leading: DefaultLeading,
		},
	}
	for _, opt := range opts {
		opt(&t.opts)
	}
	if t.opts.font == nil {
		t.opts.font = DefaultFont()
	}
	if t.opts.shaper == nil {
		t.opts.shaper = defaultShaper()
	}
	return t
}

// String returns the text content.
func (t *Text) String() string {
	return t.content
}

type line struct {
	text    string
	metrics Metrics
	rtl     bool
}

// Layout wraps the text to the width of the current region. A word wider
// than the region is placed on a line of its own and overflows. Only an
// unusable font size is an error.
func (t *Text) Layout(ctx context.Context, st *shape.Styles, regions shape.Regions) (shape.Fragment, error) {
	size := st.FontSize()
	if l, ok := t.opts.size.Get(); ok {
		size = l.Resolve(st)
	}
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, &shape.LayoutError{Reason: fmt.Sprintf("text: font size %v is not positive", size)}
	}
	// A shape smaller than its inset leaves a negative width. Every word
	// then overflows on a line of its own.
	width := regions.Size.Width
	if math.IsNaN(width) || width < 0 {
		width = 0
	}

	lines, err := t.wrap(ctx, width, size)
	if err != nil {
		return nil, err
	}

	var contentWidth, height float64
	for _, ln := range lines {
		contentWidth = max(contentWidth, ln.metrics.Advance)
		height += ln.metrics.LineHeight() * t.opts.leading
	}

	frameSize := shape.Sz(contentWidth, height)
	if w := regions.Size.Width; regions.Expand.X && !math.IsInf(w, 0) && !math.IsNaN(w) {
		frameSize.Width = w
	}
	if h := regions.Size.Height; regions.Expand.Y && !math.IsInf(h, 0) && !math.IsNaN(h) {
		frameSize.Height = h
	}

	frame := shape.NewFrame(frameSize)
	var y float64
	for _, ln := range lines {
		var x float64
		if ln.rtl {
			x = frameSize.Width - ln.metrics.Advance
		}
		if ln.text != "" {
			frame.Push(shape.Pt(x, y+ln.metrics.Ascent), shape.TextItem{
				Text:     ln.text,
				FontSize: size,
				Width:    ln.metrics.Advance,
				Fill:     t.opts.fill,
				RTL:      ln.rtl,
				Font:     t.opts.font.Data(),
			})
		}
		y += ln.metrics.LineHeight() * t.opts.leading
	}

	shape.Logger().Debug("text: laid out",
		"lines", len(lines), "width", frameSize.Width, "height", frameSize.Height)
	return shape.FragmentOf(frame), nil
}

// wrap breaks the text into lines greedily.
func (t *Text) wrap(ctx context.Context, width, size float64) ([]line, error) {
	measure := func(s string) line {
		return line{text: s, metrics: t.opts.shaper.Measure(s, t.opts.font, size), rtl: IsRTL(s)}
	}

	var lines []line
	for _, para := range strings.Split(t.content, "\n") {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, measure(""))
			continue
		}

		cur := measure(words[0])
		for _, word := range words[1:] {
			next := measure(cur.text + " " + word)
			if next.metrics.Advance <= width {
				cur = next
				continue
			}
			lines = append(lines, cur)
			cur = measure(word)
		}
		lines = append(lines, cur)
	}
	return lines, nil
}
