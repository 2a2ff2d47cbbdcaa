package text

import (
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/shape/internal/cache"
	"golang.org/x/image/math/fixed"
)

// metricsCacheSize bounds the number of measured lines kept per shaper.
const metricsCacheSize = 4096

// Metrics describe one shaped line, in points.
type Metrics struct {
	// Advance is the total horizontal advance of the line.
	Advance float64

	// Ascent is the distance from the top of the line to the baseline.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the line.
	Descent float64

	// Gap is the extra space recommended between lines.
	Gap float64
}

// LineHeight returns the distance between consecutive baselines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.Gap
}

// Shaper measures text using HarfBuzz-level shaping from
// go-text/typesetting, so kerning and ligatures affect line breaking.
//
// Shaper is safe for concurrent use. The HarfbuzzShaper instances are
// pooled via sync.Pool since they are not concurrent-safe. Measured
// lines are cached, as greedy wrapping measures each prefix repeatedly.
type Shaper struct {
	shaperPool sync.Pool
	metrics    *cache.LRU[metricsKey, Metrics]
}

type metricsKey struct {
	font *Font
	size float64
	line string
}

// NewShaper creates a new Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		metrics: cache.New[metricsKey, Metrics](metricsCacheSize),
	}
}

// Measure shapes a line of text with the font at the given size. Each
// bidi run is shaped in its own direction and script.
func (s *Shaper) Measure(line string, f *Font, size float64) Metrics {
	key := metricsKey{font: f, size: size, line: line}
	return s.metrics.GetOrCreate(key, func() Metrics {
		return s.measure(line, f, size)
	})
}

func (s *Shaper) measure(line string, f *Font, size float64) Metrics {
	runes := []rune(line)
	face := f.newFace()

	var m Metrics
	if len(runes) == 0 {
		// Shape a space to obtain the line's vertical metrics.
		out := s.shape([]rune{' '}, 0, 1, di.DirectionLTR, face, size)
		m = lineMetrics(out)
		m.Advance = 0
		return m
	}

	for _, r := range Runs(line) {
		dir := di.DirectionLTR
		if r.RTL {
			dir = di.DirectionRTL
		}
		out := s.shape(runes, r.Start, r.End, dir, face, size)
		run := lineMetrics(out)
		m.Advance += run.Advance
		m.Ascent = max(m.Ascent, run.Ascent)
		m.Descent = max(m.Descent, run.Descent)
		m.Gap = max(m.Gap, run.Gap)
	}
	return m
}

func (s *Shaper) shape(runes []rune, start, end int, dir di.Direction, face *font.Face, size float64) shaping.Output {
	input := shaping.Input{
		Text:      runes,
		RunStart:  start,
		RunEnd:    end,
		Direction: dir,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes[start:end]),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.shaperPool.Put(hb)
	return out
}

func lineMetrics(out shaping.Output) Metrics {
	return Metrics{
		Advance: fixedToFloat(out.Advance),
		Ascent:  fixedToFloat(out.LineBounds.Ascent),
		Descent: math.Abs(fixedToFloat(out.LineBounds.Descent)),
		Gap:     max(0, fixedToFloat(out.LineBounds.Gap)),
	}
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Runs are split by direction only, so mixed-script
// runs of the same direction shape with their first script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
