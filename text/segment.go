package text

import (
	"cmp"
	"slices"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
)

// Run is a contiguous range of runes with one direction.
type Run struct {
	Start, End int // rune indices, End exclusive
	RTL        bool
}

// Runs splits a line into bidi runs in logical order. A line without
// strong right-to-left characters is a single left-to-right run.
func Runs(line string) []Run {
	n := utf8.RuneCountInString(line)
	if n == 0 {
		return nil
	}
	fallback := []Run{{Start: 0, End: n}}

	p := bidi.Paragraph{}
	if _, err := p.SetString(line, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return fallback
	}
	ordering, err := p.Order()
	if err != nil {
		return fallback
	}

	// run.Pos() returns RUNE indices (start, end inclusive)
	runs := make([]Run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		runs = append(runs, Run{
			Start: start,
			End:   min(end+1, n),
			RTL:   run.Direction() == bidi.RightToLeft,
		})
	}
	if len(runs) == 0 {
		return fallback
	}
	// Orderings list runs visually.
	slices.SortFunc(runs, func(a, b Run) int { return cmp.Compare(a.Start, b.Start) })
	return runs
}

// IsRTL reports whether most of the line's runes are right-to-left.
func IsRTL(line string) bool {
	var rtl, total int
	for _, r := range Runs(line) {
		total += r.End - r.Start
		if r.RTL {
			rtl += r.End - r.Start
		}
	}
	return rtl*2 > total
}
