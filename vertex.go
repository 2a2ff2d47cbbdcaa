package shape

import (
	"math"
	"strconv"
	"strings"
)

// Vertex is a polygon corner in the polygon's own coordinate space. Only
// relative positions matter: polygons are scaled to fit their frame.
type Vertex struct {
	X, Y float64
}

// ParseVertices parses a vertex list of the form "x,y; x,y; ...".
// Groups are separated by semicolons, coordinates by commas, and
// whitespace around each number is ignored. The empty string is not a
// valid list.
func ParseVertices(s string) ([]Vertex, error) {
	groups := strings.Split(s, ";")
	vertices := make([]Vertex, 0, len(groups))
	for i, group := range groups {
		var vals []float64
		for _, tok := range strings.Split(group, ",") {
			tok = strings.TrimSpace(tok)
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, &NumberFormatError{Token: tok, Group: i, Err: err}
			}
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return nil, &NumberFormatError{Token: tok, Group: i, Err: errNonFinite}
			}
			vals = append(vals, v)
		}
		if len(vals) != 2 {
			return nil, &ArityError{Group: group, Index: i, Count: len(vals)}
		}
		vertices = append(vertices, Vertex{X: vals[0], Y: vals[1]})
	}
	return vertices, nil
}

// FormatVertices writes vertices in the form accepted by ParseVertices.
// Parsing the result yields the same vertices.
func FormatVertices(vs []Vertex) string {
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.FormatFloat(v.X, 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(v.Y, 'g', -1, 64))
	}
	return b.String()
}

// PolygonValue is the authoring-facing form of a vertex list. It
// converts losslessly to and from a plain []Vertex and an array of
// coordinate pairs.
type PolygonValue struct {
	Vertices []Vertex
}

// PolygonFromArray builds a polygon from coordinate pairs. Every entry
// must hold exactly two numbers.
func PolygonFromArray(pairs [][]float64) (PolygonValue, error) {
	p := PolygonValue{Vertices: make([]Vertex, 0, len(pairs))}
	for i, pair := range pairs {
		if len(pair) != 2 {
			return PolygonValue{}, &ArityError{Group: formatPair(pair), Index: i, Count: len(pair)}
		}
		p.Vertices = append(p.Vertices, Vertex{X: pair[0], Y: pair[1]})
	}
	return p, nil
}

// Array exports the polygon as coordinate pairs.
func (p PolygonValue) Array() [][]float64 {
	out := make([][]float64, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = []float64{v.X, v.Y}
	}
	return out
}

// String returns the polygon as "x, y; x, y", or "()" when empty.
func (p PolygonValue) String() string {
	if len(p.Vertices) == 0 {
		return "()"
	}
	parts := make([]string, len(p.Vertices))
	for i, v := range p.Vertices {
		parts[i] = strconv.FormatFloat(v.X, 'g', -1, 64) + ", " + strconv.FormatFloat(v.Y, 'g', -1, 64)
	}
	return strings.Join(parts, "; ")
}

func formatPair(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
