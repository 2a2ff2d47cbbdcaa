package shape

import (
	"errors"
	"fmt"
)

var (
	// ErrVertexSyntax is matched by every vertex list parse error.
	ErrVertexSyntax = errors.New("shape: invalid vertex list")

	// ErrDegenerateGeometry reports a polygon whose bounding box has no
	// extent on at least one axis.
	ErrDegenerateGeometry = errors.New("shape: degenerate polygon bounding box")

	errNonFinite = errors.New("value is not finite")
)

// NumberFormatError reports a vertex coordinate that is not a finite
// real number.
type NumberFormatError struct {
	Token string // offending token, trimmed
	Group int    // zero-based index of the vertex group
	Err   error  // underlying strconv or range error
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("shape: vertex %d: float parse failure: %q", e.Group, e.Token)
}

func (e *NumberFormatError) Unwrap() []error {
	return []error{ErrVertexSyntax, e.Err}
}

// ArityError reports a vertex group that does not hold exactly two
// numbers.
type ArityError struct {
	Group string // offending group text
	Index int    // zero-based index of the vertex group
	Count int    // number of values found
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("shape: vertex %d (%q): a vertex has to have exactly 2 values, got %d", e.Index, e.Group, e.Count)
}

func (e *ArityError) Unwrap() error {
	return ErrVertexSyntax
}

// LayoutError reports content whose constraints cannot be satisfied.
// Shapes return layout errors of their content unchanged.
type LayoutError struct {
	Reason string
}

func (e *LayoutError) Error() string {
	return "shape: layout: " + e.Reason
}
