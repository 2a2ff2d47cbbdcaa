// Package shape lays out geometric shapes for a document layout engine.
//
// # Overview
//
// A shape is a rectangle, square, ellipse, circle or polygon with an
// optional body of nested content. Layout sizes the shape within the
// available regions, lays out the body with padding, and paints the
// outline beneath the body's frame.
//
// # Quick Start
//
//	import "github.com/gogpu/shape"
//
//	// A filled square that grows to fit a nested circle
//	sq := shape.NewSquare(
//		shape.NewCircle(nil, shape.WithCircleRadius(shape.Abs(10))),
//		shape.WithFill(shape.Solid(shape.Hex("#d0e0ff"))),
//	)
//
//	frag, err := sq.Layout(ctx, shape.NewStyles(), shape.OneRegion(shape.Sz(200, 200), shape.Axes[bool]{}))
//
// # Styles
//
// Attributes cascade: a shape's own options override set rules applied
// through [Styles.With], innermost first. Per-edge and per-corner
// attributes fold position by position, so an inner rule may set the
// top edge while the remaining edges come from outer rules. Strokes fold
// field by field, so an inner rule may change only the paint of an
// outline whose thickness was set further out.
//
// # Polygons
//
// Polygon vertices are parsed from "x,y; x,y; ..." lists with
// [ParseVertices] and normalized into the shape's frame with
// [NormalizeVertices], which maps their bounding box exactly onto the
// frame.
//
// # Coordinate System
//
// Uses standard document coordinates in points:
//   - Origin (0,0) at top-left of each frame
//   - X increases right
//   - Y increases down
//
// # Sub-packages
//
//   - text: shaped, wrapped text content
//   - raster: renders frames to images
package shape

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
