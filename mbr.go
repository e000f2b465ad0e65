// Minimum-area bounding rectangles for Go.
//
// This package finds the smallest rectangle, in any orientation, that
// contains a set of 2D points. It builds the convex hull with a Graham scan
// and then tries every hull edge as a side of the rectangle (rotating
// calipers).
//
// The functions here return errors for unusable input. The advanced package
// has the same operations, which panic instead, plus the lower level helpers.
package mbr

import (
	"github.com/osuushi/mbr/advanced"
	"github.com/rs/zerolog"
)

type Point = advanced.Point
type Vector = advanced.Vector
type Extent = advanced.Extent
type Rectangle = advanced.Rectangle

var (
	// Returned when there are no points.
	ErrEmptyInput = advanced.ErrEmptyInput
	// Returned when the points are collinear, or there are fewer than three
	// distinct points.
	ErrDegenerateHull = advanced.ErrDegenerateHull
)

// Find the minimum-area rectangle enclosing the points.
//
// The rectangle's extent is exact, but its center is the centroid of the
// hull's vertices, which only matches the rectangle's true center for
// symmetric hulls. See ComputeMBRCentered.
func ComputeMBR(points []Point) (result Rectangle, err error) {
	defer recoverInto(&err)
	return advanced.ComputeMBR(points), nil
}

// Like ComputeMBR, but centered on the rectangle's true center, so that it
// actually contains every point.
func ComputeMBRCentered(points []Point) (result Rectangle, err error) {
	defer recoverInto(&err)
	return advanced.ComputeMBRCentered(points), nil
}

// Take a set of points and return their convex hull, counterclockwise,
// starting from the lowest point (leftmost on ties). Collinear or coincident
// points give a hull of one or two points, which is not an error here.
func ConvexHull(points []Point) (hull []Point, err error) {
	defer recoverInto(&err)
	return advanced.BuildConvexHull(points), nil
}

// The half-size and rotation of the minimum-area rectangle enclosing a
// counterclockwise convex hull, such as the result of ConvexHull.
func MinimumBoundingRectangle(hull []Point) (result Extent, err error) {
	defer recoverInto(&err)
	return advanced.MinimumBoundingRectangle(hull), nil
}

// Install a logger for debug diagnostics. The package is silent by default.
// Pass nil to silence it again.
func SetLogger(l *zerolog.Logger) {
	advanced.SetLogger(l)
}

func recoverInto(err *error) {
	if recoveredErr := advanced.HandlePanicRecover(recover()); recoveredErr != nil {
		*err = recoveredErr
	}
}
