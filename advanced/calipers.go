package advanced

import "math"

// The winning candidate of a caliper sweep: the hull edge the rectangle is
// flush with, the rectangle's local axes, and the projection intervals of the
// hull on those axes.
type Calipers struct {
	// Index of the hull vertex where the winning edge starts.
	Edge int
	// Unit direction of the winning edge, the rectangle's local x axis.
	Axis Vector
	MinU float64
	MaxU float64
	MinV float64
	MaxV float64
}

func (c Calipers) Width() float64 {
	return math.Abs(c.MaxU - c.MinU)
}

func (c Calipers) Height() float64 {
	return math.Abs(c.MaxV - c.MinV)
}

func (c Calipers) Area() float64 {
	return c.Width() * c.Height()
}

// Rotation of the local x axis, in (-π, π].
func (c Calipers) Rotation() float64 {
	rotation := c.Axis.Angle()
	if rotation <= -math.Pi {
		rotation = math.Pi
	}
	return rotation
}

func (c Calipers) Extent() Extent {
	return Extent{
		HalfSize: Vector{c.Width() / 2, c.Height() / 2},
		Rotation: c.Rotation(),
	}
}

// Center of the rectangle, from the midpoints of the projection intervals.
func (c Calipers) Center() Point {
	midU := (c.MinU + c.MaxU) / 2
	midV := (c.MinV + c.MaxV) / 2
	return c.Axis.Scale(midU).Add(c.Axis.Perpendicular().Scale(midV))
}

// Rotating calipers over the edges of a convex hull.
//
// The minimum-area rectangle around a convex polygon always has a side flush
// with one of the polygon's edges, so each edge direction is tried as the
// rectangle's x axis and the hull is projected onto it and its perpendicular.
// The first edge (in hull order) with the smallest area wins. Zero-length
// edges are skipped.
//
// The hull must have at least three vertices and non-zero area, otherwise this
// panics with ErrDegenerateHull.
func SolveCalipers(hull []Point) Calipers {
	if len(hull) < 3 {
		fatalf(ErrDegenerateHull, "need at least 3 hull vertices, got %d", len(hull))
	}
	if area := SignedArea(hull); !(math.Abs(area) > 0) {
		fatalf(ErrDegenerateHull, "hull of %d vertices has no area", len(hull))
	}

	minArea := math.Inf(1)
	var best Calipers
	found := false
	for i, p := range hull {
		next := hull[CircularIndex(i+1, len(hull))]
		edge := next.Sub(p)
		if edge.Length() == 0 {
			Logger().Debug().Int("edge", i).Msg("skipping zero-length hull edge")
			continue
		}
		axis := edge.Normalize()

		minU, maxU := MinMaxProjection(hull, axis)
		minV, maxV := MinMaxProjection(hull, axis.Perpendicular())
		candidate := Calipers{
			Edge: i,
			Axis: axis,
			MinU: minU,
			MaxU: maxU,
			MinV: minV,
			MaxV: maxV,
		}

		if area := candidate.Area(); area < minArea {
			minArea = area
			best = candidate
			found = true
		}
	}

	if !found {
		fatalf(ErrDegenerateHull, "no usable edge among %d hull vertices", len(hull))
	}

	Logger().Debug().
		Int("edge", best.Edge).
		Float64("area", minArea).
		Float64("rotation", best.Rotation()).
		Msg("minimum bounding rectangle edge")
	return best
}

// The half-size and rotation of the minimum-area rectangle enclosing a convex
// hull. See SolveCalipers for the preconditions.
func MinimumBoundingRectangle(hull []Point) Extent {
	return SolveCalipers(hull).Extent()
}
