package advanced

import "math"

// Minimum bounding rectangle of a point set.
//
// The rectangle's extent comes from rotating calipers over the convex hull.
// The reported center is the centroid of the hull vertices, which is only the
// true rectangle center for symmetric hulls. Use ComputeMBRCentered for the
// exact center.
//
// Panics with ErrEmptyInput for no points, and with ErrDegenerateHull when the
// points are all collinear or there are fewer than three distinct points.
func ComputeMBR(points []Point) Rectangle {
	hull := polygonHull(points)
	extent := MinimumBoundingRectangle(hull)
	return Rectangle{
		Center:   Centroid(hull),
		HalfSize: extent.HalfSize,
		Rotation: extent.Rotation,
	}
}

// Like ComputeMBR, but centers the rectangle on the midpoint of the winning
// projection intervals, so the rectangle actually encloses the points.
func ComputeMBRCentered(points []Point) Rectangle {
	calipers := SolveCalipers(polygonHull(points))
	extent := calipers.Extent()
	return Rectangle{
		Center:   calipers.Center(),
		HalfSize: extent.HalfSize,
		Rotation: extent.Rotation,
	}
}

func polygonHull(points []Point) []Point {
	hull := BuildConvexHull(points)
	if len(hull) < 3 {
		fatalf(ErrDegenerateHull, "%d points reduce to a hull of %d vertices", len(points), len(hull))
	}
	return hull
}

// Unit vectors along the rectangle's local x and y axes.
func (r Rectangle) Axes() (u, v Vector) {
	u = Vector{math.Cos(r.Rotation), math.Sin(r.Rotation)}
	return u, u.Perpendicular()
}

// The four corners, counterclockwise, starting at the local (-x, -y) corner.
func (r Rectangle) Corners() [4]Point {
	u, v := r.Axes()
	du := u.Scale(r.HalfSize.X)
	dv := v.Scale(r.HalfSize.Y)
	return [4]Point{
		r.Center.Sub(du).Sub(dv),
		r.Center.Add(du).Sub(dv),
		r.Center.Add(du).Add(dv),
		r.Center.Sub(du).Add(dv),
	}
}

func (r Rectangle) Area() float64 {
	return 4 * r.HalfSize.X * r.HalfSize.Y
}

// Whether p lies inside the rectangle, allowing it to stick out by up to
// tolerance along either local axis.
func (r Rectangle) Contains(p Point, tolerance float64) bool {
	u, v := r.Axes()
	offset := p.Sub(r.Center)
	return math.Abs(offset.Dot(u)) <= r.HalfSize.X+tolerance &&
		math.Abs(offset.Dot(v)) <= r.HalfSize.Y+tolerance
}
