package advanced

import "math"

// Angles around the hull pivot closer than this are treated as equal, and the
// points are ordered by distance instead. This is the float64 machine
// epsilon, so only angles that agree to the last bit or so are merged.
const AngleEpsilon = 2.220446049250313e-16

// Tolerance for geometric predicates used in validation helpers and tests. The
// algorithms themselves use exact comparisons.
const Epsilon = 1e-9

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

// Pop removes and returns the top point. The second return is false if the
// stack was empty.
func (s *PointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

func (s *PointStack) Peek() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	return (*s)[len(*s)-1], true
}

// The element below the top of the stack.
func (s *PointStack) PeekSecond() (Point, bool) {
	if len(*s) < 2 {
		return Point{}, false
	}
	return (*s)[len(*s)-2], true
}

func (s *PointStack) Len() int {
	return len(*s)
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

// Position of a point along a direction. The direction does not need to be a
// unit vector.
func Projection(p Point, direction Vector) float64 {
	return p.Dot(direction) / direction.Length()
}

// The extreme projections of a point set onto a direction. For an empty set,
// min is +Inf and max is -Inf.
func MinMaxProjection(points []Point, direction Vector) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, p := range points {
		proj := Projection(p, direction)
		min = math.Min(min, proj)
		max = math.Max(max, proj)
	}
	return min, max
}

// Arithmetic mean of the points.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		fatalf(ErrEmptyInput, "cannot take the centroid of zero points")
	}
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}

// Shoelace area. Positive for counterclockwise polygons, negative for
// clockwise ones.
func SignedArea(polygon []Point) float64 {
	var sum float64
	for i, p := range polygon {
		next := polygon[CircularIndex(i+1, len(polygon))]
		sum += p.Cross(next)
	}
	return sum / 2
}

// Whether every consecutive triple of vertices makes a strict left turn.
func IsConvexCCW(polygon []Point) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}
	for i := range polygon {
		a := polygon[i]
		b := polygon[CircularIndex(i+1, n)]
		c := polygon[CircularIndex(i+2, n)]
		if b.Sub(a).Cross(c.Sub(b)) <= 0 {
			return false
		}
	}
	return true
}

// Whether p is inside or on the boundary of a counterclockwise convex polygon.
// Points up to tolerance outside an edge (relative to the edge's length) are
// accepted.
func ContainsPoint(hull []Point, p Point, tolerance float64) bool {
	n := len(hull)
	for i, a := range hull {
		b := hull[CircularIndex(i+1, n)]
		edge := b.Sub(a)
		if edge.Cross(p.Sub(a)) < -tolerance*edge.Length() {
			return false
		}
	}
	return n > 0
}

func BoundingBoxOf(points []Point) BoundingBox {
	if len(points) == 0 {
		fatalf(ErrEmptyInput, "cannot bound zero points")
	}
	box := BoundingBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
	}
	return box
}

func (b BoundingBox) Width() float64 {
	return b.Max.X - b.Min.X
}

func (b BoundingBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}

func (b BoundingBox) Area() float64 {
	return b.Width() * b.Height()
}

func (b BoundingBox) Center() Point {
	return b.Min.Add(b.Max).Scale(0.5)
}

// The box as an unrotated Rectangle.
func (b BoundingBox) Rectangle() Rectangle {
	return Rectangle{
		Center:   b.Center(),
		HalfSize: Vector{b.Width() / 2, b.Height() / 2},
	}
}
