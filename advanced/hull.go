package advanced

import (
	"math"
	"sort"
)

// Graham scan convex hull.
//
// The result is counterclockwise and starts at the pivot, which is the lowest
// point (ties broken by the smallest x). Interior points and points in the
// middle of a hull edge are excluded. Copies of the pivot collapse into one
// vertex, and other duplicates are popped like collinear points.
//
// Fewer than three distinct non-collinear points give a degenerate hull of one
// or two vertices. Callers that need a polygon must check the length. An empty
// input panics with ErrEmptyInput.
func BuildConvexHull(points []Point) []Point {
	if len(points) == 0 {
		fatalf(ErrEmptyInput, "cannot build a hull from zero points")
	}

	pivot := points[0]
	for _, p := range points[1:] {
		if p.Y < pivot.Y || (p.Y == pivot.Y && p.X < pivot.X) {
			pivot = p
		}
	}

	sorted := make([]Point, 0, len(points)-1)
	for _, p := range points {
		if !p.Equals(pivot) {
			sorted = append(sorted, p)
		}
	}
	sortByAngleAround(pivot, sorted)

	if len(sorted) == 0 {
		Logger().Debug().Int("points", len(points)).Msg("all points coincide with the pivot")
		return []Point{pivot}
	}

	stack := make(PointStack, 0, len(sorted)+1)
	stack.Push(pivot)
	stack.Push(sorted[0])

	for _, next := range sorted[1:] {
		// Drop the top while the turn second -> top -> next is clockwise or
		// straight. Popping on zero is what removes collinear points.
		for stack.Len() > 1 {
			top, _ := stack.Peek()
			second, _ := stack.PeekSecond()
			if top.Sub(second).Cross(next.Sub(top)) > 0 {
				break
			}
			stack.Pop()
		}
		stack.Push(next)
	}

	Logger().Debug().
		Int("points", len(points)).
		Int("vertices", stack.Len()).
		Msg("built convex hull")
	return []Point(stack)
}

// Sort points by polar angle around the pivot, nearest first on (nearly)
// equal angles. The farthest point on a ray comes last, so the nearer ones get
// popped during the scan.
func sortByAngleAround(pivot Point, points []Point) {
	type polar struct {
		point    Point
		angle    float64
		distance float64
	}
	keyed := make([]polar, len(points))
	for i, p := range points {
		offset := p.Sub(pivot)
		keyed[i] = polar{p, offset.Angle(), offset.Length()}
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		a, b := keyed[i], keyed[j]
		if math.Abs(a.angle-b.angle) < AngleEpsilon {
			return a.distance < b.distance
		}
		return a.angle < b.angle
	})

	for i, k := range keyed {
		points[i] = k.point
	}
}
