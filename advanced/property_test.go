package advanced

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Randomized checks of the hull and rectangle invariants. The generator is
// seeded so failures reproduce.

func randomPointSets() map[string][]Point {
	rng := rand.New(rand.NewSource(42))
	sets := map[string][]Point{}

	uniform := func(n int, scale float64) []Point {
		points := make([]Point, n)
		for i := range points {
			points[i] = Point{(rng.Float64()*2 - 1) * scale, (rng.Float64()*2 - 1) * scale}
		}
		return points
	}
	sets["uniform small"] = uniform(5, 1)
	sets["uniform"] = uniform(200, 100)
	sets["uniform large coordinates"] = uniform(100, 1e6)

	// Integer grid, full of duplicates and collinear runs
	var grid []Point
	for i := 0; i < 150; i++ {
		grid = append(grid, Point{float64(rng.Intn(7)), float64(rng.Intn(5))})
	}
	grid = append(grid, Point{0, 0}, Point{6, 4})
	sets["integer grid"] = grid

	// Points on a rotated ellipse
	var ellipse []Point
	for i := 0; i < 64; i++ {
		angle := 2 * math.Pi * float64(i) / 64
		p := Point{3 * math.Cos(angle), math.Sin(angle)}
		ellipse = append(ellipse, rotatePoint(p, 0.3).Add(Vector{10, -4}))
	}
	sets["ellipse"] = ellipse

	// A rotated rectangle with points scattered inside it
	rectangle := []Point{{-4, -1}, {4, -1}, {4, 1}, {-4, 1}}
	for i := 0; i < 40; i++ {
		rectangle = append(rectangle, Point{(rng.Float64()*2 - 1) * 3.6, (rng.Float64()*2 - 1) * 0.9})
	}
	for i := range rectangle {
		rectangle[i] = rotatePoint(rectangle[i], 1.1).Add(Vector{-2, 7})
	}
	sets["rotated rectangle"] = rectangle

	return sets
}

func TestHullProperties(t *testing.T) {
	for name, points := range randomPointSets() {
		points := points
		t.Run(name, func(t *testing.T) {
			hull := BuildConvexHull(points)
			require.GreaterOrEqual(t, len(hull), 3, pretty.Sprint(points))

			assert.True(t, IsConvexCCW(hull), "hull is not strictly convex: %# v", pretty.Formatter(hull))

			inputSet := make(map[Point]struct{}, len(points))
			for _, p := range points {
				inputSet[p] = struct{}{}
			}
			hullSet := make(map[Point]struct{}, len(hull))
			for _, v := range hull {
				_, ok := inputSet[v]
				assert.True(t, ok, "hull vertex %v is not an input point", v)
				_, dup := hullSet[v]
				assert.False(t, dup, "hull vertex %v repeated", v)
				hullSet[v] = struct{}{}
			}

			scale := BoundingBoxOf(points).Width() + BoundingBoxOf(points).Height()
			for _, p := range points {
				assert.True(t, ContainsPoint(hull, p, Epsilon*scale), "%v outside the hull", p)
			}
		})
	}
}

func TestRectangleProperties(t *testing.T) {
	for name, points := range randomPointSets() {
		points := points
		t.Run(name, func(t *testing.T) {
			hull := BuildConvexHull(points)
			box := BoundingBoxOf(points)
			tolerance := Epsilon * (box.Width() + box.Height())

			calipers := SolveCalipers(hull)
			centered := ComputeMBRCentered(points)
			for _, p := range points {
				assert.True(t, centered.Contains(p, tolerance), "%v outside %# v", p, pretty.Formatter(centered))
			}

			assert.GreaterOrEqual(t, centered.HalfSize.X, 0.0)
			assert.GreaterOrEqual(t, centered.HalfSize.Y, 0.0)
			assert.Greater(t, centered.Rotation, -math.Pi)
			assert.LessOrEqual(t, centered.Rotation, math.Pi)

			// No worse than the axis-aligned box
			assert.LessOrEqual(t, centered.Area(), box.Area()*(1+Epsilon))

			// Exactly the best of the edge-aligned candidates
			best := math.Inf(1)
			for i, p := range hull {
				edge := hull[CircularIndex(i+1, len(hull))].Sub(p)
				axis := edge.Normalize()
				minU, maxU := MinMaxProjection(hull, axis)
				minV, maxV := MinMaxProjection(hull, axis.Perpendicular())
				best = math.Min(best, math.Abs(maxU-minU)*math.Abs(maxV-minV))
			}
			assert.Equal(t, best, calipers.Area())
			assert.Equal(t, best, centered.Area())

			// The rectangle touches the hull on all four sides
			u, v := centered.Axes()
			for _, axis := range []Vector{u, v, u.Scale(-1), v.Scale(-1)} {
				extent := math.Abs(axis.Dot(u))*centered.HalfSize.X + math.Abs(axis.Dot(v))*centered.HalfSize.Y
				touching := false
				for _, p := range hull {
					if math.Abs(p.Sub(centered.Center).Dot(axis)-extent) <= tolerance {
						touching = true
					}
				}
				assert.True(t, touching, "no hull vertex on the side facing %v", axis)
			}
		})
	}
}

func TestComputeMBR_Idempotent(t *testing.T) {
	for name, points := range randomPointSets() {
		first := ComputeMBR(points)
		second := ComputeMBR(points)
		assert.Equal(t, first, second, name)
		assert.Equal(t, math.Float64bits(first.Rotation), math.Float64bits(second.Rotation), name)
	}
}

func TestComputeMBR_InputOrderIndependentHull(t *testing.T) {
	points := randomPointSets()["uniform"]
	shuffled := append([]Point{}, points...)
	rand.New(rand.NewSource(7)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	assert.Equal(t, BuildConvexHull(points), BuildConvexHull(shuffled))
}

func TestComputeMBR_RecoversRotatedRectangle(t *testing.T) {
	rect := ComputeMBRCentered(randomPointSets()["rotated rectangle"])
	// All four edges give the same area up to rounding, so any of them may
	// win. The extents and rotation agree up to a quarter turn.
	assert.InDelta(t, 4, math.Max(rect.HalfSize.X, rect.HalfSize.Y), 1e-6)
	assert.InDelta(t, 1, math.Min(rect.HalfSize.X, rect.HalfSize.Y), 1e-6)
	assert.InDelta(t, -2, rect.Center.X, 1e-6)
	assert.InDelta(t, 7, rect.Center.Y, 1e-6)
	assert.InDelta(t, 0, math.Sin(2*(rect.Rotation-1.1)), 1e-6)
}
