package advanced

import "math"

func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) Dot(other Vector) float64 {
	return p.X*other.X + p.Y*other.Y
}

// The z component of the 3D cross product. Positive when other is
// counterclockwise of p.
func (p Point) Cross(other Vector) float64 {
	return p.X*other.Y - p.Y*other.X
}

func (p Point) Add(other Vector) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Sub(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y}
}

func (p Point) Scale(scalar float64) Vector {
	return Vector{p.X * scalar, p.Y * scalar}
}

func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Unit vector in the same direction. A zero vector yields NaN components, so
// callers must check the length first.
func (p Point) Normalize() Vector {
	length := p.Length()
	return Vector{p.X / length, p.Y / length}
}

// Signed angle from the positive x axis, via atan2.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// The vector rotated a quarter turn counterclockwise.
func (p Point) Perpendicular() Vector {
	return Vector{-p.Y, p.X}
}
