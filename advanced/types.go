package advanced

// Points are plain values. Every operation in this package returns new
// slices and never writes to the caller's points, so results can be compared
// against the input with exact equality.
type Point struct {
	X float64
	Y float64
}

// A Vector is a free vector (the difference of two points, or a direction).
// It shares its representation with Point so the two can be used
// interchangeably.
type Vector = Point

// The oriented extent of a minimum bounding rectangle, without a position.
// HalfSize is measured along the rectangle's local axes, and Rotation is the
// angle of the local x axis relative to the global x axis, in (-π, π].
type Extent struct {
	HalfSize Vector
	Rotation float64
}

// A rotated rectangle.
type Rectangle struct {
	Center   Point
	HalfSize Vector
	Rotation float64
}

// Axis-aligned bounding box.
type BoundingBox struct {
	Min Point
	Max Point
}

type PointStack []Point
