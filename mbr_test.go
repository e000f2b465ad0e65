package mbr

import (
	"bytes"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The algorithms are tested in the advanced package.

func TestComputeMBR(t *testing.T) {
	rect, err := ComputeMBR([]Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 1}})
	require.NoError(t, err)
	assert.InDelta(t, 1, rect.HalfSize.X, 1e-9)
	assert.InDelta(t, 0.5, rect.HalfSize.Y, 1e-9)
	assert.InDelta(t, 1, rect.Center.X, 1e-9)
	assert.InDelta(t, 0.5, rect.Center.Y, 1e-9)
	assert.InDelta(t, 0, rect.Rotation, 1e-9)
}

func TestComputeMBRCentered(t *testing.T) {
	rect, err := ComputeMBRCentered([]Point{{X: 0, Y: 0}, {X: 1, Y: -1}, {X: 2, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2/2, rect.HalfSize.X, 1e-9)
	assert.InDelta(t, math.Sqrt2/2, rect.HalfSize.Y, 1e-9)
	assert.InDelta(t, 1, rect.Center.X, 1e-9)
	assert.InDelta(t, 0, rect.Center.Y, 1e-9)
	assert.InDelta(t, math.Pi/4, math.Abs(rect.Rotation), 1e-9)
}

func TestConvexHull(t *testing.T) {
	hull, err := ConvexHull([]Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 1, Y: 1}})
	require.NoError(t, err)
	assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}, hull)

	hull, err = ConvexHull([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}})
	require.NoError(t, err)
	assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 2, Y: 2}}, hull)

	_, err = ConvexHull(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestMinimumBoundingRectangle(t *testing.T) {
	extent, err := MinimumBoundingRectangle([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, extent.HalfSize.X, 1e-9)
	assert.InDelta(t, 0.5, extent.HalfSize.Y, 1e-9)
	assert.InDelta(t, 0, extent.Rotation, 1e-9)

	_, err = MinimumBoundingRectangle([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, ErrDegenerateHull)
}

func TestErrors(t *testing.T) {
	rect, err := ComputeMBR(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Equal(t, Rectangle{}, rect, "no partial result")

	rect, err = ComputeMBR([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, ErrDegenerateHull)
	assert.Equal(t, Rectangle{}, rect, "no partial result")

	_, err = ComputeMBRCentered([]Point{{X: 5, Y: 5}})
	assert.ErrorIs(t, err, ErrDegenerateHull)
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	SetLogger(&logger)
	defer SetLogger(nil)

	_, err := ConvexHull([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "built convex hull")
}
