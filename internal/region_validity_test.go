package internal

// This contains no actual tests. It is just a helper for checking that a
// region produced from a set of constraints is well formed.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Check that a region is a valid convex region of the constraints. The rules
// are:
// 1. The region is counterclockwise with non-zero area.
// 2. Every turn is strictly counterclockwise, so it is convex without
// redundant vertices.
// 3. Every vertex is in the first quadrant.
// 4. Every vertex satisfies all of the constraints.
// 5. The vertex average lies inside the region and satisfies the constraints.
func AssertValidRegion(t *testing.T, region Polygon, lines []Line, minimize bool) {
	t.Helper()
	require.GreaterOrEqual(t, len(region.Points), 3, "region has too few vertices: %v", region.Points)
	require.True(t, region.IsCCW(), "region is not counterclockwise: %v", region.Points)
	require.Greater(t, region.Area(), Epsilon, "region has no area")

	n := len(region.Points)
	for i, p := range region.Points {
		next := region.Points[CircularIndex(i+1, n)]
		nextNext := region.Points[CircularIndex(i+2, n)]
		assert.Equal(t, CounterClockwise, Orient(p, next, nextNext), "turn at %v is not counterclockwise", next)
		assert.True(t, p.InQuadrant(), "vertex %v is outside the quadrant", p)
		assert.True(t, SatisfiesAll(p, lines, minimize), "vertex %v violates a constraint", p)
	}

	cx, cy := centroid(region.Points)
	sample := Point{cx, cy}
	assert.True(t, region.ContainsPointByEvenOdd(sample), "sample %v is outside the region", sample)
	assert.True(t, SatisfiesAll(sample, lines, minimize), "sample %v violates a constraint", sample)
}

// Two polygons are the same cycle if one is a rotation of the other
func AssertSameCycle(t *testing.T, expected, actual []Point) {
	t.Helper()
	require.Len(t, actual, len(expected), "expected %v, got %v", expected, actual)
	if len(expected) == 0 {
		return
	}
	offset := indexOf(actual, expected[0])
	require.GreaterOrEqual(t, offset, 0, "expected %v, got %v", expected, actual)
	for i, p := range expected {
		assert.Equal(t, p, actual[CircularIndex(i+offset, len(actual))], "expected %v, got %v", expected, actual)
	}
}
