package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersect(t *testing.T) {
	lines := PlantLines()

	t.Run("constraint lines", func(t *testing.T) {
		p, ok := Intersect(lines[0], lines[1])
		require.True(t, ok)
		assert.Equal(t, Point{15, 10}, p)

		p, ok = Intersect(lines[0], lines[2])
		require.True(t, ok)
		assert.Equal(t, Point{6, 28}, p)
	})

	t.Run("axes", func(t *testing.T) {
		p, ok := Intersect(lines[2], YAxis)
		require.True(t, ok)
		assert.Equal(t, Point{0, 34}, p)

		p, ok = Intersect(XAxis, YAxis)
		require.True(t, ok)
		assert.Equal(t, Origin, p)
	})

	t.Run("parallel and coincident", func(t *testing.T) {
		_, ok := Intersect(Line{1, 1, 34}, Line{2, 2, 10})
		assert.False(t, ok)
		_, ok = Intersect(lines[0], lines[0])
		assert.False(t, ok)
		_, ok = Intersect(VerticalLine(3), YAxis)
		assert.False(t, ok)
	})

	t.Run("result lies on both lines", func(t *testing.T) {
		for i, l1 := range lines {
			for j, l2 := range lines {
				if i == j {
					continue
				}
				p, ok := Intersect(l1, l2)
				require.True(t, ok)
				assert.True(t, l1.Contains(p))
				assert.True(t, l2.Contains(p))
			}
		}
	})

	t.Run("snapped", func(t *testing.T) {
		p, ok := Intersect(Line{1, 3, 1}, YAxis)
		require.True(t, ok)
		assert.Equal(t, Point{0, 0.333333333}, p)
		assert.False(t, math.Signbit(p.X), "negative zero leaked out")
	})
}

func TestAbove(t *testing.T) {
	line := Line{1, 1, 34}
	assert.True(t, Above(line, Point{34, 0}))
	assert.True(t, Above(line, Point{40, 40}))
	assert.False(t, Above(line, Point{0, 0}))

	assert.True(t, Above(VerticalLine(5), Point{5, -100}))
	assert.False(t, Above(VerticalLine(5), Point{4, 100}))
	assert.True(t, Above(HorizontalLine(5), Point{-100, 6}))
	assert.False(t, Above(HorizontalLine(5), Point{100, 4}))

	assert.True(t, Above(Line{0, 0, -1}, Point{3, 3}))
	assert.False(t, Above(Line{0, 0, 1}, Point{3, 3}))
}

func TestSatisfiesAll(t *testing.T) {
	lines := PlantLines()

	t.Run("maximize", func(t *testing.T) {
		assert.True(t, SatisfiesAll(Point{15, 10}, lines, false))
		assert.True(t, SatisfiesAll(Origin, lines, false))
		assert.False(t, SatisfiesAll(Point{6, 28}, lines, false))
		// Overshoot within tolerance is accepted
		assert.True(t, SatisfiesAll(Point{20.0000000001, 0}, lines, false))
		assert.False(t, SatisfiesAll(Point{20.001, 0}, lines, false))
	})

	t.Run("minimize", func(t *testing.T) {
		assert.True(t, SatisfiesAll(Point{0, 40}, lines, true))
		assert.True(t, SatisfiesAll(Point{6, 28}, lines, true))
		assert.False(t, SatisfiesAll(Origin, lines, true))
		// No tolerance on this side
		assert.False(t, SatisfiesAll(Point{6, 27.9999999999}, lines, true))
	})
}

func TestQuadrantVertices(t *testing.T) {
	vertices := QuadrantVertices(PlantLines())
	assert.ElementsMatch(t, []Point{
		{0, 40}, {0, 20}, {0, 34}, {0, 0},
		{15, 10}, {6, 28}, {20, 0},
		{30, 0}, {34, 0},
	}, vertices)

	t.Run("every vertex reported once", func(t *testing.T) {
		// Three lines through (1, 1)
		vertices := QuadrantVertices([]Line{{1, -1, 0}, {1, 1, 2}, {1, 0, 1}})
		count := 0
		for _, v := range vertices {
			if v == (Point{1, 1}) {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("quadrant only", func(t *testing.T) {
		for _, v := range QuadrantVertices([]Line{{1, -1, 5}, {1, 2, -3}, {-1, 1, 2}}) {
			assert.True(t, v.InQuadrant(), "%v", v)
		}
	})
}

func TestActiveConstraints(t *testing.T) {
	lines := PlantLines()
	assert.Equal(t, []Line{lines[0], XAxis}, ActiveConstraints(lines, Point{20, 0}))
	assert.Equal(t, []Line{lines[0], lines[1]}, ActiveConstraints(lines, Point{15, 10}))
	assert.Equal(t, []Line{XAxis, YAxis}, ActiveConstraints(lines, Origin))
	assert.Empty(t, ActiveConstraints(lines, Point{1, 1}))
}

func TestClipToBox(t *testing.T) {
	assert.Equal(t, []Point{{0, 34}, {34, 0}}, ClipToBox(Line{1, 1, 34}, 40, 40))
	assert.Equal(t, []Point{{0, 40}, {20, 0}}, ClipToBox(Line{10, 5, 200}, 40, 40))
	assert.Equal(t, []Point{{0, 10}, {40, 10}}, ClipToBox(HorizontalLine(10), 40, 40))
	assert.Equal(t, []Point{{40, 40}}, ClipToBox(Line{1, 1, 80}, 40, 40))
	assert.Empty(t, ClipToBox(Line{1, 1, 100}, 40, 40))
}

func TestLineFormat(t *testing.T) {
	assert.Equal(t, "10X + 5Y ≤ 200", Line{10, 5, 200}.Format("≤"))
	assert.Equal(t, "X - Y = 0", Line{1, -1, 0}.String())
	assert.Equal(t, "-2Y ≥ 3.5", Line{0, -2, 3.5}.Format("≥"))
	assert.Equal(t, "0 = 1", Line{0, 0, 1}.String())
	assert.Equal(t, "1200X + 500Y", PlantObjective.String())
}
