package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBottomFace(t *testing.T) {
	face := plantArrangement().BottomFace()
	require.NotNil(t, face)
	AssertSameCycle(t, LoadFixture("plant_feasible").Points, face.Points)
	assert.InDelta(t, 250, face.Area(), Epsilon)

	t.Run("no face at the origin", func(t *testing.T) {
		// Nothing passes through the origin, so it is not a vertex
		a := NewArrangement([]Line{{1, 1, 4}, {1, -1, 0}, {1, 0, 3}})
		assert.Nil(t, a.BottomFace())
	})
}

func TestTopFace(t *testing.T) {
	a := plantArrangement()
	highest, ok := a.highestPoint()
	require.True(t, ok)
	assert.Equal(t, Point{0, 40}, highest)

	face := a.TopFace()
	require.NotNil(t, face)
	assert.Equal(t, []Point{{0, 40}, {6, 28}, {34, 0}, {40, 0}, {40, 40}}, face.Points)

	t.Run("empty arrangement", func(t *testing.T) {
		assert.Nil(t, NewArrangement(nil).TopFace())
	})
}

func TestUpperPolygon(t *testing.T) {
	bottom := LoadFixture("plant_feasible").Points
	upper := UpperPolygon(bottom, plantBound, plantBound)
	assert.Equal(t, LoadFixture("plant_upper").Points, upper)

	// Together they cover the box
	feasible := Polygon{Points: bottom}
	assert.InDelta(t, plantBound*plantBound, feasible.Area()+Polygon{Points: upper}.Area(), 1e-6)
}

func TestPolygonsFromLines(t *testing.T) {
	lines := PlantLines()

	t.Run("maximize", func(t *testing.T) {
		polygons := PolygonsFromLines(lines, plantBound, plantBound, false)
		require.Len(t, polygons, 2)
		assert.Equal(t, LoadFixture("plant_feasible").Points, polygons[0].Points)
		assert.Equal(t, LoadFixture("plant_upper").Points, polygons[1].Points)
		AssertValidRegion(t, polygons[0], lines, false)
	})

	t.Run("minimize", func(t *testing.T) {
		polygons := PolygonsFromLines(lines, plantBound, plantBound, true)
		require.Len(t, polygons, 2)
		assert.Equal(t, LoadFixture("plant_top").Points, polygons[0].Points)
		assert.Equal(t, LoadFixture("plant_feasible").Points, polygons[1].Points)
		AssertValidRegion(t, polygons[0], lines, true)
	})

	t.Run("input is not modified", func(t *testing.T) {
		input := PlantLines()
		PolygonsFromLines(input[:2], plantBound, plantBound, false)
		assert.Equal(t, PlantLines(), input)
	})

	t.Run("single constraint", func(t *testing.T) {
		polygons := PolygonsFromLines([]Line{{1, 1, 5}}, 10, 10, false)
		assert.Equal(t, []Point{{0, 0}, {5, 0}, {0, 5}}, polygons[0].Points)
		AssertValidRegion(t, polygons[0], []Line{{1, 1, 5}}, false)
	})

	t.Run("regions stay inside the quadrant", func(t *testing.T) {
		skewed := []Line{{1, -1, 5}, {-1, 1, 2}, {1, 2, 20}}
		for _, minimize := range []bool{false, true} {
			for _, polygon := range PolygonsFromLines(skewed, 20, 20, minimize) {
				for _, p := range polygon.Points {
					assert.True(t, p.InQuadrant(), "%v", p)
				}
			}
		}
	})
}

func TestLinePolygon(t *testing.T) {
	bounds := Bounds{XMax: plantBound, YMax: plantBound}

	t.Run("minimizing a slanted line", func(t *testing.T) {
		assert.Equal(t, []Point{{0, 0}, {34, 0}, {0, 34}}, LinePolygon(Line{1, 1, 34}, bounds, true))
	})

	t.Run("minimizing a horizontal line", func(t *testing.T) {
		assert.Equal(t, []Point{{0, 0}, {40, 0}, {40, 10}, {0, 10}}, LinePolygon(HorizontalLine(10), bounds, true))
	})

	t.Run("minimizing a vertical line", func(t *testing.T) {
		assert.Equal(t, []Point{{0, 0}, {10, 0}, {10, 40}, {0, 40}}, LinePolygon(VerticalLine(10), bounds, true))
	})

	t.Run("maximizing", func(t *testing.T) {
		assert.Equal(t,
			[]Point{{34, 0}, {40, 0}, {40, 40}, {0, 40}, {0, 34}},
			LinePolygon(Line{1, 1, 34}, bounds, false),
		)
	})

	t.Run("maximizing stays inside the bounds", func(t *testing.T) {
		assert.Equal(t,
			[]Point{{40, 5}, {40, 40}, {0, 40}, {0, 25}},
			LinePolygon(Line{1, 2, 50}, bounds, false),
		)
		assert.Equal(t,
			[]Point{{25, 0}, {40, 0}, {40, 40}, {5, 40}},
			LinePolygon(Line{2, 1, 50}, bounds, false),
		)
	})

	t.Run("nothing qualifies", func(t *testing.T) {
		assert.Empty(t, LinePolygon(Line{-1, -1, 1}, bounds, false))
	})
}
