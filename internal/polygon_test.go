package internal

import (
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/planarlp/dbg"
	"github.com/stretchr/testify/assert"
)

func TestContainsPointByEvenOdd(t *testing.T) {
	// L shape with the notch at the top right
	poly := Polygon{Points: []Point{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}}

	t.Run("inside", func(t *testing.T) {
		assert.True(t, poly.ContainsPointByEvenOdd(Point{1, 1}))
		assert.True(t, poly.ContainsPointByEvenOdd(Point{3, 1}))
		assert.True(t, poly.ContainsPointByEvenOdd(Point{1, 3}))
	})

	t.Run("outside", func(t *testing.T) {
		assert.False(t, poly.ContainsPointByEvenOdd(Point{3, 3}))
		assert.False(t, poly.ContainsPointByEvenOdd(Point{5, 1}))
		assert.False(t, poly.ContainsPointByEvenOdd(Point{-1, 1}))
	})

	t.Run("crossings", func(t *testing.T) {
		assert.Equal(t, 2, poly.CrossingCount(Point{-1, 1}))
		assert.Equal(t, 1, poly.CrossingCount(Point{1, 3}))
		assert.Equal(t, 0, poly.CrossingCount(Point{3, 3}))
	})

	t.Run("winding does not matter", func(t *testing.T) {
		assert.True(t, poly.Reverse().ContainsPointByEvenOdd(Point{1, 3}))
		assert.False(t, poly.Reverse().ContainsPointByEvenOdd(Point{3, 3}))
	})
}

func TestDbgName(t *testing.T) {
	ccw := &Polygon{Points: []Point{{0, 0}, {1, 0}, {0, 1}}}
	cw := &Polygon{Points: []Point{{0, 0}, {0, 1}, {1, 0}}}
	flat := &Polygon{Points: []Point{{0, 0}, {1, 0}}}

	assert.Equal(t, aurora.Green(dbg.Name(ccw)).String(), ccw.DbgName())
	assert.Equal(t, aurora.Cyan(dbg.Name(cw)).String(), cw.DbgName())
	assert.Equal(t, aurora.Red(dbg.Name(flat)).String(), flat.DbgName())
}
