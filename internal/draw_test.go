package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraw(t *testing.T) {
	const scale = 5
	a := plantArrangement()
	regions := PolygonsFromLines(PlantLines(), plantBound, plantBound, false)
	c := a.Draw(regions, plantBound, plantBound, scale)
	assert.Equal(t, scale*plantBound+2*drawPadding, c.Width())
	assert.Equal(t, scale*plantBound+2*drawPadding, c.Height())

	// (5, 5) is inside the feasible region, which is shaded green. The y axis is
	// flipped.
	x := drawPadding + 5*scale
	y := c.Height() - (drawPadding + 5*scale)
	r, g, b, _ := c.Image().At(x, y).RGBA()
	assert.Greater(t, g, r)
	assert.Greater(t, g, b)
}
