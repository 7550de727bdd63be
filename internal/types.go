package internal

// Points are plain values. Everything that is used as a graph key has been
// passed through Snap first, so exact comparison is safe for those.
type Point struct {
	X float64
	Y float64
}

// A Line is the boundary A·X + B·Y = C of the half-plane A·X + B·Y ≤ C. Two
// lines are the same line only when all three coefficients are equal; scaled
// copies are distinct.
type Line struct {
	A, B, C float64
}

type Polygon struct {
	Points []Point
}

// Directed edge of the planar graph
type Edge struct {
	From, To Point
}

// Axis-aligned region that shading is clipped to
type Bounds struct {
	XMin, YMin, XMax, YMax float64
}

type PointStack []Point

type PointSet map[Point]struct{}

var (
	Origin = Point{0, 0}

	// The two quadrant axes as lines
	YAxis = Line{A: 1, B: 0, C: 0} // X = 0
	XAxis = Line{A: 0, B: 1, C: 0} // Y = 0
)

// Vertical line X = x
func VerticalLine(x float64) Line {
	return Line{A: 1, B: 0, C: x}
}

// Horizontal line Y = y
func HorizontalLine(y float64) Line {
	return Line{A: 0, B: 1, C: y}
}
