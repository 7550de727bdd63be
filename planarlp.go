// Small two-variable linear programs for Go.
//
// This package turns a set of constraints A·X + B·Y ≤ C over the first
// quadrant into the polygons needed to shade their feasible region, finds the
// optimum over the region's vertices, and solves the same problem with an
// exact tableau simplex whose every intermediate tableau is kept.
package planarlp

import (
	"github.com/osuushi/planarlp/internal"
	"github.com/osuushi/planarlp/simplex"
)

type Point = internal.Point
type Line = internal.Line
type Polygon = internal.Polygon
type Bounds = internal.Bounds
type Objective = internal.Objective
type Range = internal.Range
type Evaluation = internal.Evaluation

// Convex hull of the points, counterclockwise from the anchor. The anchor
// defaults to the lowest point (leftmost on ties). Fewer than three points, or
// points that are all colinear, come back sorted instead of as a hull.
func ConvexHull(points []Point, anchor ...Point) []Point {
	return internal.ConvexHull(points, anchor...)
}

// Take a set of ≤ constraints and build the two polygons that shade them
// inside the [0, xMax]×[0, yMax] box.
//
// When maximizing, the result is the feasible region followed by its
// complement in the box. When minimizing, it is the region above every line
// followed by the region below them. Either polygon may be empty when the
// constraints leave nothing to shade.
func PolygonsFromLines(lines []Line, xMax, yMax float64, minimize bool) (result []Polygon, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.PolygonsFromLines(lines, xMax, yMax, minimize), nil
}

// Shading polygon for a single constraint. See
// internal.LinePolygon for the shapes produced.
func LinePolygon(line Line, bounds Bounds, minimizing bool) []Point {
	return internal.LinePolygon(line, bounds, minimizing)
}

// Maximize objective·x subject to the constraints and x ≥ 0, keeping every
// tableau. See simplex.Solve.
func Solve(objective []float64, constraints []simplex.Constraint) (simplex.History, error) {
	return simplex.Solve(objective, constraints)
}

// Where the line crosses the [0, xMax]×[0, yMax] box, for drawing it.
func ClipToBox(line Line, xMax, yMax float64) []Point {
	return internal.ClipToBox(line, xMax, yMax)
}
