package internal

import (
	"math"
	"sort"
)

// The face of smallest area that has the origin as a vertex. For a problem
// whose constraints are all ≤ with non-negative right-hand sides this is the
// feasible region. Nil when no face touches the origin.
func (a *Arrangement) BottomFace() *Polygon {
	return smallestFaceWith(a.Faces(), Origin)
}

func smallestFaceWith(faces []*Polygon, vertex Point) *Polygon {
	var best *Polygon
	bestArea := math.Inf(1)
	for _, face := range faces {
		if !face.HasVertex(vertex) {
			continue
		}
		area := face.Area()
		if area <= Epsilon {
			continue
		}
		if area < bestArea {
			best = face
			bestArea = area
		}
	}
	return best
}

// Highest vertex of the arrangement. Ties go to the smallest X, so the walk
// starts on the left edge of the quadrant.
func (a *Arrangement) highestPoint() (Point, bool) {
	if len(a.Points) == 0 {
		return Point{}, false
	}
	highest := a.Points[0]
	for _, p := range a.Points[1:] {
		if p.Y > highest.Y || (p.Y == highest.Y && p.X < highest.X) {
			highest = p
		}
	}
	return highest, true
}

// The face hanging below the highest vertex, found by sliding down from it
// along its steepest edge first. When minimizing with ≥ constraints this is
// the region above every line. Vertices outside the quadrant are filtered
// out. Falls back to the smallest face containing the highest vertex, and is
// nil when that vertex has no edges.
func (a *Arrangement) TopFace() *Polygon {
	highest, ok := a.highestPoint()
	if !ok {
		return nil
	}
	neighbors := append([]Point(nil), a.Graph[highest]...)
	if len(neighbors) == 0 {
		return nil
	}
	sort.SliceStable(neighbors, func(i, j int) bool {
		di := neighbors[i].Y - highest.Y
		dj := neighbors[j].Y - highest.Y
		if di != dj {
			return di < dj
		}
		return math.Abs(neighbors[i].X-highest.X) < math.Abs(neighbors[j].X-highest.X)
	})

	// Enumerate first, so that an inconsistent graph is reported before we
	// start sliding.
	faces := a.Faces()

	for _, n := range neighbors {
		face := a.WalkFace(highest, n)
		if face == nil || !face.HasVertex(highest) || face.Area() <= Epsilon {
			continue
		}
		quadrant := face.QuadrantOnly()
		return &quadrant
	}

	return smallestFaceWith(faces, highest)
}

// Complement of the bottom region inside the [0, xMax]×[0, yMax] box: the top
// corners, the bottom region traversed backwards without the origin, then the
// bottom right corner.
func UpperPolygon(bottom []Point, xMax, yMax float64) []Point {
	result := []Point{{xMax, yMax}, {0, yMax}}
	for i := len(bottom) - 1; i >= 0; i-- {
		if bottom[i] == Origin {
			continue
		}
		result = append(result, bottom[i])
	}
	return append(result, Point{xMax, 0})
}

// Arrangement of the lines together with the sides of the [0, xMax]×[0, yMax]
// box. The input slice is not modified.
func BoundedArrangement(lines []Line, xMax, yMax float64) *Arrangement {
	full := make([]Line, 0, len(lines)+4)
	full = append(full, lines...)
	full = append(full, VerticalLine(xMax), HorizontalLine(yMax), YAxis, XAxis)
	return NewArrangement(full)
}

// Turn a set of ≤ constraints into the two polygons needed to shade a
// problem inside the [0, xMax]×[0, yMax] box.
//
// When maximizing, the result is [feasible, upper], the feasible region and
// its complement in the box. When minimizing, it is [top, bottom]: the hull
// of the region above every constraint and the region below them. The
// asymmetry matches what each sense needs to shade.
//
// The input slice is not modified. A missing bottom face yields empty
// polygons rather than an error; callers treat that as an empty feasible
// region.
func PolygonsFromLines(lines []Line, xMax, yMax float64, minimize bool) []Polygon {
	arrangement := BoundedArrangement(lines, xMax, yMax)

	var bottom []Point
	if face := arrangement.BottomFace(); face != nil {
		bottom = ConvexHull(face.Points)
	} else {
		Logger().Debug("no face touches the origin", "lines", len(lines))
	}

	if !minimize {
		var upper []Point
		if len(bottom) > 0 {
			upper = UpperPolygon(bottom, xMax, yMax)
		}
		return []Polygon{{Points: bottom}, {Points: upper}}
	}

	var top []Point
	if face := arrangement.TopFace(); face != nil {
		top = ConvexHull(face.Points)
	}
	return []Polygon{{Points: top}, {Points: bottom}}
}

// Shading polygon for a single constraint.
//
// With minimizing set, this is the region under the line (the part a ≥
// constraint excludes): the hull of the line's intercepts with the lower
// axes. Axis-parallel lines are extended to the far bound so the region is a
// rectangle.
//
// Otherwise it is the region above the line inside the bounds, excluding the
// origin. The result is empty when nothing qualifies.
//
// Only the maximizing shape is clipped to the far bounds. The minimizing
// triangle reaches the line's intercepts even when they lie past them.
func LinePolygon(line Line, bounds Bounds, minimizing bool) []Point {
	axes := []Line{VerticalLine(bounds.XMin), HorizontalLine(bounds.YMin)}
	hasFarBounds := bounds.XMax != 0 && bounds.YMax != 0

	var lines, additionals []Line
	if minimizing {
		lines = []Line{axes[0], line, axes[1]}
		if hasFarBounds {
			additionals = []Line{HorizontalLine(bounds.YMax), VerticalLine(bounds.XMax)}
		}
	} else {
		additionals = []Line{HorizontalLine(bounds.YMax), VerticalLine(bounds.XMax)}
		lines = []Line{axes[0], line, axes[1], additionals[0], additionals[1]}
	}

	intersections := boundedIntersections(lines, axes, additionals)

	if minimizing {
		return ConvexHull(intersections)
	}

	var above []Point
	for _, p := range intersections {
		if hasFarBounds && !bounds.Contains(p) {
			continue
		}
		if p != Origin && Above(line, p) {
			above = append(above, p)
		}
	}
	return ConvexHull(above)
}

func isAxis(line Line, axes []Line) bool {
	for _, axis := range axes {
		if axis == line {
			return true
		}
	}
	return false
}

// Pairwise quadrant intersections of the lines. Horizontal and vertical lines
// (other than the axes themselves) are also cut by the matching far bound, and
// that bound's corner on the near axis is added, so axis-parallel shading
// reaches the edge of the box.
func boundedIntersections(lines, axes, additionals []Line) []Point {
	var intersections []Point
	visited := make(map[Line]struct{})
	for i, l1 := range lines {
		for _, l2 := range lines {
			if l1 == l2 {
				continue
			}
			if _, ok := visited[l2]; ok {
				continue
			}
			p, ok := Intersect(l1, l2)
			if !ok || !p.InQuadrant() {
				continue
			}
			intersections = append(intersections, p)
		}

		if i > 0 && len(additionals) == 2 && (l1.A == 0 || l1.B == 0) && !isAxis(l1, axes) {
			// Horizontal lines run to the far vertical bound, vertical ones to
			// the far horizontal bound.
			farBound, nearAxis := additionals[0], axes[0]
			if l1.A == 0 {
				farBound, nearAxis = additionals[1], axes[1]
			}
			if p, ok := Intersect(l1, farBound); ok {
				intersections = append(intersections, p)
				if corner, ok := Intersect(farBound, nearAxis); ok {
					intersections = append(intersections, corner)
				}
			}
		}
		visited[l1] = struct{}{}
	}
	return intersections
}
