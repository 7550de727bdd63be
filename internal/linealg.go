package internal

import "math"

// Intersection of two lines, snapped. The second value is false when the lines
// are parallel or coincident. That is "no unique intersection", not "same
// line"; use == on the lines for that.
func Intersect(l1, l2 Line) (Point, bool) {
	det := l1.A*l2.B - l2.A*l1.B
	if math.Abs(det) < Epsilon {
		return Point{}, false
	}
	x := (l1.C*l2.B - l2.C*l1.B) / det
	y := (l1.A*l2.C - l2.A*l1.C) / det
	return SnapPoint(Point{x, y}), true
}

// Does the point lie on the ≥ side of the line (boundary included)?
func Above(line Line, p Point) bool {
	switch {
	case line.A == 0 && line.B == 0:
		return 0 >= line.C
	case line.B == 0: // Vertical
		return line.A*p.X >= line.C
	case line.A == 0: // Horizontal
		return line.B*p.Y >= line.C
	}
	return line.A*p.X+line.B*p.Y >= line.C
}

// Value of A·x + B·y − C. Negative on the ≤ side.
func (line Line) Slack(p Point) float64 {
	return line.A*p.X + line.B*p.Y - line.C
}

// Whether the line passes through p, within tolerance
func (line Line) Contains(p Point) bool {
	return math.Abs(line.Slack(p)) < FeasibilityTolerance
}

// Check a point against every constraint. When minimizing, constraints are
// read as ≥ and any negative slack fails. When maximizing, they are read as ≤
// and a point may overshoot by FeasibilityTolerance. The asymmetry is
// intentional: vertices computed from active constraints carry float noise on
// the maximize side, where the vertices that matter sit.
func SatisfiesAll(p Point, lines []Line, minimize bool) bool {
	for _, line := range lines {
		slack := line.Slack(p)
		if minimize {
			if slack < 0 {
				return false
			}
		} else if slack > FeasibilityTolerance {
			return false
		}
	}
	return true
}

type linePair struct {
	a, b Line
}

// All pairwise intersections of the lines together with both axes that lie in
// the first quadrant. Every unordered pair of distinct lines is considered
// once, and each vertex is reported once, in discovery order.
func QuadrantVertices(lines []Line) []Point {
	all := make([]Line, 0, len(lines)+2)
	all = append(all, YAxis)
	all = append(all, lines...)
	all = append(all, XAxis)

	visited := make(map[linePair]struct{})
	seen := make(PointSet)
	var vertices []Point
	for _, l1 := range all {
		for _, l2 := range all {
			if l1 == l2 {
				continue
			}
			if _, ok := visited[linePair{l2, l1}]; ok {
				continue
			}
			visited[linePair{l1, l2}] = struct{}{}

			p, ok := Intersect(l1, l2)
			if !ok || !p.InQuadrant() || seen.Contains(p) {
				continue
			}
			seen.Add(p)
			vertices = append(vertices, p)
		}
	}
	return vertices
}

// Lines, among the given ones and the two axes, that pass through p
func ActiveConstraints(lines []Line, p Point) []Line {
	candidates := make([]Line, 0, len(lines)+2)
	candidates = append(candidates, lines...)
	candidates = append(candidates, XAxis, YAxis)

	var result []Line
	for _, line := range candidates {
		if !line.Contains(p) {
			continue
		}
		duplicate := false
		for _, other := range result {
			if other == line {
				duplicate = true
				break
			}
		}
		if !duplicate {
			result = append(result, line)
		}
	}
	return result
}

// Where the line crosses the [0, xMax]×[0, yMax] box, ordered
// lexicographically. Empty when it misses the box; a single point when it
// only touches a corner.
func ClipToBox(line Line, xMax, yMax float64) []Point {
	sides := []Line{YAxis, VerticalLine(xMax), XAxis, HorizontalLine(yMax)}
	seen := make(PointSet)
	var points []Point
	for _, side := range sides {
		p, ok := Intersect(line, side)
		if !ok || seen.Contains(p) {
			continue
		}
		if p.X < -Epsilon || p.Y < -Epsilon || p.X > xMax+Epsilon || p.Y > yMax+Epsilon {
			continue
		}
		seen.Add(p)
		points = append(points, p)
	}
	return sortedPoints(points)
}

func term(coefficient float64, name string, first bool) string {
	sign := ""
	switch {
	case coefficient < 0 && first:
		sign = "-"
	case coefficient < 0:
		sign = " - "
	case !first:
		sign = " + "
	}
	coefficient = math.Abs(coefficient)
	if coefficient == 1 {
		return sign + name
	}
	return sign + FormatCoord(coefficient) + name
}

func linearForm(x, y float64) string {
	form := ""
	if x != 0 {
		form = term(x, "X", true)
	}
	if y != 0 {
		form += term(y, "Y", form == "")
	}
	if form == "" {
		return "0"
	}
	return form
}

// Human readable form with the given relation, e.g. "10X + 5Y ≤ 200"
func (line Line) Format(relation string) string {
	return linearForm(line.A, line.B) + " " + relation + " " + FormatCoord(line.C)
}

func (line Line) String() string {
	return line.Format("=")
}
