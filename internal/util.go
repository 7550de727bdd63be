package internal

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	// Threshold for determinants and face areas. Anything smaller is treated as
	// degenerate.
	Epsilon = 1e-9

	// Number of decimal digits kept on computed coordinates. Intersections are
	// snapped to this before they become graph keys, so the same vertex reached
	// from two different line pairs ends up as one key.
	SnapDigits = 9

	// Slack allowed on ≤ constraints when checking feasibility of a vertex for a
	// maximization. Intersections lying on an active constraint may overshoot by
	// floating point noise.
	FeasibilityTolerance = 10e-9
)

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Round a coordinate to SnapDigits decimal places. Negative zero comes out as
// zero, which matters because points are compared as map keys.
func Snap(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(SnapDigits).Float64()
	if f == 0 {
		return 0
	}
	return f
}

func SnapPoint(p Point) Point {
	return Point{Snap(p.X), Snap(p.Y)}
}

// Format a coordinate the short way: integral values print without a fraction
// part.
func FormatCoord(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (p Point) String() string {
	return "(" + FormatCoord(p.X) + ", " + FormatCoord(p.Y) + ")"
}

// Lexicographic order, X first. This is the order used when a point list is
// too small to have a hull.
func (p Point) Less(other Point) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

// True when both coordinates are non-negative, i.e. the point is in the first
// quadrant or on one of its axes.
func (p Point) InQuadrant() bool {
	return p.X >= 0 && p.Y >= 0
}

func DistSq(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

// Pop the top point. The second value is false when the stack was empty.
func (s *PointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

func (s *PointStack) Peek() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	return (*s)[len(*s)-1], true
}

// Second point from the top, used by the hull scan
func (s *PointStack) PeekSecond() (Point, bool) {
	if len(*s) < 2 {
		return Point{}, false
	}
	return (*s)[len(*s)-2], true
}

func (s *PointStack) Len() int {
	return len(*s)
}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}

func (set PointSet) Equals(other PointSet) bool {
	if len(set) != len(other) {
		return false
	}
	for p := range set {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

func NewPointSet(points ...Point) PointSet {
	set := make(PointSet, len(points))
	for _, p := range points {
		set.Add(p)
	}
	return set
}

// Inside or on the edge of the box, within Epsilon
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.XMin-Epsilon && p.X <= b.XMax+Epsilon &&
		p.Y >= b.YMin-Epsilon && p.Y <= b.YMax+Epsilon
}
