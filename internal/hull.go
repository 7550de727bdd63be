package internal

import (
	"math"
	"sort"
)

type Orientation int

// The numeric values are part of the contract; callers compare against them.
const (
	Colinear Orientation = iota
	Clockwise
	CounterClockwise
)

// Orientation of the turn p → q → r.
func Orient(p, q, r Point) Orientation {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val == 0:
		return Colinear
	case val > 0:
		return Clockwise
	default:
		return CounterClockwise
	}
}

// Graham scan. The hull is returned counterclockwise, starting at the anchor.
//
// The anchor defaults to the lowest point (lowest X on ties). With fewer than
// three input points, or fewer than three distinct angles from the anchor,
// the points are returned sorted lexicographically instead, so callers must be
// ready for 0, 1 or 2 point results.
//
// Only corners are returned. Regions in this package have extra vertices lying
// on their boundary lines, and those are dropped.
func ConvexHull(points []Point, anchor ...Point) []Point {
	if len(points) < 3 {
		return sortedPoints(points)
	}

	var p0 Point
	if len(anchor) > 0 {
		p0 = anchor[0]
	} else {
		p0 = points[0]
		for _, p := range points[1:] {
			if p.Y < p0.Y || (p.Y == p0.Y && p.X < p0.X) {
				p0 = p
			}
		}
	}

	remaining := make([]Point, 0, len(points))
	for _, p := range points {
		if p != p0 {
			remaining = append(remaining, p)
		}
	}

	type sortKey struct {
		angle, dist float64
	}
	keys := make(map[Point]sortKey, len(remaining))
	for _, p := range remaining {
		keys[p] = sortKey{math.Atan2(p.Y-p0.Y, p.X-p0.X), DistSq(p0, p)}
	}
	sort.SliceStable(remaining, func(i, j int) bool {
		a, b := keys[remaining[i]], keys[remaining[j]]
		if a.angle != b.angle {
			return a.angle < b.angle
		}
		return a.dist < b.dist
	})

	// Points sharing an angle from the anchor collapse to the farthest one.
	// Colinear points at different angles are left to the scan, which pops
	// them unless they are corners.
	unique := []Point{p0}
	for _, p := range remaining {
		if len(unique) > 1 {
			prev := unique[len(unique)-1]
			if sameDirection(p0, prev, p) {
				if DistSq(p0, p) > DistSq(p0, prev) {
					unique[len(unique)-1] = p
				}
				continue
			}
		}
		unique = append(unique, p)
	}

	if len(unique) < 3 {
		return sortedPoints(unique)
	}

	hull := make(PointStack, 0, len(unique))
	hull.Push(unique[0])
	hull.Push(unique[1])
	for _, p := range unique[2:] {
		for hull.Len() > 1 {
			top, _ := hull.Peek()
			below, _ := hull.PeekSecond()
			if Orient(below, top, p) == CounterClockwise {
				break
			}
			hull.Pop()
		}
		hull.Push(p)
	}
	return []Point(hull)
}

// Whether a and b lie on the same ray from the origin point o
func sameDirection(o, a, b Point) bool {
	dot := (a.X-o.X)*(b.X-o.X) + (a.Y-o.Y)*(b.Y-o.Y)
	return Orient(o, a, b) == Colinear && dot > 0
}

func sortedPoints(points []Point) []Point {
	result := make([]Point, len(points))
	copy(result, points)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Less(result[j])
	})
	return result
}
