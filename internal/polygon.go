package internal

import (
	"log/slog"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/planarlp/dbg"
)

// Shoelace area. Counterclockwise polygons are positive, clockwise ones
// negative.
func (poly Polygon) SignedArea() float64 {
	var area float64
	n := len(poly.Points)
	for i, p := range poly.Points {
		next := poly.Points[CircularIndex(i+1, n)]
		area += p.X*next.Y - next.X*p.Y
	}
	return area / 2
}

func (poly Polygon) Area() float64 {
	a := poly.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

// Exact vertex membership. Faces share snapped keys, so this is how we ask
// "does this face touch the origin".
func (poly Polygon) HasVertex(p Point) bool {
	for _, q := range poly.Points {
		if q == p {
			return true
		}
	}
	return false
}

// Even-odd point-in-polygon. Output is not defined for points exactly on the
// boundary.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count of a ray cast from p towards +X
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	n := len(poly.Points)
	for i, vertex := range poly.Points {
		next := poly.Points[CircularIndex(i+1, n)]
		if (vertex.Y > p.Y) == (next.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(next.X-vertex.X)/(next.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// Whether p is inside or on the boundary, within tolerance. Only meaningful
// for convex CCW polygons such as hulls.
func (poly Polygon) ContainsConvex(p Point, tolerance float64) bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	for i, a := range poly.Points {
		b := poly.Points[CircularIndex(i+1, n)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross < -tolerance {
			return false
		}
	}
	return true
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Copy of the polygon keeping only the vertices in the first quadrant
func (poly Polygon) QuadrantOnly() Polygon {
	result := Polygon{}
	for _, p := range poly.Points {
		if p.InQuadrant() {
			result.Points = append(result.Points, p)
		}
	}
	return result
}

func (poly *Polygon) DbgName() string {
	name := dbg.Name(poly)
	switch {
	case Equal(poly.SignedArea(), 0):
		name = aurora.Red(name).String()
	case poly.IsCW(): // The unbounded face walks clockwise
		name = aurora.Cyan(name).String()
	default:
		name = aurora.Green(name).String()
	}
	return name
}

// Faces are logged by name and shape. Implementing LogValuer means names are
// only generated when a record is actually emitted.
func (poly *Polygon) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", dbg.Name(poly)),
		slog.Int("vertices", len(poly.Points)),
		slog.Float64("area", poly.SignedArea()),
	)
}
