package internal

import (
	"context"
	"log/slog"
	"math"
	"sort"
)

// Upper bound on the length of a single face walk. A consistent arrangement of
// a few dozen lines never gets near this; reaching it means the graph is
// broken. Tests lower it to force the failure.
var MaxWalkSteps = 10000

// Adjacency of the arrangement's 1-skeleton. Each neighbor list is sorted
// counterclockwise by angle around its vertex, which is what makes face
// walking well defined. Never modified after construction.
type PlanarGraph map[Point][]Point

// The planar subdivision induced by a set of lines, restricted to the first
// quadrant.
type Arrangement struct {
	Lines []Line
	// Every quadrant intersection, in discovery order. Vertices with a single
	// incident line pair still show up here even if they have no edges.
	Points []Point
	Graph  PlanarGraph
}

// Build the arrangement of the given lines. The lines are used as given; the
// caller adds axes or bounds if it wants them.
func NewArrangement(lines []Line) *Arrangement {
	segments, points := buildSegments(lines)
	graph := buildGraph(segments)
	edges := 0
	for _, neighbors := range graph {
		edges += len(neighbors)
	}
	Logger().Debug("arrangement built",
		"lines", len(lines),
		"vertices", len(graph),
		"edges", edges/2,
	)
	return &Arrangement{
		Lines:  lines,
		Points: points,
		Graph:  graph,
	}
}

// For each line, the quadrant intersections with every other line, in order
// along the line.
func buildSegments(lines []Line) ([][]Point, []Point) {
	segments := make([][]Point, 0, len(lines))
	seen := make(PointSet)
	var all []Point
	for i, line := range lines {
		var points []Point
		for j, other := range lines {
			if i == j {
				continue
			}
			p, ok := Intersect(line, other)
			if !ok || !p.InQuadrant() {
				continue
			}
			points = append(points, p)
			if !seen.Contains(p) {
				seen.Add(p)
				all = append(all, p)
			}
		}
		points = uniquePoints(points)
		sortAlongLine(line, points)
		segments = append(segments, points)
	}
	return segments, all
}

// Drop points within snapping distance of an earlier one
func uniquePoints(points []Point) []Point {
	limit := math.Pow(10, -SnapDigits)
	var unique []Point
	for _, p := range points {
		duplicate := false
		for _, q := range unique {
			if math.Hypot(p.X-q.X, p.Y-q.Y) < limit {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, p)
		}
	}
	return unique
}

// Sort points by their projection on the line's direction vector (B, -A)
func sortAlongLine(line Line, points []Point) {
	dx, dy := line.B, -line.A
	if math.Abs(dx) < Epsilon && math.Abs(dy) < Epsilon {
		sort.SliceStable(points, func(i, j int) bool {
			return points[i].Less(points[j])
		})
		return
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].X*dx+points[i].Y*dy < points[j].X*dx+points[j].Y*dy
	})
}

// Consecutive points on a line are joined by an edge. Neighbor lists come out
// sorted counterclockwise.
func buildGraph(segments [][]Point) PlanarGraph {
	adjacency := make(map[Point]PointSet)
	add := func(a, b Point) {
		if adjacency[a] == nil {
			adjacency[a] = make(PointSet)
		}
		adjacency[a].Add(b)
	}
	for _, points := range segments {
		for i := 0; i+1 < len(points); i++ {
			a, b := points[i], points[i+1]
			if a == b {
				continue
			}
			add(a, b)
			add(b, a)
		}
	}

	graph := make(PlanarGraph, len(adjacency))
	for v, set := range adjacency {
		neighbors := make([]Point, 0, len(set))
		for u := range set {
			neighbors = append(neighbors, u)
		}
		sortCCW(v, neighbors)
		graph[v] = neighbors
	}
	return graph
}

func sortCCW(center Point, points []Point) {
	sort.Slice(points, func(i, j int) bool {
		ai := math.Atan2(points[i].Y-center.Y, points[i].X-center.X)
		aj := math.Atan2(points[j].Y-center.Y, points[j].X-center.X)
		if ai != aj {
			return ai < aj
		}
		return DistSq(center, points[i]) < DistSq(center, points[j])
	})
}

func (g PlanarGraph) Neighbors(v Point) []Point {
	return g[v]
}

// Vertices in lexicographic order, so that traversals are deterministic.
func (g PlanarGraph) Vertices() []Point {
	vertices := make([]Point, 0, len(g))
	for v := range g {
		vertices = append(vertices, v)
	}
	sort.Slice(vertices, func(i, j int) bool {
		return vertices[i].Less(vertices[j])
	})
	return vertices
}

// Index of p in the list, or -1
func indexOf(points []Point, p Point) int {
	for i, q := range points {
		if q == p {
			return i
		}
	}
	return -1
}

// The edge that follows u→v on the face to its left: at v, take the neighbor
// that comes just before u in counterclockwise order. The second value is
// false when u is not a neighbor of v, which only happens if the graph is
// inconsistent.
func (g PlanarGraph) nextEdge(e Edge) (Edge, bool) {
	neighbors := g[e.To]
	idx := indexOf(neighbors, e.From)
	if idx < 0 {
		return Edge{}, false
	}
	w := neighbors[CircularIndex(idx-1, len(neighbors))]
	return Edge{e.To, w}, true
}

// Walk the face to the left of the directed edge u→v, returning its vertices
// in walk order. Returns nil if the walk cannot continue (u missing from v's
// neighbors). Exceeding MaxWalkSteps panics with an ArrangementError.
//
// The visited map, if given, is updated with every directed edge traversed.
func (g PlanarGraph) walkFace(start Edge, visited map[Edge]bool) *Polygon {
	face := &Polygon{}
	e := start
	for steps := 1; ; steps++ {
		if steps > MaxWalkSteps {
			fatalf("face walk from %v to %v did not close after %d steps", start.From, start.To, MaxWalkSteps)
		}
		if visited != nil {
			visited[e] = true
		}
		face.Points = append(face.Points, e.From)
		next, ok := g.nextEdge(e)
		if !ok {
			Logger().Warn("face walk aborted",
				"from", e.From.String(),
				"to", e.To.String(),
				"partial", face,
			)
			return nil
		}
		e = next
		if e == start {
			return face
		}
	}
}

// Walk the face on the left of u→v.
func (a *Arrangement) WalkFace(u, v Point) *Polygon {
	return a.Graph.walkFace(Edge{u, v}, nil)
}

// Every face of the arrangement, found by walking each directed edge exactly
// once. Walks with fewer than three vertices or no area are dropped. The
// unbounded outer face is included; it is the only one that winds clockwise.
func (a *Arrangement) Faces() []*Polygon {
	visited := make(map[Edge]bool)
	var faces []*Polygon
	for _, u := range a.Graph.Vertices() {
		for _, v := range a.Graph[u] {
			start := Edge{u, v}
			if visited[start] {
				continue
			}
			face := a.Graph.walkFace(start, visited)
			if face == nil {
				continue
			}
			if len(face.Points) < 3 || face.Area() <= Epsilon {
				if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
					l.Debug("discarding degenerate face", "face", face.DbgName(), "vertices", len(face.Points))
				}
				continue
			}
			faces = append(faces, face)
		}
	}
	return faces
}
