package internal

import (
	"math"

	"github.com/pkg/errors"
)

var ErrNoFeasibleVertex = errors.New("no feasible vertex")

// Objective coefficients (cX, cY) of F(X, Y) = cX·X + cY·Y
type Objective struct {
	X, Y float64
}

func (o Objective) At(p Point) float64 {
	return o.X*p.X + o.Y*p.Y
}

func (o Objective) String() string {
	return linearForm(o.X, o.Y)
}

type Evaluation struct {
	// Feasible quadrant vertices, in discovery order
	Vertices []Point
	// Objective value at each vertex
	Values []float64
	// Index of the first vertex reaching the optimum
	Optimum int
}

func (e Evaluation) OptimalPoint() Point {
	return e.Vertices[e.Optimum]
}

func (e Evaluation) OptimalValue() float64 {
	return e.Values[e.Optimum]
}

// Brute force the optimum over the vertices of the feasible region. With
// minimize set the constraints are read as ≥ and the smallest value wins.
func EvaluateVertices(objective Objective, lines []Line, minimize bool) (Evaluation, error) {
	var eval Evaluation
	for _, p := range QuadrantVertices(lines) {
		if !SatisfiesAll(p, lines, minimize) {
			continue
		}
		eval.Vertices = append(eval.Vertices, p)
		eval.Values = append(eval.Values, objective.At(p))
	}
	if len(eval.Vertices) == 0 {
		return eval, errors.Wrapf(ErrNoFeasibleVertex, "%d constraints", len(lines))
	}
	for i, v := range eval.Values {
		best := eval.Values[eval.Optimum]
		if (minimize && v < best) || (!minimize && v > best) {
			eval.Optimum = i
		}
	}
	return eval, nil
}

type Range struct {
	Min, Max, Step float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Ranges over which each objective coefficient can move, with the other held
// fixed, before the optimum leaves the vertex where the active lines meet.
// Needs at least two active lines.
func OptimalityRanges(active []Line, objective Objective) (xRange, yRange Range, ok bool) {
	if len(active) < 2 {
		return Range{}, Range{}, false
	}
	xRange = Range{Min: math.Inf(1), Max: math.Inf(-1)}
	yRange = Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, line := range active {
		var xBound, yBound float64
		switch {
		case line.B == 0:
			xBound, yBound = 0, objective.Y*2
		case line.A == 0:
			xBound, yBound = objective.X*2, 0
		default:
			xBound = line.A * objective.Y / line.B
			yBound = line.B * objective.X / line.A
		}
		xRange.Min = math.Min(xRange.Min, xBound)
		xRange.Max = math.Max(xRange.Max, xBound)
		yRange.Min = math.Min(yRange.Min, yBound)
		yRange.Max = math.Max(yRange.Max, yBound)
	}
	return xRange, yRange, true
}

// Either axis is regrown once a vertex lies beyond this
const axisGrowThreshold = 10

var (
	DefaultXRange = Range{Min: 0, Max: 20, Step: 1}
	DefaultYRange = Range{Min: 0, Max: 10, Step: 1}
)

// Axis extents that show every quadrant vertex of the lines. Starts from
// DefaultXRange and DefaultYRange and grows them with some headroom.
func AxisRanges(lines []Line) (xRange, yRange Range) {
	xRange, yRange = DefaultXRange, DefaultYRange
	var maxX, maxY float64
	for _, p := range QuadrantVertices(lines) {
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if maxY > axisGrowThreshold {
		yRange = Range{Min: 0, Max: math.Ceil(maxY) + 1, Step: math.Ceil(maxY / 10)}
	}
	if maxX > axisGrowThreshold {
		xRange = Range{Min: 0, Max: math.Ceil(maxX) + 2, Step: math.Ceil(maxX / 20)}
	}
	return xRange, yRange
}
