package planarlp

import (
	"io"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/osuushi/planarlp/internal"
	"github.com/osuushi/planarlp/simplex"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidProblem = errors.New("invalid problem")

type Sense int

const (
	Maximize Sense = iota
	Minimize
)

func (s Sense) String() string {
	if s == Minimize {
		return "minimize"
	}
	return "maximize"
}

// Relation used by the constraints under this sense: ≤ when maximizing, ≥
// when minimizing.
func (s Sense) Relation() string {
	if s == Minimize {
		return "≥"
	}
	return "≤"
}

func (s *Sense) UnmarshalYAML(node *yaml.Node) error {
	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "max", "maximize":
		*s = Maximize
	case "min", "minimize":
		*s = Minimize
	default:
		return errors.Errorf("line %d: unknown sense %q", node.Line, value)
	}
	return nil
}

func (s Sense) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// Constraint A·X + B·Y (≤ or ≥) C, the relation depending on the problem's
// sense.
type ConstraintSpec struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
}

type BoundsSpec struct {
	XMax float64 `yaml:"x_max"`
	YMax float64 `yaml:"y_max"`
}

// A Problem as read from YAML:
//
//	name: plant
//	objective: [1200, 500]
//	sense: maximize
//	constraints:
//	  - {a: 10, b: 5, c: 200}
//	  - {a: 2, b: 3, c: 60}
//	bounds: {x_max: 40, y_max: 40}
//
// Bounds are optional and default to axis ranges that show every vertex.
type Problem struct {
	Name        string           `yaml:"name,omitempty"`
	Objective   []float64        `yaml:"objective"`
	Sense       Sense            `yaml:"sense"`
	Constraints []ConstraintSpec `yaml:"constraints"`
	Bounds      *BoundsSpec      `yaml:"bounds,omitempty"`
}

// Decode and validate a problem. Unknown fields are rejected.
func LoadProblem(r io.Reader) (*Problem, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var p Problem
	if err := decoder.Decode(&p); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(ErrInvalidProblem, "empty document")
		}
		return nil, errors.Wrap(err, "decoding problem")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (p *Problem) Validate() error {
	if len(p.Objective) != 2 {
		return errors.Wrapf(ErrInvalidProblem, "objective: want 2 coefficients, got %d", len(p.Objective))
	}
	if !finite(p.Objective...) {
		return errors.Wrap(ErrInvalidProblem, "objective: coefficients must be finite")
	}
	if len(p.Constraints) == 0 {
		return errors.Wrap(ErrInvalidProblem, "constraints: at least one is required")
	}
	for i, c := range p.Constraints {
		if !finite(c.A, c.B, c.C) {
			return errors.Wrapf(ErrInvalidProblem, "constraints[%d]: coefficients must be finite", i)
		}
		if c.A == 0 && c.B == 0 {
			return errors.Wrapf(ErrInvalidProblem, "constraints[%d]: a and b are both zero", i)
		}
		// Regions and the simplex both start from the origin
		if p.Sense == Maximize && c.C < 0 {
			return errors.Wrapf(ErrInvalidProblem, "constraints[%d]: negative c excludes the origin when maximizing", i)
		}
	}
	if p.Bounds != nil {
		if !finite(p.Bounds.XMax, p.Bounds.YMax) || p.Bounds.XMax <= 0 || p.Bounds.YMax <= 0 {
			return errors.Wrapf(ErrInvalidProblem, "bounds: must be positive, got %v×%v", p.Bounds.XMax, p.Bounds.YMax)
		}
	}
	return nil
}

func (p *Problem) Lines() []Line {
	lines := make([]Line, len(p.Constraints))
	for i, c := range p.Constraints {
		lines[i] = Line{A: c.A, B: c.B, C: c.C}
	}
	return lines
}

func (p *Problem) ObjectiveFunction() Objective {
	return Objective{X: p.Objective[0], Y: p.Objective[1]}
}

func (p *Problem) SimplexConstraints() []simplex.Constraint {
	constraints := make([]simplex.Constraint, len(p.Constraints))
	for i, c := range p.Constraints {
		constraints[i] = simplex.Constraint{Coefficients: []float64{c.A, c.B}, RHS: c.C}
	}
	return constraints
}

// Everything known about a problem after Analyze
type Report struct {
	// Box the regions are shaded in
	XMax, YMax float64
	// Axis extents and tick steps that show every vertex
	XAxis, YAxis Range

	// Feasible region first, then the region shading the rest of the box
	Regions []Polygon

	Evaluation Evaluation
	// Lines through the optimal vertex, axes included
	Active []Line
	// How far each objective coefficient can move before the optimum changes.
	// Only set when HasRanges is true.
	XCoefficient, YCoefficient Range
	HasRanges                  bool

	// Tableau history, for maximization problems whose origin is feasible
	History simplex.History
	// Why History is incomplete or missing, if it is
	SimplexErr error
	// Optimum according to gonum's float simplex, when History is complete
	CrossCheck float64
}

func (r *Report) Feasible() Polygon {
	return r.Regions[0]
}

// Analyze a problem: shade its regions, find its optimal vertex and the
// coefficient ranges that keep it optimal, and, when maximizing, replay it
// with the simplex method.
//
// Geometry failures and an empty feasible region are errors. Simplex failures
// are not; they are reported in SimplexErr, since the geometric answer stands
// on its own.
func Analyze(p *Problem) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	lines := p.Lines()
	objective := p.ObjectiveFunction()
	minimize := p.Sense == Minimize

	r := &Report{}
	r.XAxis, r.YAxis = internal.AxisRanges(lines)
	if p.Bounds != nil {
		r.XMax, r.YMax = p.Bounds.XMax, p.Bounds.YMax
	} else {
		r.XMax, r.YMax = r.XAxis.Max, r.YAxis.Max
	}

	var err error
	if r.Regions, err = PolygonsFromLines(lines, r.XMax, r.YMax, minimize); err != nil {
		return nil, errors.Wrap(err, "building regions")
	}
	if r.Evaluation, err = internal.EvaluateVertices(objective, lines, minimize); err != nil {
		return nil, err
	}
	r.Active = internal.ActiveConstraints(lines, r.Evaluation.OptimalPoint())
	r.XCoefficient, r.YCoefficient, r.HasRanges = internal.OptimalityRanges(r.Active, objective)

	if minimize {
		return r, nil
	}

	r.History, r.SimplexErr = Solve(p.Objective, p.SimplexConstraints())
	if r.SimplexErr != nil {
		Logger().Debug("simplex did not finish", "err", r.SimplexErr)
		return r, nil
	}
	exact, _ := r.History.Final().ObjectiveValue().Float64()
	r.CrossCheck, _, r.SimplexErr = simplex.CrossCheck(p.Objective, p.SimplexConstraints())
	if r.SimplexErr != nil {
		return r, nil
	}
	vertex := r.Evaluation.OptimalValue()
	tolerance := 1e-6 * math.Max(1, math.Abs(exact))
	if math.Abs(exact-vertex) > tolerance || math.Abs(exact-r.CrossCheck) > tolerance {
		Logger().Warn("optima disagree",
			"simplex", exact,
			"vertex", vertex,
			"gonum", r.CrossCheck,
		)
	}
	return r, nil
}

// Debug drawing of the problem's arrangement with its regions shaded, at
// scale pixels per unit.
func RenderRegions(p *Problem, r *Report, scale float64) (c *gg.Context, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			c = nil
			err = errors.Wrap(recoveredErr, "drawing arrangement")
		}
	}()
	a := internal.BoundedArrangement(p.Lines(), r.XMax, r.YMax)
	return a.Draw(r.Regions, r.XMax, r.YMax, scale), nil
}

// Save a debug drawing to path and print it inline in the terminal
func CatPNG(c *gg.Context, path string) error {
	return internal.CatPNG(c, path)
}
