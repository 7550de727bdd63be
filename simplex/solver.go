// Package simplex solves small linear programs in standard maximization form
// with the tableau method, in exact rational arithmetic, and keeps every
// intermediate tableau so the run can be replayed step by step.
package simplex

import (
	"math"
	"math/big"

	"github.com/osuushi/planarlp/internal"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Upper bound on the number of pivots of a single solve. Largest-coefficient
// pivoting can cycle on degenerate problems; this turns a cycle into an error.
const MaxPivots = 1000

var (
	ErrDimension       = errors.New("simplex: dimension mismatch")
	ErrNotFinite       = errors.New("simplex: coefficient is not finite")
	ErrInfeasibleStart = errors.New("simplex: negative right-hand side")
	ErrUnbounded       = errors.New("simplex: problem is unbounded")
	ErrPivotLimit      = errors.New("simplex: pivot limit reached")
)

// Constraint Coefficients·x ≤ RHS
type Constraint struct {
	Coefficients []float64
	RHS          float64
}

// One tableau of a run, with the pivot that was applied to it. The pivot is
// nil only on the final, optimal tableau.
type Step struct {
	Pivot   *Cell
	Tableau *Tableau
}

type History []Step

// Last tableau of the run, or nil for an empty history
func (h History) Final() *Tableau {
	if len(h) == 0 {
		return nil
	}
	return h[len(h)-1].Tableau
}

// Solve maximizes objective·x subject to the constraints and x ≥ 0.
//
// The history holds the initial tableau and every tableau after it, each with
// the pivot chosen on it, ending on an optimal tableau. When the problem turns
// out unbounded, or the pivot limit is reached, the history so far is returned
// along with ErrUnbounded or ErrPivotLimit.
func Solve(objective []float64, constraints []Constraint) (History, error) {
	t, err := initialTableau(objective, constraints)
	if err != nil {
		return nil, err
	}

	var history History
	for pivots := 0; ; pivots++ {
		col, ok := t.pivotColumn()
		if !ok {
			history = append(history, Step{Tableau: t})
			internal.Logger().Debug("simplex optimal",
				"pivots", pivots,
				"objective", FormatRat(t.ObjectiveValue()),
			)
			return history, nil
		}
		if pivots >= MaxPivots {
			return history, errors.Wrapf(ErrPivotLimit, "%d pivots", pivots)
		}
		row, ok := t.pivotRow(col)
		if !ok {
			return history, errors.Wrapf(ErrUnbounded, "column %s has no positive entry", t.Columns[col])
		}

		cell := Cell{Row: row, Col: col}
		internal.Logger().Debug("simplex pivot",
			"step", pivots,
			"entering", t.Columns[col],
			"leaving", t.Basis[row],
			"cell", cell.String(),
		)
		history = append(history, Step{Pivot: &cell, Tableau: t})
		t = t.pivot(cell)
	}
}

func initialTableau(objective []float64, constraints []Constraint) (*Tableau, error) {
	n := len(objective)
	if n == 0 {
		return nil, errors.Wrap(ErrDimension, "empty objective")
	}
	c, err := toRats(objective)
	if err != nil {
		return nil, errors.Wrap(err, "objective")
	}

	coefficients := make([][]*big.Rat, len(constraints))
	rhs := make([]*big.Rat, len(constraints))
	for i, constraint := range constraints {
		if len(constraint.Coefficients) != n {
			return nil, errors.Wrapf(ErrDimension, "constraint %d has %d coefficients, objective has %d",
				i+1, len(constraint.Coefficients), n)
		}
		if coefficients[i], err = toRats(constraint.Coefficients); err != nil {
			return nil, errors.Wrapf(err, "constraint %d", i+1)
		}
		r, err := toRats([]float64{constraint.RHS})
		if err != nil {
			return nil, errors.Wrapf(err, "constraint %d", i+1)
		}
		if r[0].Sign() < 0 {
			return nil, errors.Wrapf(ErrInfeasibleStart, "constraint %d has right-hand side %s", i+1, FormatRat(r[0]))
		}
		rhs[i] = r[0]
	}
	return newTableau(c, coefficients, rhs), nil
}

// Convert through the shortest decimal representation, so that 0.1 becomes
// 1/10 rather than the exact binary value of the float.
func toRats(values []float64) ([]*big.Rat, error) {
	rats := make([]*big.Rat, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(ErrNotFinite, "%v", v)
		}
		rats[i] = decimal.NewFromFloat(v).Rat()
	}
	return rats, nil
}
