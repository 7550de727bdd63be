package simplex

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// CrossCheck solves the same problem as Solve with gonum's floating point
// simplex, and returns the optimal objective value and the decision variables.
// It exists to validate exact results against an independent implementation.
func CrossCheck(objective []float64, constraints []Constraint) (float64, []float64, error) {
	n, m := len(objective), len(constraints)
	if n == 0 || m == 0 {
		return 0, nil, errors.Wrapf(ErrDimension, "%d variables, %d constraints", n, m)
	}

	// gonum minimizes c·x subject to Ax = b, x ≥ 0, so negate the objective and
	// add one slack column per constraint.
	c := make([]float64, n+m)
	for j, v := range objective {
		c[j] = -v
	}
	A := mat.NewDense(m, n+m, nil)
	b := make([]float64, m)
	for i, constraint := range constraints {
		if len(constraint.Coefficients) != n {
			return 0, nil, errors.Wrapf(ErrDimension, "constraint %d has %d coefficients, objective has %d",
				i+1, len(constraint.Coefficients), n)
		}
		for j, v := range constraint.Coefficients {
			A.Set(i, j, v)
		}
		A.Set(i, n+i, 1)
		b[i] = constraint.RHS
	}

	opt, x, err := lp.Simplex(c, A, b, 0, nil)
	if err != nil {
		return 0, nil, errors.Wrap(err, "gonum simplex")
	}
	return -opt, x[:n], nil
}
