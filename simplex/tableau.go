package simplex

import (
	"fmt"
	"math/big"
)

// Position of an entry in a tableau. Row indexes the constraint rows (the
// objective row is never a pivot row) and Col the variable columns.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// A Tableau is the dictionary of a standard form problem at one point of the
// algorithm. Rows holds one row per constraint followed by the objective row
// (labelled Z), and every row carries one entry per column plus the right-hand
// side as its last entry.
//
// The objective row starts out as the objective coefficients and a zero
// right-hand side. After pivoting, its right-hand side is the negated
// objective value of the current basic solution.
type Tableau struct {
	// Decision variables X_1..X_n, then one slack e_i per constraint
	Columns []string
	// Label of the basic variable of each constraint row
	Basis []string
	Rows  [][]*big.Rat
	// Number of decision variables, i.e. the leading X_ columns
	Variables int
}

func variableLabel(i int) string { return fmt.Sprintf("X_%d", i+1) }
func slackLabel(i int) string    { return fmt.Sprintf("e_%d", i+1) }

// Initial tableau for maximizing objective·x subject to coefficients·x ≤ rhs,
// x ≥ 0. Slack columns form the identity and are the starting basis.
func newTableau(objective []*big.Rat, coefficients [][]*big.Rat, rhs []*big.Rat) *Tableau {
	n, m := len(objective), len(coefficients)
	t := &Tableau{
		Columns:   make([]string, 0, n+m),
		Basis:     make([]string, m),
		Rows:      make([][]*big.Rat, m+1),
		Variables: n,
	}
	for j := 0; j < n; j++ {
		t.Columns = append(t.Columns, variableLabel(j))
	}
	for i := 0; i < m; i++ {
		t.Columns = append(t.Columns, slackLabel(i))
	}

	width := n + m + 1
	for i, row := range coefficients {
		r := zeroRow(width)
		for j, v := range row {
			r[j].Set(v)
		}
		r[n+i].SetInt64(1)
		r[width-1].Set(rhs[i])
		t.Rows[i] = r
		t.Basis[i] = slackLabel(i)
	}

	footer := zeroRow(width)
	for j, v := range objective {
		footer[j].Set(v)
	}
	t.Rows[m] = footer
	return t
}

func zeroRow(width int) []*big.Rat {
	row := make([]*big.Rat, width)
	for j := range row {
		row[j] = new(big.Rat)
	}
	return row
}

// Deep copy. Steps in a History own their tableau; nothing is shared between
// them.
func (t *Tableau) Clone() *Tableau {
	c := &Tableau{
		Columns:   append([]string(nil), t.Columns...),
		Basis:     append([]string(nil), t.Basis...),
		Rows:      make([][]*big.Rat, len(t.Rows)),
		Variables: t.Variables,
	}
	for i, row := range t.Rows {
		c.Rows[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			c.Rows[i][j] = new(big.Rat).Set(v)
		}
	}
	return c
}

// Number of constraint rows
func (t *Tableau) Constraints() int {
	return len(t.Rows) - 1
}

func (t *Tableau) objectiveRow() []*big.Rat {
	return t.Rows[len(t.Rows)-1]
}

func (t *Tableau) rhs(row int) *big.Rat {
	r := t.Rows[row]
	return r[len(r)-1]
}

// Whether no variable column can still improve the objective
func (t *Tableau) Optimal() bool {
	_, ok := t.pivotColumn()
	return !ok
}

// Largest strictly positive objective row entry among the variable columns.
// Ties go to the leftmost column.
func (t *Tableau) pivotColumn() (int, bool) {
	footer := t.objectiveRow()
	col := -1
	for j := range t.Columns {
		if footer[j].Sign() <= 0 {
			continue
		}
		if col < 0 || footer[j].Cmp(footer[col]) > 0 {
			col = j
		}
	}
	return col, col >= 0
}

// Minimum ratio test on the column: among rows with a positive entry, the one
// with the smallest RHS/entry. Ties go to the topmost row.
func (t *Tableau) pivotRow(col int) (int, bool) {
	row := -1
	var best *big.Rat
	for i := 0; i < t.Constraints(); i++ {
		entry := t.Rows[i][col]
		if entry.Sign() <= 0 {
			continue
		}
		ratio := new(big.Rat).Quo(t.rhs(i), entry)
		if ratio.Sign() < 0 {
			continue
		}
		if row < 0 || ratio.Cmp(best) < 0 {
			row, best = i, ratio
		}
	}
	return row, row >= 0
}

// Apply one pivot and return the resulting tableau. The receiver is left
// untouched.
func (t *Tableau) pivot(c Cell) *Tableau {
	next := t.Clone()
	next.Basis[c.Row] = t.Columns[c.Col]

	p := t.Rows[c.Row][c.Col]
	pivotRow := next.Rows[c.Row]
	for j, v := range t.Rows[c.Row] {
		pivotRow[j] = new(big.Rat).Quo(v, p)
	}

	for i, row := range t.Rows {
		if i == c.Row {
			continue
		}
		factor := row[c.Col]
		if factor.Sign() == 0 {
			continue
		}
		for j := range row {
			delta := new(big.Rat).Mul(pivotRow[j], factor)
			next.Rows[i][j] = new(big.Rat).Sub(row[j], delta)
		}
	}
	return next
}

// Value of a variable in the current basic solution: its row's right-hand side
// when basic, zero otherwise. False for an unknown label.
func (t *Tableau) Value(label string) (*big.Rat, bool) {
	for i, basic := range t.Basis {
		if basic == label {
			return new(big.Rat).Set(t.rhs(i)), true
		}
	}
	for _, column := range t.Columns {
		if column == label {
			return new(big.Rat), true
		}
	}
	return nil, false
}

// Values of the decision variables X_1..X_n in the current basic solution
func (t *Tableau) Solution() []*big.Rat {
	values := make([]*big.Rat, t.Variables)
	for j := range values {
		values[j], _ = t.Value(t.Columns[j])
	}
	return values
}

// Objective value of the current basic solution
func (t *Tableau) ObjectiveValue() *big.Rat {
	return new(big.Rat).Neg(t.rhs(len(t.Rows) - 1))
}
