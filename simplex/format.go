package simplex

import (
	"math/big"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// "a/b", or just "a" for integers
func FormatRat(r *big.Rat) string {
	return r.RatString()
}

// LaTeX form of a fraction: integers as is, anything else as \frac{a}{b} with
// the sign pulled out in front.
func LaTeXRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	var b strings.Builder
	if r.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(`\frac{`)
	b.WriteString(new(big.Int).Abs(r.Num()).String())
	b.WriteString("}{")
	b.WriteString(r.Denom().String())
	b.WriteString("}")
	return b.String()
}

// Subscripts in braces, for LaTeX: X_1 becomes X_{1}
func latexLabel(label string) string {
	i := strings.IndexByte(label, '_')
	if i < 0 {
		return label
	}
	return label[:i+1] + "{" + label[i+1:] + "}"
}

func (t *Tableau) grid(cell func(*big.Rat) string, label func(string) string) [][]string {
	header := make([]string, 0, len(t.Columns)+2)
	header = append(header, "")
	for _, column := range t.Columns {
		header = append(header, label(column))
	}
	header = append(header, "")

	grid := [][]string{header}
	for i, row := range t.Rows {
		rowLabel := "Z"
		if i < len(t.Basis) {
			rowLabel = label(t.Basis[i])
		}
		line := make([]string, 0, len(row)+1)
		line = append(line, rowLabel)
		for _, v := range row {
			line = append(line, cell(v))
		}
		grid = append(grid, line)
	}
	return grid
}

// The tableau as rows of text: a header of column labels (blank in the corner
// and above the right-hand side), then one row per constraint labelled with
// its basic variable, then the Z row.
func (t *Tableau) Grid() [][]string {
	return t.grid(FormatRat, func(s string) string { return s })
}

// Same layout as Grid, with LaTeX labels and fractions.
func (t *Tableau) LaTeXGrid() [][]string {
	return t.grid(LaTeXRat, latexLabel)
}

var (
	pivotStyle     = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("9"))
	pivotLineStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("9"))
	headerStyle    = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
)

// Render the tableau as a bordered text table. When a pivot is given, its row
// and column are highlighted and the pivot entry itself stands out.
func (t *Tableau) Render(pivot *Cell) string {
	grid := t.Grid()
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if pivot == nil || col == 0 {
				return cellStyle
			}
			// Data rows line up with tableau rows; column 0 holds the labels
			switch {
			case row == pivot.Row && col-1 == pivot.Col:
				return pivotStyle
			case row == pivot.Row || col-1 == pivot.Col:
				return pivotLineStyle
			}
			return cellStyle
		}).
		Headers(grid[0]...).
		Rows(grid[1:]...).
		String()
}

func (t *Tableau) String() string {
	return t.Render(nil)
}
