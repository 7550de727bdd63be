package simplex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaTeXRat(t *testing.T) {
	for input, expected := range map[string]string{
		"12":     "12",
		"-3":     "-3",
		"1/2":    `\frac{1}{2}`,
		"-1/5":   `-\frac{1}{5}`,
		"10/4":   `\frac{5}{2}`,
		"0":      "0",
		"-24000": "-24000",
	} {
		assert.Equal(t, expected, LaTeXRat(rat(input)), input)
	}
}

func TestLaTeXGrid(t *testing.T) {
	history, err := Solve([]float64{1200, 500}, plantConstraints)
	require.NoError(t, err)
	grid := history.Final().LaTeXGrid()
	assert.Equal(t, []string{"", "X_{1}", "X_{2}", "e_{1}", "e_{2}", "e_{3}", ""}, grid[0])
	assert.Equal(t, []string{"X_{1}", "1", `\frac{1}{2}`, `\frac{1}{10}`, "0", "0", "20"}, grid[1])
	assert.Equal(t, "Z", grid[len(grid)-1][0])
}

func TestRender(t *testing.T) {
	history, err := Solve([]float64{1200, 500}, plantConstraints)
	require.NoError(t, err)

	for _, step := range history {
		out := step.Tableau.Render(step.Pivot)
		for _, label := range step.Tableau.Columns {
			assert.Contains(t, out, label)
		}
		for _, label := range step.Tableau.Basis {
			assert.Contains(t, out, label)
		}
		assert.Contains(t, out, "Z")
	}
	assert.True(t, strings.Contains(history.Final().String(), "-24000"))
}
