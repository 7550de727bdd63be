package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/planarlp"
	"github.com/osuushi/planarlp/simplex"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end. Problems are YAML files (see planarlp.Problem); "-"
// reads from stdin.
var (
	app     = kingpin.New("planarlp", "Solve and shade two-variable linear programs.")
	verbose = app.Flag("verbose", "Log debug output to stderr.").Short('v').Envar("PLANARLP_VERBOSE").Bool()

	solveCmd  = app.Command("solve", "Analyze a problem and print every simplex tableau.")
	solveFile = solveCmd.Arg("file", "Problem file, or - for stdin.").Required().String()
	solveTeX  = solveCmd.Flag("latex", "Print tableaux as LaTeX rows.").Bool()

	regionsCmd    = app.Command("regions", "Print the regions of a problem, optionally drawing them.")
	regionsFile   = regionsCmd.Arg("file", "Problem file, or - for stdin.").Required().String()
	regionsPNG    = regionsCmd.Flag("png", "Save a debug drawing of the arrangement to this path.").String()
	regionsImgcat = regionsCmd.Flag("imgcat", "Print the debug drawing inline (iTerm only).").Bool()
	regionsScale  = regionsCmd.Flag("scale", "Pixels per unit in the debug drawing.").Default("10").Float64()

	plotCmd  = app.Command("plot", "Chart the constraints, regions and optimum.")
	plotFile = plotCmd.Arg("file", "Problem file, or - for stdin.").Required().String()
	plotOut  = plotCmd.Flag("out", "Output file. The extension picks the format.").Short('o').Required().String()
	plotSize = plotCmd.Flag("size", "Width and height in inches.").Default("6").Float64()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *verbose {
		planarlp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var err error
	switch command {
	case solveCmd.FullCommand():
		err = runSolve(*solveFile, *solveTeX)
	case regionsCmd.FullCommand():
		err = runRegions(*regionsFile)
	case plotCmd.FullCommand():
		err = runPlot(*plotFile)
	}
	app.FatalIfError(err, command)
}

func loadProblem(path string) (*planarlp.Problem, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening problem")
		}
		defer f.Close()
		r = f
	}
	p, err := planarlp.LoadProblem(r)
	return p, errors.Wrap(err, path)
}

func analyze(path string) (*planarlp.Problem, *planarlp.Report, error) {
	p, err := loadProblem(path)
	if err != nil {
		return nil, nil, err
	}
	r, err := planarlp.Analyze(p)
	if err != nil {
		return nil, nil, errors.Wrap(err, "analyzing problem")
	}
	return p, r, nil
}

func printProblem(p *planarlp.Problem) {
	title := p.Name
	if title == "" {
		title = "problem"
	}
	fmt.Println(aurora.Bold(title))
	fmt.Printf("  %s %s\n", p.Sense, p.ObjectiveFunction())
	for _, line := range p.Lines() {
		fmt.Printf("  %s\n", line.Format(p.Sense.Relation()))
	}
	fmt.Println()
}

func printEvaluation(r *planarlp.Report) {
	eval := r.Evaluation
	for i, v := range eval.Vertices {
		marker := " "
		value := fmt.Sprint(eval.Values[i])
		if i == eval.Optimum {
			marker = "*"
			value = aurora.Green(value).String()
		}
		fmt.Printf(" %s %-12s %s\n", marker, v, value)
	}

	active := make([]string, len(r.Active))
	for i, line := range r.Active {
		active[i] = line.String()
	}
	fmt.Printf("\nOptimum %s at %s\n", aurora.Bold(fmt.Sprint(eval.OptimalValue())), eval.OptimalPoint())
	fmt.Printf("Active: %s\n", strings.Join(active, ", "))
	if r.HasRanges {
		fmt.Printf("Coefficient ranges: %v ≤ cX ≤ %v, %v ≤ cY ≤ %v\n",
			r.XCoefficient.Min, r.XCoefficient.Max, r.YCoefficient.Min, r.YCoefficient.Max)
	}
}

func runSolve(path string, latex bool) error {
	p, r, err := analyze(path)
	if err != nil {
		return err
	}
	printProblem(p)
	printEvaluation(r)

	if p.Sense == planarlp.Minimize {
		return nil
	}
	fmt.Println()
	for i, step := range r.History {
		heading := fmt.Sprintf("Tableau %d", i)
		if step.Pivot != nil {
			heading += fmt.Sprintf(": %s enters, %s leaves",
				step.Tableau.Columns[step.Pivot.Col], step.Tableau.Basis[step.Pivot.Row])
		}
		fmt.Println(aurora.Cyan(heading))
		if latex {
			printLaTeX(step.Tableau)
		} else {
			fmt.Println(step.Tableau.Render(step.Pivot))
		}
		fmt.Println()
	}
	if r.SimplexErr != nil {
		fmt.Println(aurora.Red(r.SimplexErr.Error()))
		return nil
	}

	final := r.History.Final()
	solution := final.Solution()
	parts := make([]string, len(solution))
	for i, v := range solution {
		parts[i] = fmt.Sprintf("%s = %s", final.Columns[i], simplex.FormatRat(v))
	}
	fmt.Printf("Z = %s at %s (gonum: %v)\n",
		aurora.Bold(simplex.FormatRat(final.ObjectiveValue())), strings.Join(parts, ", "), r.CrossCheck)
	return nil
}

func printLaTeX(t *simplex.Tableau) {
	for _, row := range t.LaTeXGrid() {
		fmt.Println(strings.Join(row, " & ") + ` \\`)
	}
}

func runRegions(path string) error {
	p, r, err := analyze(path)
	if err != nil {
		return err
	}
	printProblem(p)
	fmt.Printf("Box [0, %v]×[0, %v]\n", r.XMax, r.YMax)
	names := []string{"feasible", "rest"}
	for i, region := range r.Regions {
		points := make([]string, len(region.Points))
		for j, point := range region.Points {
			points[j] = point.String()
		}
		fmt.Printf("  %-8s %s\n", names[i], strings.Join(points, " "))
	}

	if *regionsPNG == "" && !*regionsImgcat {
		return nil
	}
	c, err := planarlp.RenderRegions(p, r, *regionsScale)
	if err != nil {
		return err
	}
	path = *regionsPNG
	if !*regionsImgcat {
		return errors.Wrapf(c.SavePNG(path), "saving %s", path)
	}
	if path == "" {
		f, err := os.CreateTemp("", "planarlp-*.png")
		if err != nil {
			return errors.Wrap(err, "creating image file")
		}
		f.Close()
		defer os.Remove(f.Name())
		path = f.Name()
	}
	return planarlp.CatPNG(c, path)
}
