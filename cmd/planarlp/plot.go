package main

import (
	"image/color"

	"github.com/osuushi/planarlp"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	feasibleColor = color.NRGBA{R: 0, G: 180, B: 80, A: 120}
	restColor     = color.NRGBA{R: 220, G: 40, B: 40, A: 60}
	lineColors    = []color.Color{
		color.NRGBA{R: 31, G: 119, B: 180, A: 255},
		color.NRGBA{R: 255, G: 127, B: 14, A: 255},
		color.NRGBA{R: 148, G: 103, B: 189, A: 255},
		color.NRGBA{R: 140, G: 86, B: 75, A: 255},
		color.NRGBA{R: 227, G: 119, B: 194, A: 255},
	}
)

func toXYs(points []planarlp.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = p.X
		xys[i].Y = p.Y
	}
	return xys
}

func runPlot(path string) error {
	p, r, err := analyze(path)
	if err != nil {
		return err
	}
	chart, err := buildPlot(p, r)
	if err != nil {
		return err
	}
	size := vg.Length(*plotSize) * vg.Inch
	return errors.Wrapf(chart.Save(size, size, *plotOut), "saving %s", *plotOut)
}

// Regions shaded underneath, one line per constraint clipped to the box, and
// the optimal vertex on top.
func buildPlot(p *planarlp.Problem, r *planarlp.Report) (*plot.Plot, error) {
	chart := plot.New()
	chart.Title.Text = p.Name
	if chart.Title.Text == "" {
		chart.Title.Text = p.Sense.String() + " " + p.ObjectiveFunction().String()
	}
	chart.X.Label.Text = "X"
	chart.Y.Label.Text = "Y"
	chart.X.Min, chart.X.Max = 0, r.XMax
	chart.Y.Min, chart.Y.Max = 0, r.YMax
	chart.Add(plotter.NewGrid())

	for i, region := range r.Regions {
		if len(region.Points) < 3 {
			continue
		}
		poly, err := plotter.NewPolygon(toXYs(region.Points))
		if err != nil {
			return nil, errors.Wrap(err, "region polygon")
		}
		poly.Color = restColor
		if i == 0 {
			poly.Color = feasibleColor
		}
		poly.LineStyle.Width = 0
		chart.Add(poly)
	}

	for i, line := range p.Lines() {
		ends := planarlp.ClipToBox(line, r.XMax, r.YMax)
		if len(ends) < 2 {
			continue
		}
		l, err := plotter.NewLine(toXYs(ends))
		if err != nil {
			return nil, errors.Wrap(err, "constraint line")
		}
		l.Color = lineColors[i%len(lineColors)]
		l.Width = vg.Points(1.5)
		chart.Add(l)
		chart.Legend.Add(line.Format(p.Sense.Relation()), l)
	}

	optimum, err := plotter.NewScatter(toXYs([]planarlp.Point{r.Evaluation.OptimalPoint()}))
	if err != nil {
		return nil, errors.Wrap(err, "optimum")
	}
	optimum.GlyphStyle.Shape = draw.CircleGlyph{}
	optimum.GlyphStyle.Radius = vg.Points(4)
	optimum.GlyphStyle.Color = color.Black
	chart.Add(optimum)
	chart.Legend.Add("optimum "+r.Evaluation.OptimalPoint().String(), optimum)
	chart.Legend.Top = true
	return chart, nil
}
