package internal

import (
	"image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/planarlp/dbg"
	"github.com/pkg/errors"
)

// Padding around the drawing, in pixels
const drawPadding = 40

// Fill colors for the shaded polygons, in order: first polygon green, second
// red.
var regionColors = []color.Color{
	color.NRGBA{0, 200, 80, 150},
	color.NRGBA{230, 40, 40, 110},
}

// Draw the arrangement in the box [0, xMax]×[0, yMax]: every bounded face
// labelled with its debug name, the graph edges, the vertices, then the
// region polygons on top. Origin at the bottom left.
func (a *Arrangement) Draw(regions []Polygon, xMax, yMax, scale float64) *gg.Context {
	width := int(scale*xMax) + drawPadding*2
	height := int(scale*yMax) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)

	faces := a.Faces()
	for _, face := range faces {
		if face.IsCW() { // The outer face covers everything
			continue
		}
		tracePolygon(c, face.Points)
		c.SetRGBA(0.3, 0.2, 1, 0.25)
		c.Fill()
	}

	// Edges, once per undirected pair
	c.SetLineWidth(2 / scale)
	c.SetRGB(0, 1, 1)
	for _, u := range a.Graph.Vertices() {
		for _, v := range a.Graph[u] {
			if v.Less(u) {
				continue
			}
			c.DrawLine(u.X, u.Y, v.X, v.Y)
			c.Stroke()
		}
	}

	for i, region := range regions {
		if len(region.Points) < 3 {
			continue
		}
		tracePolygon(c, region.Points)
		c.SetColor(regionColors[i%len(regionColors)])
		c.Fill()
	}

	c.SetRGB(1, 1, 0)
	for v := range a.Graph {
		c.DrawCircle(v.X, v.Y, 3/scale)
		c.Fill()
	}

	// Labels have to be drawn in device space, or the text comes out flipped
	c.SetRGB(1, 1, 1)
	for _, face := range faces {
		if face.IsCW() {
			continue
		}
		cx, cy := centroid(face.Points)
		if !face.ContainsPointByEvenOdd(Point{cx, cy}) {
			continue
		}
		x, y := c.TransformPoint(cx, cy)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(dbg.Name(face), x, y, 0.5, 0.5)
		c.Pop()
	}
	return c
}

func tracePolygon(c *gg.Context, points []Point) {
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

// Vertex average. Inside any convex face; other faces are checked before
// labeling.
func centroid(points []Point) (float64, float64) {
	var x, y float64
	for _, p := range points {
		x += p.X
		y += p.Y
	}
	n := math.Max(float64(len(points)), 1)
	return x / n, y / n
}

// Save the drawing as a PNG and print it inline to stdout (iTerm only).
func CatPNG(c *gg.Context, path string) error {
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return errors.Wrap(imgcat.CatFile(path, os.Stdout), "printing image")
}
