package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/phil-mansfield/potflow/contour"
	"github.com/phil-mansfield/potflow/flow"
)

const (
	// Number of colours in the speed map.
	mapColors = 100
	// Number of stream function contours.
	streamLevels = 20
	// Points used to draw the cylinder outline.
	circlePoints = 128
)

// Map draws the 2D view of f: speed as a filled colour map, streamlines as
// contours of psi, and the outline of the cylinder. The returned plot can be
// saved in any format gonum/plot supports.
func Map(f *flow.Field) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf(
		"Streamlines and |v|: U = %.2g, a = %.2g, Gamma = %.2g",
		f.Params.U, f.Params.A, f.Params.Gamma,
	)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	speed := f.Layer(flow.Speed)
	lo, hi := speed.Min(), speed.Max()
	if math.IsNaN(lo) {
		return nil, fmt.Errorf("Field has no defined samples.")
	}
	if hi <= lo { hi = lo + 1 }

	cm := moreland.ExtendedBlackBody()
	cm.SetMin(lo)
	cm.SetMax(hi)
	hm := plotter.NewHeatMap(speed, cm.Palette(mapColors))
	hm.Min, hm.Max = lo, hi
	hm.NaN = color.White
	p.Add(hm)

	psi := f.Layer(flow.Psi)
	levels := contour.Levels(psi.Min(), psi.Max(), streamLevels)
	p.Add(&Segments{
		Segs: contour.Trace(psi, levels),
		LineStyle: draw.LineStyle{
			Color: color.RGBA{ 0xff, 0xff, 0xff, 0xcc },
			Width: vg.Points(0.8),
		},
	})

	circle, err := plotter.NewLine(Circle(f.Params.A, circlePoints))
	if err != nil { return nil, err }
	circle.LineStyle.Color = color.Black
	circle.LineStyle.Width = vg.Points(2)
	p.Add(circle)

	// Equal aspect ratio, so the cylinder is drawn as a circle.
	nx, ny := f.Grid.Dims()
	xMin, xMax := f.Grid.X(0), f.Grid.X(nx - 1)
	yMin, yMax := f.Grid.Y(0), f.Grid.Y(ny - 1)
	half := math.Max(xMax - xMin, yMax - yMin) / 2
	xMid, yMid := (xMin + xMax) / 2, (yMin + yMax) / 2
	p.X.Min, p.X.Max = xMid - half, xMid + half
	p.Y.Min, p.Y.Max = yMid - half, yMid + half

	return p, nil
}

// SaveMap writes the 2D view of f to fname, which is width inches on a side.
func SaveMap(f *flow.Field, width float64, fname string) error {
	p, err := Map(f)
	if err != nil { return err }
	w := vg.Length(width) * vg.Inch
	return p.Save(w, w, fname)
}

// Circle returns n points around the circle of radius r about the origin.
// The first and last points coincide.
func Circle(r float64, n int) plotter.XYs {
	pts := make(plotter.XYs, n)
	for i, theta := range flow.Linspace(0, 2*math.Pi, n) {
		pts[i].X, pts[i].Y = r*math.Cos(theta), r*math.Sin(theta)
	}
	return pts
}

// Segments is a plot.Plotter which draws unconnected line segments, such as
// the output of contour.Trace.
type Segments struct {
	Segs []contour.Segment
	draw.LineStyle
}

// Plot implements the plot.Plotter interface.
func (s *Segments) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, seg := range s.Segs {
		c.StrokeLine2(
			s.LineStyle, trX(seg.X0), trY(seg.Y0), trX(seg.X1), trY(seg.Y1),
		)
	}
}
