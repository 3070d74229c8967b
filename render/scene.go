package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/phil-mansfield/potflow/flow"
)

const (
	// Eye position of the default camera, relative to the scene's extent.
	eyeX, eyeY, eyeZ = 2.0, 2.0, 1.5
	// Height of the stream function surface relative to the grid's width.
	surfaceAspect = 0.5
	// Cone length in grid cells at the highest speed.
	coneCells = 0.9
	// Shortest cone, as a fraction of the longest.
	minConeFrac = 0.25

	CentreLabel = "cylinder centre"
)

// Camera maps points in (x, y, psi) space onto the screen with an orthographic
// projection. The camera looks at the origin, rotated by Azimuth about the z
// axis and tilted down by Elevation.
type Camera struct {
	Azimuth, Elevation float64
	// Scale is the number of pixels per unit length and CX, CY are the screen
	// coordinates of the origin.
	Scale, CX, CY float64
	// ZScale multiplies psi before projection.
	ZScale float64
}

// NewCamera returns a camera looking from the direction (2, 2, 1.5) which
// fits a square of half-width extent into a w x h pixel panel.
func NewCamera(w, h, extent float64) *Camera {
	return &Camera{
		Azimuth:   math.Atan2(-eyeX, -eyeY),
		Elevation: math.Atan2(eyeZ, math.Hypot(eyeX, eyeY)),
		Scale:     0.9 * math.Min(w, h) / (2 * math.Sqrt2 * extent),
		CX:        w / 2,
		CY:        h / 2,
		ZScale:    1,
	}
}

// Project returns the screen coordinates of a point along with its depth.
// Larger depths are further from the viewer.
func (c *Camera) Project(x, y, z float64) (sx, sy, depth float64) {
	sinA, cosA := math.Sincos(c.Azimuth)
	sinE, cosE := math.Sincos(c.Elevation)

	xr := x*cosA - y*sinA
	yr := x*sinA + y*cosA
	z *= c.ZScale

	up := z*cosE + yr*sinE
	depth = yr*cosE - z*sinE
	return c.CX + c.Scale*xr, c.CY - c.Scale*up, depth
}

// Quad is one projected cell of the stream function surface.
type Quad struct {
	Xs, Ys [4]float64
	Depth  float64
	Color  color.RGBA
}

// Cone is a projected velocity glyph running from its tail (X0, Y0) to its
// tip (X1, Y1) in the z = 0 plane.
type Cone struct {
	X0, Y0, X1, Y1 float64
	Color          color.RGBA
}

// Scene is the projected 3D view of a Field: the psi surface coloured by
// speed, velocity cones at every sample and a marker at the cylinder centre.
type Scene struct {
	Quads          []Quad
	Cones          []Cone
	MarkerX, MarkerY float64
	Label          string
}

// FitSurface sets the camera's ZScale so that the range of psi over f spans
// half the width of its grid.
func (c *Camera) FitSurface(f *flow.Field) {
	lo, hi := f.Range(flow.Psi)
	nx, _ := f.Grid.Dims()
	width := f.Grid.X(nx - 1) - f.Grid.X(0)
	if hi > lo && width > 0 {
		c.ZScale = surfaceAspect * width / (hi - lo)
	} else {
		c.ZScale = 1
	}
}

// NewScene projects f through cam. Quads are sorted from back to front, so
// drawing them in order hides the surface correctly. Cells and cones which
// touch undefined samples are left out, leaving a gap at the cylinder centre.
func NewScene(f *flow.Field, cam *Camera) *Scene {
	sc := &Scene{ Label: CentreLabel }
	sc.MarkerX, sc.MarkerY, _ = cam.Project(0, 0, 0)

	vMin, vMax := f.Range(flow.Speed)
	nx, ny := f.Grid.Dims()

	for iy := 0; iy < ny - 1; iy++ {
		for ix := 0; ix < nx - 1; ix++ {
			corners := [4]*flow.Sample{
				f.At(ix, iy), f.At(ix + 1, iy),
				f.At(ix + 1, iy + 1), f.At(ix, iy + 1),
			}
			if q, ok := quad(cam, corners, vMin, vMax); ok {
				sc.Quads = append(sc.Quads, q)
			}
		}
	}
	sort.SliceStable(sc.Quads, func(i, j int) bool {
		return sc.Quads[i].Depth > sc.Quads[j].Depth
	})

	cell := cellSize(f.Grid)
	for i := range f.Samples {
		s := &f.Samples[i]
		if !s.Defined || s.Speed == 0 { continue }

		frac := 1.0
		if vMax > 0 { frac = math.Max(s.Speed/vMax, minConeFrac) }
		l := coneCells * cell * frac / s.Speed

		x0, y0, _ := cam.Project(s.X, s.Y, 0)
		x1, y1, _ := cam.Project(s.X + l*s.Vx, s.Y + l*s.Vy, 0)
		sc.Cones = append(sc.Cones, Cone{
			x0, y0, x1, y1, BlueRed.At(s.Speed, vMin, vMax),
		})
	}

	return sc
}

func quad(
	cam *Camera, corners [4]*flow.Sample, vMin, vMax float64,
) (Quad, bool) {
	q := Quad{ }
	speed := 0.0
	for k, s := range corners {
		if !s.Defined { return q, false }
		var depth float64
		q.Xs[k], q.Ys[k], depth = cam.Project(s.X, s.Y, s.Psi)
		q.Depth += depth / 4
		speed += s.Speed / 4
	}
	q.Color = Turbo.At(speed, vMin, vMax)
	return q, true
}

// cellSize returns the smaller of the grid's two sample spacings.
func cellSize(g *flow.Grid) float64 {
	nx, ny := g.Dims()
	dx, dy := math.Inf(1), math.Inf(1)
	if nx > 1 { dx = (g.X(nx - 1) - g.X(0)) / float64(nx - 1) }
	if ny > 1 { dy = (g.Y(ny - 1) - g.Y(0)) / float64(ny - 1) }
	d := math.Min(dx, dy)
	if math.IsInf(d, 0) { return 1 }
	return d
}
