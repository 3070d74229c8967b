// Package viewer is an interactive window onto the flow. The left panel shows
// the 3D stream function surface with velocity cones and the right panel
// shows the speed map with streamlines. Keyboard controls move the U, a and
// Gamma sliders, and the flow is recomputed whenever one of them changes.
package viewer

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/plot/palette/moreland"

	"github.com/phil-mansfield/potflow/contour"
	"github.com/phil-mansfield/potflow/flow"
	"github.com/phil-mansfield/potflow/io"
	"github.com/phil-mansfield/potflow/render"
)

const (
	streamLevels = 24
	coneHead     = 4
	// Key repeat: first repeat after repeatDelay ticks, then every
	// repeatEvery ticks.
	repeatDelay, repeatEvery = 20, 4
)

var (
	background = color.RGBA{ 0xff, 0xff, 0xff, 0xff }
	streamline = color.RGBA{ 0xff, 0xff, 0xff, 0xb0 }
	outline    = color.RGBA{ 0, 0, 0, 0xff }
	marker     = color.RGBA{ 0xff, 0, 0, 0xff }
	helpText   = "Q/A: U   W/S: a   E/D: Gamma   R: reset   Esc: quit"
)

type binding struct {
	key ebiten.Key
	act func(*io.Controls) bool
}

var bindings = []binding{
	{ ebiten.KeyQ, func(c *io.Controls) bool { return c.U.Inc() } },
	{ ebiten.KeyA, func(c *io.Controls) bool { return c.U.Dec() } },
	{ ebiten.KeyW, func(c *io.Controls) bool { return c.A.Inc() } },
	{ ebiten.KeyS, func(c *io.Controls) bool { return c.A.Dec() } },
	{ ebiten.KeyE, func(c *io.Controls) bool { return c.Gamma.Inc() } },
	{ ebiten.KeyD, func(c *io.Controls) bool { return c.Gamma.Dec() } },
	{ ebiten.KeyR, func(c *io.Controls) bool { return c.Reset() } },
}

// Run opens the viewer window and blocks until it is closed.
func Run(wrap *io.ViewWrapper) error {
	g := newGame(wrap)
	ebiten.SetWindowTitle("potflow")
	ebiten.SetWindowSize(wrap.View.Width, wrap.View.Height)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	if err == ebiten.Termination { return nil }
	return err
}

type game struct {
	ctrl         *io.Controls
	coarse, fine *flow.Grid
	width, height int

	dirty bool
	field *flow.Field
	scene *render.Scene
	mapImg *ebiten.Image
	mapPix []byte
	streams []contour.Segment

	white *ebiten.Image
}

func newGame(wrap *io.ViewWrapper) *game {
	half := math.Max(math.Abs(wrap.Grid.Min), math.Abs(wrap.Grid.Max))
	cells := wrap.View.Cells

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &game{
		ctrl:   io.NewControls(&wrap.Flow),
		coarse: wrap.Grid.Grid(),
		fine:   flow.NewGrid(-half, half, cells),
		width:  wrap.View.Width,
		height: wrap.View.Height,
		dirty:  true,
		mapImg: ebiten.NewImage(cells, cells),
		mapPix: make([]byte, 4*cells*cells),
		white:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) { return ebiten.Termination }

	for _, b := range bindings {
		if pressed(b.key) && b.act(g.ctrl) { g.dirty = true }
	}

	if g.dirty {
		g.recompute()
		g.dirty = false
	}
	return nil
}

// pressed reports a key press on the first tick it is held and then at the
// key repeat rate.
func pressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > repeatDelay && d%repeatEvery == 0)
}

// recompute rebuilds everything which depends on the sliders.
func (g *game) recompute() {
	p := g.ctrl.Params()
	if g.coarse == flow.DefaultGrid() {
		g.field = flow.Recompute(p)
	} else {
		g.field = flow.Evaluate(p, g.coarse)
	}

	panel := float64(g.width) / 2
	nx, _ := g.coarse.Dims()
	extent := math.Max(math.Abs(g.coarse.X(0)), math.Abs(g.coarse.X(nx - 1)))
	cam := render.NewCamera(panel, float64(g.height), extent)
	cam.FitSurface(g.field)
	g.scene = render.NewScene(g.field, cam)

	fine := flow.Evaluate(p, g.fine)
	g.paintMap(fine)
	psi := fine.Layer(flow.Psi)
	g.streams = contour.Trace(psi, contour.Levels(psi.Min(), psi.Max(), streamLevels))

	log.Printf("U = %.1f, a = %.1f, Gamma = %.1f", p.U, p.A, p.Gamma)
}

// paintMap colours the speed map. Rows are flipped so that +y is up, and the
// undefined centre is left transparent.
func (g *game) paintMap(f *flow.Field) {
	lo, hi := f.Range(flow.Speed)
	if !(hi > lo) { hi = lo + 1 }
	cm := moreland.ExtendedBlackBody()
	cm.SetMin(lo)
	cm.SetMax(hi)

	nx, ny := f.Grid.Dims()
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			j := 4 * (ix + (ny - 1 - iy)*nx)
			s := f.At(ix, iy)
			if !s.Defined {
				g.mapPix[j], g.mapPix[j+1], g.mapPix[j+2], g.mapPix[j+3] = 0, 0, 0, 0
				continue
			}
			c, err := cm.At(s.Speed)
			if err != nil { c = render.Undefined }
			r, gg, b, a := c.RGBA()
			g.mapPix[j], g.mapPix[j+1] = uint8(r >> 8), uint8(gg >> 8)
			g.mapPix[j+2], g.mapPix[j+3] = uint8(b >> 8), uint8(a >> 8)
		}
	}
	g.mapImg.WritePixels(g.mapPix)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if g.scene == nil { return }

	panel := g.width / 2
	g.drawScene(screen)
	g.drawMap(screen, panel)

	lines := []string{}
	for _, s := range g.ctrl.Sliders() { lines = append(lines, s.String()) }
	p := g.ctrl.Params()
	lines = append(lines,
		fmt.Sprintf("lift / rho = %.3g", flow.Lift(p, 1)),
		helpText,
	)
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 8, 8)
}

// drawScene draws the 3D view into the left half of the screen.
func (g *game) drawScene(screen *ebiten.Image) {
	sc := g.scene

	vs := make([]ebiten.Vertex, 0, 4*len(sc.Quads))
	is := make([]uint16, 0, 6*len(sc.Quads))
	op := &ebiten.DrawTrianglesOptions{}
	for _, q := range sc.Quads {
		// Indices are 16 bits, so very fine grids are drawn in batches.
		if len(vs) + 4 > math.MaxUint16 {
			screen.DrawTriangles(vs, is, g.white, op)
			vs, is = vs[:0], is[:0]
		}

		base := uint16(len(vs))
		r, gg, b := float32(q.Color.R)/0xff, float32(q.Color.G)/0xff, float32(q.Color.B)/0xff
		for k := 0; k < 4; k++ {
			vs = append(vs, ebiten.Vertex{
				DstX: float32(q.Xs[k]), DstY: float32(q.Ys[k]),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: gg, ColorB: b, ColorA: 0.96,
			})
		}
		is = append(is, base, base+1, base+2, base, base+2, base+3)
	}
	screen.DrawTriangles(vs, is, g.white, op)

	for _, c := range sc.Cones {
		drawArrow(screen, c)
	}

	mx, my := float32(sc.MarkerX), float32(sc.MarkerY)
	vector.DrawFilledCircle(screen, mx, my, 6, marker, true)
	ebitenutil.DebugPrintAt(screen, sc.Label, int(mx) - 6*len(sc.Label)/2, int(my) - 24)
}

// drawArrow draws a cone glyph as a shaft with a two-line head.
func drawArrow(screen *ebiten.Image, c render.Cone) {
	x0, y0, x1, y1 := float32(c.X0), float32(c.Y0), float32(c.X1), float32(c.Y1)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1.5, c.Color, true)

	dx, dy := c.X1 - c.X0, c.Y1 - c.Y0
	l := math.Hypot(dx, dy)
	if l == 0 { return }
	ux, uy := dx/l, dy/l
	for _, side := range []float64{ -1, +1 } {
		hx := c.X1 - coneHead*(ux - side*0.5*uy)
		hy := c.Y1 - coneHead*(uy + side*0.5*ux)
		vector.StrokeLine(screen, x1, y1, float32(hx), float32(hy), 1.5, c.Color, true)
	}
}

// drawMap draws the 2D view into the right half of the screen.
func (g *game) drawMap(screen *ebiten.Image, left int) {
	side := math.Min(float64(g.width - left), float64(g.height)) * 0.9
	x0 := float64(left) + (float64(g.width - left) - side) / 2
	y0 := (float64(g.height) - side) / 2

	nx, ny := g.fine.Dims()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(side/float64(nx), side/float64(ny))
	op.GeoM.Translate(x0, y0)
	screen.DrawImage(g.mapImg, op)

	xMin, xMax := g.fine.X(0), g.fine.X(nx - 1)
	scale := side / (xMax - xMin)
	toScreen := func(x, y float64) (float32, float32) {
		return float32(x0 + (x - xMin)*scale), float32(y0 + side - (y - xMin)*scale)
	}

	for _, s := range g.streams {
		ax, ay := toScreen(s.X0, s.Y0)
		bx, by := toScreen(s.X1, s.Y1)
		vector.StrokeLine(screen, ax, ay, bx, by, 1, streamline, true)
	}

	cx, cy := toScreen(0, 0)
	r := float32(g.ctrl.A.Value * scale)
	vector.StrokeCircle(screen, cx, cy, r, 2, outline, true)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
