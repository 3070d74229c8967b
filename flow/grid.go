package flow

const (
	// DefaultMin and DefaultMax bound both axes of the default grid.
	DefaultMin = -3.0
	DefaultMax = +3.0
	// DefaultSamples is the number of samples along each axis of the default
	// grid.
	DefaultSamples = 18
)

var defaultGrid = NewGrid(DefaultMin, DefaultMax, DefaultSamples)

// Grid is a regular 2D sampling of the plane. Points are stored row-major,
// with x varying fastest, so the point (ix, iy) lives at index
// ix + iy*Length, the same layout as a meshgrid over (xs, ys).
//
// A Grid is never modified after it has been initialized.
type Grid struct {
	xs, ys       []float64
	Length, Area int
}

// DefaultGrid returns the shared 18 x 18 grid over [-3, 3] x [-3, 3].
func DefaultGrid() *Grid { return defaultGrid }

// NewGrid returns a square grid with samples points along each axis spanning
// [min, max] inclusive.
func NewGrid(min, max float64, samples int) *Grid {
	xs := Linspace(min, max, samples)
	ys := Linspace(min, max, samples)
	return NewRectGrid(xs, ys)
}

// NewRectGrid returns a grid over the given axis coordinates. The slices are
// copied.
func NewRectGrid(xs, ys []float64) *Grid {
	g := &Grid{}
	g.Init(xs, ys)
	return g
}

// Init initializes a Grid instance.
func (g *Grid) Init(xs, ys []float64) {
	g.xs = append([]float64{}, xs...)
	g.ys = append([]float64{}, ys...)

	g.Length = len(xs)
	g.Area = len(xs) * len(ys)
}

// Dims returns the number of samples along the x and y axes.
func (g *Grid) Dims() (nx, ny int) { return len(g.xs), len(g.ys) }

// X returns the x coordinate of column ix.
func (g *Grid) X(ix int) float64 { return g.xs[ix] }

// Y returns the y coordinate of row iy.
func (g *Grid) Y(iy int) float64 { return g.ys[iy] }

// Idx returns the grid index corresponding to a set of coordinates.
func (g *Grid) Idx(ix, iy int) int { return ix + iy*g.Length }

// IdxCheck returns an index and true if the given coordinate are valid and
// false otherwise.
func (g *Grid) IdxCheck(ix, iy int) (idx int, ok bool) {
	if !g.BoundsCheck(ix, iy) {
		return -1, false
	}
	return g.Idx(ix, iy), true
}

// BoundsCheck returns true if the given coordinates are within the Grid and
// false otherwise.
func (g *Grid) BoundsCheck(ix, iy int) bool {
	return ix >= 0 && iy >= 0 && ix < len(g.xs) && iy < len(g.ys)
}

// Coords returns the column and row of a point from its grid index.
func (g *Grid) Coords(idx int) (ix, iy int) {
	return idx % g.Length, idx / g.Length
}

// Z returns the point with index idx as a complex number x + iy.
func (g *Grid) Z(idx int) complex128 {
	ix, iy := g.Coords(idx)
	return complex(g.xs[ix], g.ys[iy])
}

// Linspace returns num evenly spaced values over [start, end]. The endpoints
// are exact, and so is the midpoint of a symmetric range with an odd number of
// samples.
func Linspace(start, end float64, num int) []float64 {
	if num <= 0 { return nil }
	out := make([]float64, num)
	if num == 1 {
		out[0] = start
		return out
	}
	for i := range out {
		t := float64(i) / float64(num - 1)
		out[i] = start*(1 - t) + end*t
	}
	return out
}
