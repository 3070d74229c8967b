package flow

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testEps = 1e-9

func TestDefaultGrid(t *testing.T) {
	g := DefaultGrid()
	nx, ny := g.Dims()
	assert.Equal(t, 18, nx)
	assert.Equal(t, 18, ny)
	assert.Equal(t, 324, g.Area)

	assert.Equal(t, -3.0, g.X(0), "left edge")
	assert.Equal(t, +3.0, g.X(nx - 1), "right edge")
	assert.Equal(t, -3.0, g.Y(0), "bottom edge")
	assert.Equal(t, +3.0, g.Y(ny - 1), "top edge")

	for i := 0; i < g.Area; i++ {
		ix, iy := g.Coords(i)
		assert.Equal(t, i, g.Idx(ix, iy))
		assert.NotEqual(t, complex128(0), g.Z(i), "18 samples never hit 0")
	}

	_, ok := g.IdxCheck(18, 0)
	assert.False(t, ok)
	idx, ok := g.IdxCheck(17, 17)
	assert.True(t, ok)
	assert.Equal(t, 323, idx)
}

func TestLinspace(t *testing.T) {
	assert.InDeltaSlice(t, []float64{-3, -2, -1, 0, 1, 2, 3}, Linspace(-3, 3, 7), 1e-12)
	assert.Equal(t, 0.0, Linspace(-3, 3, 7)[3], "exact midpoint")
	assert.Equal(t, 0.0, Linspace(-3, 3, 19)[9], "odd midpoint")
	assert.Equal(t, []float64{2}, Linspace(2, 5, 1))
	assert.Nil(t, Linspace(2, 5, 0))
}

func TestDeterminism(t *testing.T) {
	p := Params{ U: 2.3, A: 0.7, Gamma: -4.5 }
	f1, f2 := Recompute(p), Recompute(p)
	assert.Equal(t, f1.Samples, f2.Samples)

	// Evaluating other parameters in between must not leak into later calls.
	Recompute(Params{ U: 5, A: 2, Gamma: 10 })
	assert.Equal(t, f1.Samples, Recompute(p).Samples)
}

func TestSymmetryWithoutCirculation(t *testing.T) {
	for _, p := range []Params{ {1, 1, 0}, {3.2, 0.4, 0}, {0.5, 2, 0} } {
		f := Recompute(p)
		nx, ny := f.Grid.Dims()
		for ix := 0; ix < nx; ix++ {
			for iy := 0; iy < ny; iy++ {
				lo, hi := f.At(ix, iy), f.At(ix, ny - 1 - iy)
				assert.InDelta(t, lo.Speed, hi.Speed, testEps,
					"speed at (%g, %g)", lo.X, lo.Y)
			}
		}
	}
}

func TestFarField(t *testing.T) {
	p := Params{ U: 1, A: 1, Gamma: 0 }
	f := Recompute(p)
	nx, ny := f.Grid.Dims()
	corners := []*Sample{
		f.At(0, 0), f.At(nx - 1, 0), f.At(0, ny - 1), f.At(nx - 1, ny - 1),
	}
	for _, s := range corners {
		assert.InDelta(t, p.U, s.Vx, 0.01*p.U, "Vx at (%g, %g)", s.X, s.Y)
		assert.True(t, math.Abs(s.Vy) < 0.1*p.U, "Vy at (%g, %g)", s.X, s.Y)
	}
}

func TestNoPenetration(t *testing.T) {
	ps := []Params{
		{1, 1, 0}, {1, 1, 1}, {2.5, 0.3, -7.5}, {0.5, 2, 10}, {4.9, 1.1, -10},
	}
	for _, p := range ps {
		for _, theta := range Linspace(0, 2*math.Pi, 37) {
			ur, ut := Polar(p, p.A, theta)
			assert.InDelta(t, 0, ur, testEps, "radial velocity %+v", p)
			assert.InDelta(t, Surface(p, theta).Ut, ut, testEps,
				"tangential velocity %+v", p)
		}
	}
}

func TestOriginIsUndefined(t *testing.T) {
	p := Params{ U: 1, A: 1, Gamma: 1 }
	for _, samples := range []int{ 7, 19 } {
		g := NewGrid(-3, 3, samples)
		f := Evaluate(p, g)

		mid := samples / 2
		origin := g.Idx(mid, mid)
		assert.Equal(t, []int{ origin }, f.Undefined())

		s := f.Samples[origin]
		assert.False(t, s.Defined)
		for q := Quantity(0); q < EndQuantity; q++ {
			assert.True(t, math.IsNaN(s.Value(q)), "%s at origin", q)
		}

		for i := range f.Samples {
			if i == origin { continue }
			assert.True(t, f.Samples[i].Defined)
			for q := Quantity(0); q < EndQuantity; q++ {
				v := f.Samples[i].Value(q)
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0),
					"%s at index %d", q, i)
			}
		}

		vals, idxs := f.Mask(Speed)
		assert.Equal(t, g.Area - 1, len(vals))
		assert.NotContains(t, idxs, origin)
	}
}

// An 18 x 18 grid which passes through the origin: one undefined entry and
// 323 finite ones.
func TestOriginOnEighteenGrid(t *testing.T) {
	axis := append(Linspace(-3, 3, 17), 3.375)
	g := NewRectGrid(axis, axis)
	f := Evaluate(Params{ U: 1, A: 1, Gamma: 1 }, g)

	origin := g.Idx(8, 8)
	assert.Equal(t, 324, len(f.Samples))
	assert.Equal(t, []int{ origin }, f.Undefined())

	vals, _ := f.Mask(Psi)
	assert.Equal(t, 323, len(vals))
	for _, v := range vals {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
}

func TestDownstreamPoint(t *testing.T) {
	p := Params{ U: 1, A: 1, Gamma: 0 }
	f := Evaluate(p, NewRectGrid([]float64{ 3 }, []float64{ 0 }))
	s := f.Samples[0]

	assert.InEpsilon(t, 8.0/9, s.Vx, testEps)
	assert.InDelta(t, 0, s.Vy, testEps)
	assert.InEpsilon(t, 8.0/9, s.Speed, testEps)
	assert.InEpsilon(t, 10.0/3, s.Phi, testEps)
	assert.InDelta(t, 0, s.Psi, testEps)
}

func TestAbovePointWithCirculation(t *testing.T) {
	p := Params{ U: 1, A: 1, Gamma: 1 }
	f := Evaluate(p, NewRectGrid([]float64{ 0 }, []float64{ 3 }))
	s := f.Samples[0]

	// f(3i) = 3i - i/3 + (i / 2 pi)(ln 3 + i pi / 2)
	// v(3i) = 1 + 1/9 + 1 / (6 pi)
	wantPhi := -0.25
	wantPsi := 8.0/3 + math.Log(3)/(2*math.Pi)
	wantVx := 10.0/9 + 1/(6*math.Pi)

	assert.InEpsilon(t, wantPhi, s.Phi, testEps)
	assert.InEpsilon(t, wantPsi, s.Psi, testEps)
	assert.InEpsilon(t, wantVx, s.Vx, testEps)
	assert.InDelta(t, 0, s.Vy, testEps)
	assert.InEpsilon(t, wantVx, s.Speed, testEps)

	z := complex(0, 3)
	assert.InDelta(t, 0, cmplx.Abs(Potential(p, z) - complex(s.Phi, s.Psi)), testEps)
	assert.InDelta(t, 0, cmplx.Abs(Velocity(p, z) - s.V), testEps)
}

func TestRange(t *testing.T) {
	f := Evaluate(Params{ U: 1, A: 1, Gamma: 0 }, NewGrid(-3, 3, 7))
	min, max := f.Range(Speed)
	assert.False(t, math.IsNaN(min) || math.IsNaN(max))
	assert.True(t, min <= max)

	l := f.Layer(Speed)
	assert.Equal(t, min, l.Min())
	assert.Equal(t, max, l.Max())
	assert.False(t, l.Defined(3, 3))
	assert.Equal(t, f.At(4, 2).Speed, l.Z(4, 2))

	empty := Evaluate(Params{ U: 1, A: 1 }, NewRectGrid([]float64{ 0 }, []float64{ 0 }))
	min, max = empty.Range(Psi)
	assert.True(t, math.IsNaN(min) && math.IsNaN(max))
}

func TestQuantityString(t *testing.T) {
	assert.Equal(t, "Psi", Psi.String())
	assert.Equal(t, "Unknown", EndQuantity.String())
}
