/*
Package flow evaluates the potential flow around a circulating cylinder: a
uniform stream of speed U, a doublet which turns the circle of radius a into a
streamline, and a point vortex of circulation Gamma at the origin.

The complex potential is

    f(z) = U (z + a^2/z) + (i Gamma / 2 pi) ln z

and the complex velocity is its derivative,

    v(z) = U (1 - a^2/z^2) + i Gamma / (2 pi z),

with the physical velocity given by (Re v, -Im v).

Everything in this package is a pure function of its arguments. The only
point where the flow is not defined is the centre of the cylinder, z = 0.
Samples at that point are flagged as undefined and hold NaN in every derived
quantity; they never cause an error or affect any other sample.
*/
package flow

import (
	"math"
	"math/cmplx"
)

// Params are the physical parameters of the flow.
type Params struct {
	U     float64 // freestream speed
	A     float64 // cylinder radius
	Gamma float64 // circulation, positive clockwise
}

// DefaultParams are the parameters the interactive controls start from.
var DefaultParams = Params{U: 1, A: 1, Gamma: 1}

// Sample holds the derived quantities at a single grid point.
type Sample struct {
	X, Y float64

	Phi, Psi float64    // velocity potential and stream function
	V        complex128 // complex velocity, df/dz
	Speed    float64
	Vx, Vy   float64

	// Defined is false at the cylinder centre, where every quantity above
	// other than X and Y is NaN.
	Defined bool
}

// Field is the flow evaluated over an entire grid. Samples[i] corresponds to
// Grid index i.
type Field struct {
	Params  Params
	Grid    *Grid
	Samples []Sample
}

// Potential returns the complex potential f(z). It is infinite or NaN at
// z = 0.
func Potential(p Params, z complex128) complex128 {
	a2 := complex(p.A*p.A, 0)
	vortex := complex(0, p.Gamma/(2*math.Pi))
	return complex(p.U, 0)*(z + a2/z) + vortex*cmplx.Log(z)
}

// Velocity returns the complex velocity df/dz at z. It is infinite or NaN at
// z = 0.
func Velocity(p Params, z complex128) complex128 {
	a2 := complex(p.A*p.A, 0)
	vortex := complex(0, p.Gamma/(2*math.Pi))
	return complex(p.U, 0)*(1 - a2/(z*z)) + vortex/z
}

// At returns the sample at the point z.
func (p Params) At(z complex128) Sample {
	s := Sample{ X: real(z), Y: imag(z) }
	if z == 0 {
		nan := math.NaN()
		s.Phi, s.Psi, s.Speed, s.Vx, s.Vy = nan, nan, nan, nan, nan
		s.V = cmplx.NaN()
		return s
	}

	f := Potential(p, z)
	v := Velocity(p, z)

	s.Phi, s.Psi = real(f), imag(f)
	s.V = v
	s.Speed = cmplx.Abs(v)
	s.Vx, s.Vy = real(v), -imag(v)
	s.Defined = true
	return s
}

// Evaluate computes the flow at every point of g. Each sample is computed
// independently of all the others.
func Evaluate(p Params, g *Grid) *Field {
	f := &Field{ Params: p, Grid: g, Samples: make([]Sample, g.Area) }
	for i := range f.Samples { f.Samples[i] = p.At(g.Z(i)) }
	return f
}

// Recompute evaluates the flow over the default grid. It is what an
// interactive front end should call whenever a parameter changes.
func Recompute(p Params) *Field { return Evaluate(p, DefaultGrid()) }

// At returns the sample at column ix and row iy.
func (f *Field) At(ix, iy int) *Sample { return &f.Samples[f.Grid.Idx(ix, iy)] }

// Undefined returns the indices of all undefined samples.
func (f *Field) Undefined() []int {
	out := []int{}
	for i := range f.Samples {
		if !f.Samples[i].Defined { out = append(out, i) }
	}
	return out
}
