package flow

import (
	"math"
)

// Quantity is a scalar quantity which can be read from a Sample.
type Quantity int

const (
	Phi Quantity = iota
	Psi
	Speed
	Vx
	Vy
	EndQuantity
)

var quantityNames = [EndQuantity]string{ "Phi", "Psi", "Speed", "Vx", "Vy" }

func (q Quantity) String() string {
	if q < 0 || q >= EndQuantity { return "Unknown" }
	return quantityNames[q]
}

// Value returns the quantity q of the sample s.
func (s *Sample) Value(q Quantity) float64 {
	switch q {
	case Phi:
		return s.Phi
	case Psi:
		return s.Psi
	case Speed:
		return s.Speed
	case Vx:
		return s.Vx
	case Vy:
		return s.Vy
	}
	panic("Impossible")
}

// Values returns the quantity q at every grid point, in grid order.
// Undefined samples are NaN.
func (f *Field) Values(q Quantity) []float64 {
	out := make([]float64, len(f.Samples))
	for i := range f.Samples { out[i] = f.Samples[i].Value(q) }
	return out
}

// Mask returns the quantity q at every defined grid point along with the grid
// index of each returned value. Undefined samples are dropped.
func (f *Field) Mask(q Quantity) (vals []float64, idxs []int) {
	vals = make([]float64, 0, len(f.Samples))
	idxs = make([]int, 0, len(f.Samples))
	for i := range f.Samples {
		if !f.Samples[i].Defined { continue }
		vals = append(vals, f.Samples[i].Value(q))
		idxs = append(idxs, i)
	}
	return vals, idxs
}

// Range returns the minimum and maximum of q over all defined samples. If
// there are no defined samples, both are NaN.
func (f *Field) Range(q Quantity) (min, max float64) {
	min, max = math.Inf(+1), math.Inf(-1)
	n := 0
	for i := range f.Samples {
		if !f.Samples[i].Defined { continue }
		v := f.Samples[i].Value(q)
		if v < min { min = v }
		if v > max { max = v }
		n++
	}
	if n == 0 { return math.NaN(), math.NaN() }
	return min, max
}

// Layer is a single quantity of a Field viewed as a function on its grid. It
// satisfies the GridXYZ interface used by the plotting code.
type Layer struct {
	f        *Field
	q        Quantity
	min, max float64
}

// Layer returns a view of the quantity q over the field's grid.
func (f *Field) Layer(q Quantity) *Layer {
	min, max := f.Range(q)
	return &Layer{ f, q, min, max }
}

func (l *Layer) Quantity() Quantity    { return l.q }
func (l *Layer) Dims() (c, r int)      { return l.f.Grid.Dims() }
func (l *Layer) X(c int) float64       { return l.f.Grid.X(c) }
func (l *Layer) Y(r int) float64       { return l.f.Grid.Y(r) }
func (l *Layer) Z(c, r int) float64    { return l.f.At(c, r).Value(l.q) }
func (l *Layer) Defined(c, r int) bool { return l.f.At(c, r).Defined }

// Min and Max return the extent of the layer over its defined samples.
func (l *Layer) Min() float64 { return l.min }
func (l *Layer) Max() float64 { return l.max }
