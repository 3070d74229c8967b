// Package contour traces level curves of a scalar field sampled on a
// rectilinear grid using marching squares.
package contour

import (
	"math"
)

// Grid is a scalar field sampled at the points (X(c), Y(r)). A value of NaN
// marks a sample as undefined; no contour passes through a cell that touches
// an undefined sample.
type Grid interface {
	Dims() (c, r int)
	X(c int) float64
	Y(r int) float64
	Z(c, r int) float64
}

// Segment is a straight piece of the contour at Level.
type Segment struct {
	X0, Y0, X1, Y1 float64
	Level          float64
}

type point struct{ x, y float64 }

// Levels returns n levels evenly spaced strictly inside (min, max).
func Levels(min, max float64, n int) []float64 {
	if n <= 0 || !(max > min) { return nil }
	out := make([]float64, n)
	dz := (max - min) / float64(n + 1)
	for i := range out { out[i] = min + float64(i + 1)*dz }
	return out
}

// Trace returns the segments of every contour in levels.
func Trace(g Grid, levels []float64) []Segment {
	segs := []Segment{}
	nc, nr := g.Dims()

	for r := 0; r < nr - 1; r++ {
		for c := 0; c < nc - 1; c++ {
			z00, z10 := g.Z(c, r), g.Z(c + 1, r)
			z01, z11 := g.Z(c, r + 1), g.Z(c + 1, r + 1)
			if anyNaN(z00, z10, z01, z11) { continue }

			x0, x1 := g.X(c), g.X(c + 1)
			y0, y1 := g.Y(r), g.Y(r + 1)

			for _, lvl := range levels {
				segs = cell(segs, lvl, x0, x1, y0, y1, z00, z10, z01, z11)
			}
		}
	}

	return segs
}

// cell appends the segments crossing a single cell at the given level.
func cell(
	segs []Segment, lvl, x0, x1, y0, y1, z00, z10, z01, z11 float64,
) []Segment {
	// Edges in order: bottom, right, top, left.
	var pts [4]point
	var hit [4]bool
	n := 0
	if p, ok := cross(lvl, x0, y0, z00, x1, y0, z10); ok { pts[0], hit[0] = p, true; n++ }
	if p, ok := cross(lvl, x1, y0, z10, x1, y1, z11); ok { pts[1], hit[1] = p, true; n++ }
	if p, ok := cross(lvl, x0, y1, z01, x1, y1, z11); ok { pts[2], hit[2] = p, true; n++ }
	if p, ok := cross(lvl, x0, y0, z00, x0, y1, z01); ok { pts[3], hit[3] = p, true; n++ }

	switch n {
	case 2:
		var ends []point
		for i := range pts {
			if hit[i] { ends = append(ends, pts[i]) }
		}
		segs = append(segs, seg(ends[0], ends[1], lvl))
	case 4:
		// Saddle: the centre value decides which corners are connected.
		centre := (z00 + z10 + z01 + z11) / 4
		if (centre >= lvl) == (z00 >= lvl) {
			segs = append(segs, seg(pts[0], pts[1], lvl), seg(pts[2], pts[3], lvl))
		} else {
			segs = append(segs, seg(pts[0], pts[3], lvl), seg(pts[1], pts[2], lvl))
		}
	}

	return segs
}

// cross returns the point where the level crosses the edge between
// (xa, ya) and (xb, yb), if it does.
func cross(lvl, xa, ya, za, xb, yb, zb float64) (point, bool) {
	if (za >= lvl) == (zb >= lvl) { return point{}, false }
	t := (lvl - za) / (zb - za)
	return point{ xa + t*(xb - xa), ya + t*(yb - ya) }, true
}

func seg(a, b point, lvl float64) Segment {
	return Segment{ a.x, a.y, b.x, b.y, lvl }
}

func anyNaN(zs ...float64) bool {
	for _, z := range zs {
		if math.IsNaN(z) { return true }
	}
	return false
}
