package render

import (
	"math"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/potflow/flow"
)

func TestRamp(t *testing.T) {
	assert.Equal(t, Turbo[0], Turbo.At(0, 0, 1))
	assert.Equal(t, Turbo[len(Turbo) - 1], Turbo.At(1, 0, 1))
	assert.Equal(t, Turbo[0], Turbo.At(-5, 0, 1), "clamped below")
	assert.Equal(t, Turbo[len(Turbo) - 1], Turbo.At(5, 0, 1), "clamped above")
	assert.Equal(t, Undefined, Turbo.At(math.NaN(), 0, 1))

	mid := BlueRed.At(0.5, 0, 1)
	assert.Equal(t, uint8(128), mid.R)
	assert.Equal(t, uint8(128), mid.B)
	assert.Equal(t, BlueRed.At(0.5, 0, 1), BlueRed.At(3, 3, 3), "empty range")
}

func TestCamera(t *testing.T) {
	cam := NewCamera(800, 600, 3)
	sx, sy, _ := cam.Project(0, 0, 0)
	assert.InDelta(t, 400, sx, 1e-9)
	assert.InDelta(t, 300, sy, 1e-9)

	// The (3, 3) corner faces the camera, (-3, -3) is furthest away.
	_, _, near := cam.Project(3, 3, 0)
	_, _, far := cam.Project(-3, -3, 0)
	assert.True(t, near < far)

	// Raising a point moves it up the screen.
	_, low, _ := cam.Project(1, -1, 0)
	_, high, _ := cam.Project(1, -1, 1)
	assert.True(t, high < low)

	// The whole grid fits in the panel.
	for _, c := range [][2]float64{ {-3, -3}, {-3, 3}, {3, -3}, {3, 3} } {
		sx, sy, _ := cam.Project(c[0], c[1], 0)
		assert.True(t, sx >= 0 && sx <= 800 && sy >= 0 && sy <= 600)
	}
}

func TestScene(t *testing.T) {
	f := flow.Recompute(flow.DefaultParams)
	cam := NewCamera(640, 640, 3)
	cam.FitSurface(f)
	sc := NewScene(f, cam)

	assert.Equal(t, 17*17, len(sc.Quads))
	assert.Equal(t, 18*18, len(sc.Cones))
	assert.Equal(t, CentreLabel, sc.Label)
	assert.InDelta(t, 320, sc.MarkerX, 1e-9)

	for i := 1; i < len(sc.Quads); i++ {
		assert.True(t, sc.Quads[i - 1].Depth >= sc.Quads[i].Depth, "back to front")
	}

	lo, hi := f.Range(flow.Psi)
	assert.InDelta(t, 0.5*6, cam.ZScale*(hi - lo), 1e-9)
}

func TestSceneGap(t *testing.T) {
	f := flow.Evaluate(flow.DefaultParams, flow.NewGrid(-3, 3, 7))
	cam := NewCamera(640, 640, 3)
	cam.FitSurface(f)
	sc := NewScene(f, cam)

	assert.Equal(t, 6*6 - 4, len(sc.Quads), "cells around the centre dropped")
	assert.Equal(t, 7*7 - 1, len(sc.Cones))
	for _, q := range sc.Quads {
		for k := 0; k < 4; k++ {
			assert.False(t, math.IsNaN(q.Xs[k]) || math.IsNaN(q.Ys[k]))
		}
	}
}

func TestProfileData(t *testing.T) {
	p := flow.Params{ U: 1, A: 1, Gamma: 0 }
	degs, cps, uts, stag := ProfileData(p, 361)
	assert.Equal(t, 361, len(degs))
	assert.InDelta(t, 1, cps[0], 1e-9, "front stagnation point")
	assert.InDelta(t, -3, cps[90], 1e-9, "shoulder")
	assert.InDelta(t, -2, uts[90], 1e-9)
	assert.InDeltaSlice(t, []float64{ 0, 180 }, stag, 1e-9)

	_, _, _, stag = ProfileData(flow.Params{ U: 1, A: 1, Gamma: 20 }, 10)
	assert.Empty(t, stag, "stagnation point has left the wall")
}

func TestCircle(t *testing.T) {
	pts := Circle(1.5, 64)
	assert.Equal(t, 64, len(pts))
	for _, pt := range pts {
		assert.InDelta(t, 1.5, math.Hypot(pt.X, pt.Y), 1e-12)
	}
	assert.InDelta(t, pts[0].X, pts[63].X, 1e-12)
}

func TestSaveMap(t *testing.T) {
	dir := t.TempDir()
	for i, f := range []*flow.Field{
		flow.Recompute(flow.DefaultParams),
		flow.Evaluate(flow.Params{ U: 2, A: 0.5, Gamma: -6 }, flow.NewGrid(-3, 3, 19)),
	} {
		fname := path.Join(dir, []string{ "a.png", "b.png" }[i])
		assert.NoError(t, SaveMap(f, 4, fname))
		info, err := os.Stat(fname)
		assert.NoError(t, err)
		assert.True(t, info.Size() > 0)
	}

	empty := flow.Evaluate(flow.DefaultParams, flow.NewRectGrid([]float64{ 0 }, []float64{ 0 }))
	_, err := Map(empty)
	assert.Error(t, err)
}
