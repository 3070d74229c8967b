package render

import (
	"fmt"
	"math"
	"math/cmplx"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/potflow/flow"
)

const profilePoints = 361

var (
	profileColors = []string{ "DarkSlateBlue", "DeepPink", "DimGray" }
)

// ProfileData returns the wall pressure coefficient and tangential velocity
// (in units of U) at n angles from 0 to 360 degrees, along with the angles
// of any stagnation points that sit on the cylinder.
func ProfileData(p flow.Params, n int) (degs, cps, uts, stag []float64) {
	prof := flow.SurfaceProfile(p, n)
	degs = make([]float64, len(prof))
	cps = make([]float64, len(prof))
	uts = make([]float64, len(prof))
	for i, sp := range prof {
		degs[i] = sp.Theta * 180 / math.Pi
		cps[i] = sp.Cp
		uts[i] = sp.Ut / p.U
	}

	for _, z := range flow.Stagnation(p) {
		if math.Abs(cmplx.Abs(z) - p.A) > 1e-9*p.A { continue }
		deg := cmplx.Phase(z) * 180 / math.Pi
		if deg < 0 { deg += 360 }
		stag = append(stag, deg)
	}

	return degs, cps, uts, stag
}

// Profile queues a plot of the wall pressure coefficient and tangential
// velocity of p, saved to fname. Nothing is drawn until plt.Execute is called.
func Profile(p flow.Params, fname string) {
	degs, cps, uts, stag := ProfileData(p, profilePoints)

	plt.Figure()
	plt.Plot(degs, cps, plt.LW(3), plt.C(profileColors[0]))
	plt.Plot(degs, uts, plt.LW(2), plt.C(profileColors[1]))
	for _, deg := range stag {
		plt.Plot([]float64{ deg, deg }, []float64{ minOf(cps), 1 },
			plt.C(profileColors[2]))
	}

	plt.Title(fmt.Sprintf(
		"Wall $C_p$ (blue) and $u_\\theta/U$ (pink): " +
			"$U$ = %.2g, $a$ = %.2g, $\\Gamma$ = %.2g",
		p.U, p.A, p.Gamma,
	))
	plt.XLabel(`$\theta$ [deg]`, plt.FontSize(16))
	plt.YLabel(`$C_p$, $u_\theta/U$`, plt.FontSize(16))
	plt.XLim(0, 360)
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"), plt.Which("both"))
	plt.SaveFig(fname)
}

func minOf(xs []float64) float64 {
	m := math.Inf(+1)
	for _, x := range xs { m = math.Min(m, x) }
	return m
}
