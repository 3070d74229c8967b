package flow

import (
	"math"
	"math/cmplx"
)

// Polar returns the radial and tangential velocity at the point with polar
// coordinates (r, theta). Tangential velocity is positive counter-clockwise.
func Polar(p Params, r, theta float64) (ur, ut float64) {
	v := Velocity(p, cmplx.Rect(r, theta))
	vx, vy := real(v), -imag(v)
	sin, cos := math.Sincos(theta)
	return vx*cos + vy*sin, -vx*sin + vy*cos
}

// SurfacePoint describes the flow along the cylinder wall at angle Theta.
type SurfacePoint struct {
	Theta float64
	// Ut is the tangential velocity at the wall, positive counter-clockwise.
	// The radial velocity there is zero.
	Ut float64
	// Cp is the pressure coefficient, 1 - (Ut/U)^2.
	Cp float64
}

// Surface returns the wall velocity and pressure coefficient at angle theta.
func Surface(p Params, theta float64) SurfacePoint {
	ut := -2*p.U*math.Sin(theta) - p.Gamma/(2*math.Pi*p.A)
	sp := SurfacePoint{ Theta: theta, Ut: ut }
	if p.U != 0 {
		sp.Cp = 1 - (ut/p.U)*(ut/p.U)
	} else {
		sp.Cp = math.NaN()
	}
	return sp
}

// SurfaceProfile samples Surface at n evenly spaced angles over [0, 2 pi].
func SurfaceProfile(p Params, n int) []SurfacePoint {
	thetas := Linspace(0, 2*math.Pi, n)
	out := make([]SurfacePoint, len(thetas))
	for i, theta := range thetas { out[i] = Surface(p, theta) }
	return out
}

// CriticalGamma is the magnitude of circulation at which the two stagnation
// points on the cylinder merge into one.
func CriticalGamma(p Params) float64 { return 4*math.Pi*p.U*p.A }

// Stagnation returns the points where the velocity vanishes.
//
// While |Gamma| < 4 pi U a there are two stagnation points on the cylinder at
// sin(theta) = -Gamma / (4 pi U a). At the critical circulation they merge into
// one, and beyond it the single stagnation point leaves the cylinder and sits
// on the y axis. A flow with no freestream has no stagnation points away from
// the origin.
func Stagnation(p Params) []complex128 {
	if p.U == 0 || p.A == 0 { return nil }

	s := -p.Gamma / CriticalGamma(p)
	switch {
	case s == 1 || s == -1:
		return []complex128{ cmplx.Rect(p.A, math.Asin(s)) }
	case math.Abs(s) < 1:
		theta := math.Asin(s)
		return []complex128{
			cmplx.Rect(p.A, theta), cmplx.Rect(p.A, math.Pi - theta),
		}
	}

	// On the y axis, v(iy) = U (1 + a^2/y^2) + Gamma / (2 pi y), so the
	// stagnation points are the roots of U y^2 + (Gamma / 2 pi) y + U a^2.
	// Their product is a^2, so exactly one lies outside the cylinder.
	b := p.Gamma / (2*math.Pi)
	disc := math.Sqrt(b*b - 4*p.U*p.U*p.A*p.A)
	y1, y2 := (-b + disc)/(2*p.U), (-b - disc)/(2*p.U)
	if math.Abs(y1) >= math.Abs(y2) {
		return []complex128{ complex(0, y1) }
	}
	return []complex128{ complex(0, y2) }
}

// Lift returns the Kutta-Joukowski lift per unit span on the cylinder for a
// fluid of density rho. Positive lift points in the +y direction.
func Lift(p Params, rho float64) float64 { return rho * p.U * p.Gamma }
