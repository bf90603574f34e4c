package sim

import "math"

// Geodesic is a null geodesic of the Schwarzschild metric restricted to the
// equatorial plane. Cartesian (X, Y) are metres relative to the hole; the
// integration state is (r, p_r, phi) in the affine parameter lambda, with
// conserved energy E and angular momentum L fixed at construction.
type Geodesic struct {
	X, Y float64 // metres

	rs, c     float64
	r, pr, ph float64
	dtDLambda float64
	E, L      float64

	alive    bool
	trail    []Point
	maxTrail int
}

// NewGeodesic builds a geodesic from a starting position (metres) and the
// initial coordinate velocity (m/s). The null condition fixes dt/dlambda,
// which in turn sets E and L.
func NewGeodesic(pos, vel Point, rsM, cMS float64, maxTrail int) *Geodesic {
	g := &Geodesic{
		X:        pos.X,
		Y:        pos.Y,
		rs:       rsM,
		c:        cMS,
		alive:    true,
		maxTrail: maxTrail,
	}
	g.r = radius(pos.X, pos.Y)
	g.ph = math.Atan2(pos.Y, pos.X)

	cosp := math.Cos(g.ph)
	sinp := math.Sin(g.ph)
	vr := vel.X*cosp + vel.Y*sinp
	omega := (-vel.X*sinp + vel.Y*cosp) / g.r

	f := 1.0 - g.rs/g.r

	// Null condition: (dr/dl)^2 + V_eff = E^2 with dr/dl = (dr/dt)(dt/dl),
	// rearranged for dt/dl from the initial coordinate velocity.
	g.dtDLambda = math.Sqrt(vr*vr/(f*f) + g.r*g.r*omega*omega/f)

	g.pr = vr * g.dtDLambda
	g.L = g.r * g.r * omega * g.dtDLambda
	g.E = f * g.dtDLambda

	g.trail = append(g.trail, Point{X: g.X, Y: g.Y})
	return g
}

// dVeffDr is the radial derivative of the effective potential,
// L^2 (-2/r^3 + 3 r_s / r^4).
func (g *Geodesic) dVeffDr(r float64) float64 {
	return g.L * g.L * (-2.0/(r*r*r) + 3.0*g.rs/(r*r*r*r))
}

func (g *Geodesic) derivatives(r, pr float64) (drDL, dprDL, dphDL float64) {
	return pr, -0.5 * g.dVeffDr(r), g.L / (r * r)
}

// StepRK4 advances the state by an affine parameter step dLambda, updates the
// Cartesian position, and marks the geodesic dead once inside the horizon.
func (g *Geodesic) StepRK4(dLambda float64) {
	if !g.alive {
		return
	}

	r0, pr0, ph0 := g.r, g.pr, g.ph

	k1r, k1p, k1h := g.derivatives(r0, pr0)
	k2r, k2p, k2h := g.derivatives(r0+0.5*dLambda*k1r, pr0+0.5*dLambda*k1p)
	k3r, k3p, k3h := g.derivatives(r0+0.5*dLambda*k2r, pr0+0.5*dLambda*k2p)
	k4r, k4p, k4h := g.derivatives(r0+dLambda*k3r, pr0+dLambda*k3p)

	g.r = r0 + (dLambda/6.0)*(k1r+2*k2r+2*k3r+k4r)
	g.pr = pr0 + (dLambda/6.0)*(k1p+2*k2p+2*k3p+k4p)
	g.ph = ph0 + (dLambda/6.0)*(k1h+2*k2h+2*k3h+k4h)

	g.X = g.r * math.Cos(g.ph)
	g.Y = g.r * math.Sin(g.ph)

	g.trail = append(g.trail, Point{X: g.X, Y: g.Y})
	if over := len(g.trail) - g.maxTrail; over > 0 {
		g.trail = g.trail[over:]
	}

	if g.r <= g.rs {
		g.alive = false
	}
}

// AffineStep converts a simulation time increment (seconds) into an affine
// parameter increment for this geodesic.
func (g *Geodesic) AffineStep(simDt float64) float64 {
	return simDt / g.dtDLambda
}

// Advance steps the geodesic by simDt seconds of simulation time, skipping
// degenerate affine steps.
func (g *Geodesic) Advance(simDt float64) {
	if !g.alive {
		return
	}
	dl := g.AffineStep(simDt)
	if math.IsNaN(dl) || math.IsInf(dl, 0) || dl <= 0 {
		return
	}
	g.StepRK4(dl)
}

func (g *Geodesic) Head() Point {
	return Point{X: g.X, Y: g.Y}
}

func (g *Geodesic) Trail() []Point {
	return g.trail
}

func (g *Geodesic) IsAlive() bool {
	return g.alive
}

func (g *Geodesic) R() float64 {
	return g.r
}

// NullInvariant returns p_r^2 + V_eff(r) - E^2, which a perfect integrator
// keeps at zero along the geodesic.
func (g *Geodesic) NullInvariant() float64 {
	f := 1.0 - g.rs/g.r
	veff := g.L * g.L / (g.r * g.r) * f
	return g.pr*g.pr + veff - g.E*g.E
}
