package sim

import "math"

// AnalyticDeflection returns the weak-field deflection angle 2 r_s / b in
// radians for impact parameter b metres. b == 0 yields +Inf.
func AnalyticDeflection(rsM, b float64) float64 {
	if b == 0 {
		return math.Inf(1)
	}
	return 2 * rsM / b
}

// WrapPi normalizes an angle into [-pi, pi).
func WrapPi(a float64) float64 {
	m := math.Mod(a+math.Pi, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	return m - math.Pi
}

// Validator wraps a geodesic with far-field deflection measurement against
// the analytic weak-field value.
type Validator struct {
	*Geodesic

	InitialHeading float64 // radians
	ImpactB        float64 // metres, |y0| for rays launched from far left
	Analytic       float64 // radians

	Measured   bool
	Deflection float64 // radians, once measured
}

func NewValidator(pos, vel Point, rsM, cMS float64, maxTrail int) *Validator {
	v := &Validator{
		Geodesic:       NewGeodesic(pos, vel, rsM, cMS, maxTrail),
		InitialHeading: math.Atan2(vel.Y, vel.X),
		ImpactB:        math.Abs(pos.Y),
	}
	v.Analytic = AnalyticDeflection(rsM, v.ImpactB)
	return v
}

// TryMeasure records the outgoing deflection once the geodesic has reached
// the right-hand far field (x > measureX and r > measureR, both metres). The
// outgoing direction is approximated from the last two trail points. Returns
// true the one time a measurement is taken.
func (v *Validator) TryMeasure(measureX, measureR float64) bool {
	if v.Measured {
		return false
	}
	trail := v.Trail()
	if len(trail) < 2 {
		return false
	}
	if !(v.X > measureX && v.R() > measureR) {
		return false
	}

	last := trail[len(trail)-1]
	prev := trail[len(trail)-2]
	dx := last.X - prev.X
	dy := last.Y - prev.Y
	if dx == 0 && dy == 0 {
		return false
	}

	v.Deflection = WrapPi(math.Atan2(dy, dx) - v.InitialHeading)
	v.Measured = true
	return true
}

// Ratio returns measured over analytic deflection, or NaN when the analytic
// value is not finite.
func (v *Validator) Ratio() float64 {
	if !math.IsInf(v.Analytic, 0) && v.Analytic != 0 {
		return v.Deflection / v.Analytic
	}
	return math.NaN()
}
