package sim

import (
	"math"
	"testing"
)

func TestWrapPi(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"small_positive", 0.5, 0.5},
		{"small_negative", -0.5, -0.5},
		{"pi_maps_to_minus_pi", math.Pi, -math.Pi},
		{"three_pi", 3 * math.Pi, -math.Pi},
		{"minus_three_halves_pi", -1.5 * math.Pi, 0.5 * math.Pi},
		{"full_turn", 2 * math.Pi, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := WrapPi(c.in); math.Abs(got-c.want) > 1e-12 {
				t.Fatalf("WrapPi(%v): expected %v, got %v", c.in, c.want, got)
			}
		})
	}
}

func TestAnalyticDeflection(t *testing.T) {
	if got := AnalyticDeflection(3000, 150000); math.Abs(got-0.04) > 1e-12 {
		t.Fatalf("expected 0.04 rad, got %v", got)
	}
	if got := AnalyticDeflection(3000, 0); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf for b=0, got %v", got)
	}
}

func TestValidatorFarFieldGating(t *testing.T) {
	v := NewValidator(Point{X: -5000, Y: 200}, Point{X: LightSpeed}, 1, LightSpeed, 1000)

	// A fresh validator has a single trail point and sits left of the
	// measurement line; no measurement may happen.
	if v.TryMeasure(-10000, 0) {
		t.Fatalf("measured with a single-point trail")
	}

	simDt := 10.0 / LightSpeed
	v.Advance(simDt)
	if v.TryMeasure(2000, 2000) {
		t.Fatalf("measured while still left of the far-field line")
	}

	for i := 0; i < 2000 && !v.Measured; i++ {
		v.Advance(simDt)
		v.TryMeasure(2000, 2000)
	}
	if !v.Measured {
		t.Fatalf("validator never reached the far field, x=%v", v.X)
	}
	if again := v.TryMeasure(2000, 2000); again {
		t.Fatalf("second measurement should be rejected")
	}
	if math.IsNaN(v.Ratio()) {
		t.Fatalf("finite analytic deflection must give a finite ratio")
	}
}

func TestValidatorZeroImpactParameter(t *testing.T) {
	v := NewValidator(Point{X: -5000, Y: 0}, Point{X: LightSpeed}, 1, LightSpeed, 10)
	if !math.IsInf(v.Analytic, 1) {
		t.Fatalf("expected +Inf analytic deflection for b=0, got %v", v.Analytic)
	}
	if !math.IsNaN(v.Ratio()) {
		t.Fatalf("expected NaN ratio for infinite analytic deflection")
	}
}
