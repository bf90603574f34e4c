package sim

import (
	"math"
	"testing"
)

func TestGFactor(t *testing.T) {
	const rs = 3000.0
	cases := []struct {
		name string
		r    float64
		want float64
	}{
		{"at_horizon", rs, 0},
		{"inside_horizon", rs / 2, 0},
		{"two_rs", 2 * rs, math.Sqrt(0.5)},
		{"far_field", 1e12, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := GFactor(c.r, rs)
			if math.Abs(got-c.want) > 1e-6 {
				t.Fatalf("GFactor(%v): expected %v, got %v", c.r, c.want, got)
			}
		})
	}

	t.Run("monotone", func(t *testing.T) {
		prev := -1.0
		for r := rs; r < 20*rs; r += rs / 4 {
			g := GFactor(r, rs)
			if g < prev {
				t.Fatalf("g-factor decreased at r=%v: %v < %v", r, g, prev)
			}
			prev = g
		}
	})
}

func TestShiftColor(t *testing.T) {
	warm := ShiftColor(0)
	if warm != (RGB{R: 1.0, G: 0.2, B: 0.0}) {
		t.Fatalf("expected warm endpoint, got %+v", warm)
	}
	cool := ShiftColor(1)
	if cool != (RGB{R: 0.7, G: 0.85, B: 1.0}) {
		t.Fatalf("expected cool endpoint, got %+v", cool)
	}
	// Out-of-range inputs clamp to the endpoints.
	if ShiftColor(-2) != warm || ShiftColor(5) != cool {
		t.Fatalf("expected clamping to the ramp endpoints")
	}
}

func TestRGBNRGBA(t *testing.T) {
	c := RGB{R: 1, G: 0.5, B: 0}.NRGBA(0.4)
	if c.R != 255 || c.B != 0 {
		t.Fatalf("expected full red and no blue, got %+v", c)
	}
	if c.G != 128 {
		t.Fatalf("expected green 128, got %d", c.G)
	}
	if c.A != 102 {
		t.Fatalf("expected alpha 102, got %d", c.A)
	}
}
