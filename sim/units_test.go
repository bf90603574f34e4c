package sim

import (
	"math"
	"testing"
)

func TestSchwarzschildRadius(t *testing.T) {
	cases := []struct {
		name   string
		massKg float64
		wantLo float64
		wantHi float64
	}{
		{"solar_ish", 2.0e30, 2900, 3000},
		{"tenth_solar", 2.0e29, 290, 300},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rs := SchwarzschildRadius(c.massKg)
			if rs < c.wantLo || rs > c.wantHi {
				t.Fatalf("expected r_s in [%v, %v] m, got %v", c.wantLo, c.wantHi, rs)
			}
		})
	}
}

func TestWorldConversions(t *testing.T) {
	w := NewWorld(2.0e30, 0.05, 1100, 800)

	if w.CenterX != 550 || w.CenterY != 400 {
		t.Fatalf("expected centre (550, 400), got (%v, %v)", w.CenterX, w.CenterY)
	}
	if got := w.WidthM(); got != 22000 {
		t.Fatalf("expected world width 22000 m, got %v", got)
	}
	if got := w.HeightM(); got != 16000 {
		t.Fatalf("expected world height 16000 m, got %v", got)
	}
	if math.Abs(w.RsPx-w.RsM*0.05) > 1e-9 {
		t.Fatalf("r_s pixel mapping inconsistent: %v px for %v m", w.RsPx, w.RsM)
	}

	t.Run("round_trip", func(t *testing.T) {
		p := Point{X: -4000, Y: 1250}
		px, py := w.ToScreen(p)
		back := w.ToWorld(px, py)
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
			t.Fatalf("round trip drifted: %v -> (%v, %v) -> %v", p, px, py, back)
		}
	})

	t.Run("light_speed_px", func(t *testing.T) {
		if got := w.LightSpeedPx(); math.Abs(got-LightSpeed*0.05) > 1e-6 {
			t.Fatalf("expected %v px/s, got %v", LightSpeed*0.05, got)
		}
	})
}
