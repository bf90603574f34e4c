package sim

import (
	"math"
	"testing"
)

func TestNewSingleBeam(t *testing.T) {
	f := NewSingleBeam(1100, 800, 220)
	if len(f.Pos) != 1 {
		t.Fatalf("expected a single particle, got %d", len(f.Pos))
	}
	if f.Pos[0].X != -50 || f.Pos[0].Y != 400 {
		t.Fatalf("expected spawn at (-50, 400), got %v", f.Pos[0])
	}
	if f.Vel[0].X != 220 || f.Vel[0].Y != 0 {
		t.Fatalf("expected rightward 220 px/s, got %v", f.Vel[0])
	}
}

func TestNewBeamRows(t *testing.T) {
	cases := []struct {
		name    string
		spacing int
		rows    int
	}{
		{"default_spacing", 24, 31}, // 40..760 step 24
		{"wide_spacing", 240, 4},    // 40, 280, 520, 760
		{"clamped_spacing", 1, 361}, // clamps to 2: 40..760 step 2
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := NewBeamRows(800, 40, -200, c.spacing, 80, 220)
			if got := len(f.Pos); got != c.rows*80 {
				t.Fatalf("expected %d particles (%d rows), got %d", c.rows*80, c.rows, got)
			}
			// First row is staggered 1.5 px apart behind x0.
			if f.Pos[0].X != -200 || f.Pos[1].X != -201.5 {
				t.Fatalf("expected stagger -200, -201.5, got %v, %v", f.Pos[0].X, f.Pos[1].X)
			}
			if f.Pos[0].Y != 40 {
				t.Fatalf("expected first row at y=40, got %v", f.Pos[0].Y)
			}
		})
	}
}

func TestFieldStepAndWrap(t *testing.T) {
	f := NewSingleBeam(1100, 800, 220)
	f.Step(10) // -50 + 2200 = 2150, past the right margin
	if f.Pos[0].X != 2150 {
		t.Fatalf("expected x=2150 after 10 s, got %v", f.Pos[0].X)
	}
	f.WrapRight(1100)
	if f.Pos[0].X != -50 {
		t.Fatalf("expected wrap back to x=-50, got %v", f.Pos[0].X)
	}
	if f.Pos[0].Y != 400 {
		t.Fatalf("wrap must keep the row, got y=%v", f.Pos[0].Y)
	}
}

func TestFieldCulls(t *testing.T) {
	f := &Field{
		Pos:   []Point{{X: 2000, Y: 400}, {X: 100, Y: -200}, {X: 100, Y: 400}},
		Vel:   []Point{{X: 220}, {X: 220}, {X: 220}},
		Alive: []bool{true, true, true},
	}
	f.CullRight(1100)
	f.CullVertical(800)
	want := []bool{false, false, true}
	for i, w := range want {
		if f.Alive[i] != w {
			t.Fatalf("particle %d: expected alive=%v, got %v", i, w, f.Alive[i])
		}
	}
	if f.AliveCount() != 1 || !f.AnyAlive() {
		t.Fatalf("expected exactly one survivor, got %d", f.AliveCount())
	}
}

func TestFieldPolarAbsorb(t *testing.T) {
	f := &Field{
		Pos:   []Point{{X: 560, Y: 400}, {X: 800, Y: 400}},
		Vel:   []Point{{X: 1}, {X: 1}},
		Alive: []bool{true, true},
	}
	f.UpdatePolar(550, 400)
	if math.Abs(f.Polar[0].X-10) > 1e-9 {
		t.Fatalf("expected r=10 for the inner particle, got %v", f.Polar[0].X)
	}
	f.AbsorbRadial(96)
	if f.Alive[0] {
		t.Fatalf("particle at r=10 should be absorbed inside r=96")
	}
	if !f.Alive[1] {
		t.Fatalf("particle at r=250 should survive")
	}
}

func TestFieldHorizonAbsorb(t *testing.T) {
	h := NewHorizon(550, 400, 96)
	f := &Field{
		Pos:   []Point{{X: 550, Y: 400}, {X: 640, Y: 400}, {X: 700, Y: 400}},
		Vel:   []Point{{X: 1}, {X: 1}, {X: 1}},
		Alive: []bool{true, true, true},
	}
	f.AbsorbInside(h)
	want := []bool{false, false, true}
	for i, w := range want {
		if f.Alive[i] != w {
			t.Fatalf("particle %d: expected alive=%v, got %v", i, w, f.Alive[i])
		}
	}
}

func TestHorizon(t *testing.T) {
	h := NewHorizon(100, 100, 20)
	if h.Radius() != 20 {
		t.Fatalf("expected radius 20, got %v", h.Radius())
	}
	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"centre", 100, 100, true},
		{"inside", 110, 100, true},
		{"well_outside", 200, 200, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := h.Absorbs(c.x, c.y); got != c.want {
				t.Fatalf("Absorbs(%v, %v): expected %v, got %v", c.x, c.y, c.want, got)
			}
		})
	}
}
