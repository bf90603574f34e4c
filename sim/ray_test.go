package sim

import (
	"math"
	"testing"
)

func TestRayStraightLine(t *testing.T) {
	r := NewRay(Point{X: -1000, Y: 500}, Point{X: 100, Y: 0}, 1, 100)
	for i := 0; i < 10; i++ {
		r.Advance(1)
	}
	if math.Abs(r.X) > 1e-9 {
		t.Fatalf("expected x = 0 after 10 s at 100 m/s, got %v", r.X)
	}
	if r.Y != 500 {
		t.Fatalf("expected y unchanged at 500, got %v", r.Y)
	}
	if !r.IsAlive() {
		t.Fatalf("ray far from the horizon should stay alive")
	}
}

func TestRayHorizonCapture(t *testing.T) {
	// Aimed straight at the hole; must die crossing r_s and then stay put.
	r := NewRay(Point{X: -100, Y: 0}, Point{X: 10, Y: 0}, 5, 100)
	for i := 0; i < 50 && r.IsAlive(); i++ {
		r.Advance(1)
	}
	if r.IsAlive() {
		t.Fatalf("ray aimed at the hole should have been captured")
	}
	x := r.X
	r.Advance(1)
	if r.X != x {
		t.Fatalf("dead ray moved from %v to %v", x, r.X)
	}
}

func TestRayTrailCap(t *testing.T) {
	cases := []struct {
		name     string
		maxTrail int
		steps    int
		want     int
	}{
		{"under_cap", 50, 10, 11},
		{"at_cap", 10, 9, 10},
		{"over_cap", 10, 100, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewRay(Point{X: 0, Y: 1000}, Point{X: 1, Y: 0}, 0.1, c.maxTrail)
			for i := 0; i < c.steps; i++ {
				r.Advance(1)
			}
			if got := len(r.Trail()); got != c.want {
				t.Fatalf("expected trail length %d, got %d", c.want, got)
			}
			// Newest point must be the head.
			trail := r.Trail()
			head := r.Head()
			if trail[len(trail)-1] != head {
				t.Fatalf("trail tail %v does not match head %v", trail[len(trail)-1], head)
			}
		})
	}
}
