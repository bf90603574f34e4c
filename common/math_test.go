package common

import (
	"math"
	"testing"
)

func TestLerpClamp(t *testing.T) {
	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"lerp_start", Lerp(2, 10, 0), 2},
		{"lerp_end", Lerp(2, 10, 1), 10},
		{"lerp_mid", Lerp(2, 10, 0.5), 6},
		{"clamp_low", Clamp(-1, 0, 5), 0},
		{"clamp_high", Clamp(9, 0, 5), 5},
		{"clamp_inside", Clamp(3, 0, 5), 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Fatalf("expected %v, got %v", c.want, c.got)
			}
		})
	}
}

func TestLinspace(t *testing.T) {
	t.Run("endpoints", func(t *testing.T) {
		vs := Linspace(-8, 8, 5)
		if len(vs) != 5 {
			t.Fatalf("expected 5 values, got %d", len(vs))
		}
		if vs[0] != -8 || vs[4] != 8 {
			t.Fatalf("expected endpoints -8 and 8, got %v and %v", vs[0], vs[4])
		}
		if math.Abs(vs[2]) > 1e-12 {
			t.Fatalf("expected midpoint 0, got %v", vs[2])
		}
	})
	t.Run("single", func(t *testing.T) {
		vs := Linspace(2, 4, 1)
		if len(vs) != 1 || vs[0] != 3 {
			t.Fatalf("expected [3], got %v", vs)
		}
	})
	t.Run("empty", func(t *testing.T) {
		if vs := Linspace(0, 1, 0); vs != nil {
			t.Fatalf("expected nil, got %v", vs)
		}
	})
}
