package sim

import (
	"image/color"
	"math"
)

// GFactor returns the gravitational frequency factor g(r) = sqrt(1 - r_s/r),
// clamped to zero at and inside the horizon.
func GFactor(rM, rsM float64) float64 {
	if rM <= rsM {
		return 0
	}
	v := 1.0 - rsM/rM
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}

// RGB is a normalized color triple.
type RGB struct {
	R, G, B float64
}

var (
	// Strong redshift (g near 0) renders warm red; the far field (g near 1)
	// renders a cool pale blue.
	shiftWarm = RGB{R: 1.0, G: 0.2, B: 0.0}
	shiftCool = RGB{R: 0.7, G: 0.85, B: 1.0}
)

// ShiftColor maps g in [0, 1] to the warm-to-cool redshift ramp.
func ShiftColor(g float64) RGB {
	if g < 0 {
		g = 0
	}
	if g > 1 {
		g = 1
	}
	return RGB{
		R: (1-g)*shiftWarm.R + g*shiftCool.R,
		G: (1-g)*shiftWarm.G + g*shiftCool.G,
		B: (1-g)*shiftWarm.B + g*shiftCool.B,
	}
}

// NRGBA converts the color to 8-bit with the given alpha in [0, 1].
func (c RGB) NRGBA(alpha float64) color.NRGBA {
	clamp := func(v float64) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v*255 + 0.5)
	}
	return color.NRGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(alpha)}
}
