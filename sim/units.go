package sim

import "math"

// Physical constants in SI units.
const (
	GravConst  = 6.67430e-11 // m^3 kg^-1 s^-2
	LightSpeed = 299792458.0 // m/s
)

// Point is a position or velocity in the simulation plane.
type Point struct {
	X, Y float64
}

// SchwarzschildRadius returns r_s = 2GM/c^2 in metres.
func SchwarzschildRadius(massKg float64) float64 {
	return 2 * GravConst * massKg / (LightSpeed * LightSpeed)
}

// World maps between SI metres and screen pixels. The black hole sits at the
// screen centre; metre coordinates are relative to it.
type World struct {
	MassKg         float64
	PixelsPerMetre float64

	WidthPx, HeightPx float64
	CenterX, CenterY  float64
	RsM, RsPx         float64
}

func NewWorld(massKg, pixelsPerMetre, widthPx, heightPx float64) *World {
	rsM := SchwarzschildRadius(massKg)
	return &World{
		MassKg:         massKg,
		PixelsPerMetre: pixelsPerMetre,
		WidthPx:        widthPx,
		HeightPx:       heightPx,
		CenterX:        widthPx / 2,
		CenterY:        heightPx / 2,
		RsM:            rsM,
		RsPx:           rsM * pixelsPerMetre,
	}
}

func (w *World) WidthM() float64 {
	return w.WidthPx / w.PixelsPerMetre
}

func (w *World) HeightM() float64 {
	return w.HeightPx / w.PixelsPerMetre
}

// LightSpeedPx returns c in pixels per second for this mapping.
func (w *World) LightSpeedPx() float64 {
	return LightSpeed * w.PixelsPerMetre
}

// ToScreen converts a metre position relative to the hole into pixel
// coordinates.
func (w *World) ToScreen(p Point) (float64, float64) {
	return w.CenterX + p.X*w.PixelsPerMetre, w.CenterY + p.Y*w.PixelsPerMetre
}

// ToWorld converts pixel coordinates into metres relative to the hole.
func (w *World) ToWorld(px, py float64) Point {
	return Point{
		X: (px - w.CenterX) / w.PixelsPerMetre,
		Y: (py - w.CenterY) / w.PixelsPerMetre,
	}
}

// radius returns the polar radius of (x, y), guarding the origin.
func radius(x, y float64) float64 {
	r := math.Hypot(x, y)
	if r == 0 {
		return 1e-12
	}
	return r
}
