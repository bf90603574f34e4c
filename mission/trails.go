package mission

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/spaced/blackhole2d/common"
	"github.com/spaced/blackhole2d/sim"
)

const (
	particleRadius = 2.0
	trailWidth     = 1.5
	// Alpha ramp along a trail, faint tail to bright head.
	trailAlphaTail = 0.05
	trailAlphaHead = 1.0
)

// drawField draws every living particle of a pixel-space field.
func drawField(screen *ebiten.Image, f *sim.Field) {
	for i := range f.Pos {
		if !f.Alive[i] {
			continue
		}
		vector.DrawFilledCircle(screen, float32(f.Pos[i].X), float32(f.Pos[i].Y), particleRadius, beamColor, true)
	}
}

// drawTrails draws photon trails in white with alpha fading along the trail,
// plus a bright head point for living photons.
func drawTrails(screen *ebiten.Image, w *sim.World, photons []sim.Photon) {
	for _, p := range photons {
		trail := p.Trail()
		n := len(trail)
		for i := 1; i < n; i++ {
			x0, y0 := w.ToScreen(trail[i-1])
			x1, y1 := w.ToScreen(trail[i])
			a := common.Lerp(trailAlphaTail, trailAlphaHead, float64(i)/float64(n-1))
			clr := color.NRGBA{R: 255, G: 255, B: 255, A: uint8(a*255 + 0.5)}
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), trailWidth, clr, false)
		}
		if p.IsAlive() {
			hx, hy := w.ToScreen(p.Head())
			vector.DrawFilledCircle(screen, float32(hx), float32(hy), particleRadius, color.White, true)
		}
	}
}

// drawShifted draws photon trails coloured by the gravitational frequency
// factor. Mode "local" colours each point by its current radius; "infty"
// fixes the whole trail to the colour of its emission radius. Dead heads
// are drawn dimmed.
func drawShifted(screen *ebiten.Image, w *sim.World, photons []sim.Photon, mode string) {
	for _, p := range photons {
		trail := p.Trail()
		n := len(trail)
		var emitG float64
		if n > 0 {
			emitG = sim.GFactor(radiusOf(trail[0]), w.RsM)
		}
		for i := 1; i < n; i++ {
			g := emitG
			if mode == "local" {
				g = sim.GFactor(radiusOf(trail[i]), w.RsM)
			}
			a := common.Lerp(trailAlphaTail, trailAlphaHead, float64(i)/float64(n-1))
			x0, y0 := w.ToScreen(trail[i-1])
			x1, y1 := w.ToScreen(trail[i])
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), trailWidth, sim.ShiftColor(g).NRGBA(a), false)
		}
		if n == 0 {
			continue
		}
		g := emitG
		if mode == "local" {
			g = sim.GFactor(radiusOf(trail[n-1]), w.RsM)
		}
		alpha := 1.0
		if !p.IsAlive() {
			alpha = 0.4
		}
		hx, hy := w.ToScreen(p.Head())
		vector.DrawFilledCircle(screen, float32(hx), float32(hy), particleRadius, sim.ShiftColor(g).NRGBA(alpha), true)
	}
}

func radiusOf(p sim.Point) float64 {
	return math.Hypot(p.X, p.Y)
}
