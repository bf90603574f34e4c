package mission

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spaced/blackhole2d/sim"
	"github.com/spaced/blackhole2d/tuning"
)

// AbsorbingRows is mission 4: the beam rows of mission 3 plus the event
// horizon acting as an absorber. Once every particle has been swallowed or
// has left the screen, a fresh wave spawns.
type AbsorbingRows struct {
	BeamRows
	horizon *sim.Horizon
}

func NewAbsorbingRows(width, height float64, spec tuning.Spec) *AbsorbingRows {
	inner := NewBeamRows(width, height, spec)
	inner.name = "Mission 4: Multiple Beams + Collision"
	return &AbsorbingRows{
		BeamRows: *inner,
		horizon:  sim.NewHorizon(inner.bg.CenterX, inner.bg.CenterY, inner.bg.RadiusPx),
	}
}

func (a *AbsorbingRows) Update(dt float64) {
	if a.paused {
		return
	}
	a.field.Step(dt)
	a.field.AbsorbInside(a.horizon)
	a.field.CullRight(a.width)
	if !a.field.AnyAlive() {
		a.spawn()
	}
}

func (a *AbsorbingRows) Draw(screen *ebiten.Image) {
	a.bg.Draw(screen)
	drawField(screen, a.field)
}
