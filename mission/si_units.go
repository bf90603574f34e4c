package mission

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spaced/blackhole2d/sim"
	"github.com/spaced/blackhole2d/tuning"
)

// SIUnits is mission 5: the beam waves of mission 4 re-expressed in SI
// units. The disc radius comes from the Schwarzschild formula instead of a
// screen fraction, beams move at c, and the horizon test runs on the polar
// radius of each particle.
type SIUnits struct {
	name          string
	width, height float64
	countPerBeam  int
	massKg, ppm   float64

	world  *sim.World
	bg     Background
	paused bool
	field  *sim.Field
}

func NewSIUnits(width, height float64, spec tuning.Spec) *SIUnits {
	return &SIUnits{
		name:         "Mission 5: SI Units & Schwarzschild Radius",
		width:        width,
		height:       height,
		countPerBeam: spec.Beams.CountPerBeam,
		massKg:       spec.World.MassKg,
		ppm:          spec.World.PixelsPerMetre,
	}
}

func (s *SIUnits) Name() string {
	return s.name
}

func (s *SIUnits) Init() {
	s.paused = false
	s.world = sim.NewWorld(s.massKg, s.ppm, s.width, s.height)
	s.bg = Background{
		Width:    s.width,
		Height:   s.height,
		CenterX:  s.world.CenterX,
		CenterY:  s.world.CenterY,
		RadiusPx: s.world.RsPx,
	}
	s.spawn()
}

func (s *SIUnits) spawn() {
	// Margin and spacing derive from the world: one twentieth of the world
	// height each, converted to pixels. Beams start a tenth of the world
	// width off the left edge.
	marginPx := s.world.HeightM() / 20 * s.ppm
	spacingPx := max(2, int(s.world.HeightM()/20*s.ppm))
	x0 := -s.world.WidthM() * 0.1 * s.ppm
	s.field = sim.NewBeamRows(s.height, marginPx, x0, spacingPx, s.countPerBeam, s.world.LightSpeedPx())
}

func (s *SIUnits) Update(dt float64) {
	if s.paused {
		return
	}
	s.field.Step(dt)
	s.field.UpdatePolar(s.world.CenterX, s.world.CenterY)
	s.field.AbsorbRadial(s.world.RsPx)
	s.field.CullRight(s.width)
	if !s.field.AnyAlive() {
		s.spawn()
	}
}

func (s *SIUnits) Handle(in Input) {
	switch {
	case in.TogglePause:
		s.paused = !s.paused
		log.Printf("%s: animation paused=%v", s.name, s.paused)
	case in.Reset:
		s.spawn()
		log.Printf("%s: beams reset", s.name)
	}
}

func (s *SIUnits) Draw(screen *ebiten.Image) {
	s.bg.Draw(screen)
	drawField(screen, s.field)
}
