package mission

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spaced/blackhole2d/sim"
	"github.com/spaced/blackhole2d/tuning"
)

// SingleBeam is mission 2: one light particle sweeping left to right across
// the grid, wrapping back to the left edge.
type SingleBeam struct {
	bg            Background
	width, height float64
	speed         float64

	paused bool
	field  *sim.Field
}

func NewSingleBeam(width, height float64, spec tuning.Spec) *SingleBeam {
	return &SingleBeam{
		bg:     NewBackground(width, height),
		width:  width,
		height: height,
		speed:  spec.Beams.SpeedPx,
	}
}

func (s *SingleBeam) Name() string {
	return "Mission 2: Single Light Beam"
}

func (s *SingleBeam) Init() {
	s.paused = false
	s.field = sim.NewSingleBeam(s.width, s.height, s.speed)
}

func (s *SingleBeam) Update(dt float64) {
	if s.paused {
		return
	}
	s.field.Step(dt)
	s.field.WrapRight(s.width)
}

func (s *SingleBeam) Handle(in Input) {
	if in.TogglePause {
		s.paused = !s.paused
		log.Printf("%s: animation paused=%v", s.Name(), s.paused)
	}
	if in.Reset {
		s.field = sim.NewSingleBeam(s.width, s.height, s.speed)
		log.Printf("%s: particle reset", s.Name())
	}
}

func (s *SingleBeam) Draw(screen *ebiten.Image) {
	s.bg.Draw(screen)
	drawField(screen, s.field)
}
