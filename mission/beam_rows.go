package mission

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spaced/blackhole2d/sim"
	"github.com/spaced/blackhole2d/tuning"
)

const (
	rowMargin   = 40.0
	rowSpawnX   = -200.0
	spacingStep = 2
)

// BeamRows is mission 3: parallel beams of particles crossing the grid with
// no interaction with the hole. Spacing between rows is adjustable.
type BeamRows struct {
	name          string
	bg            Background
	width, height float64
	speed         float64
	countPerBeam  int

	spacing int
	paused  bool
	field   *sim.Field
}

func NewBeamRows(width, height float64, spec tuning.Spec) *BeamRows {
	return &BeamRows{
		name:         "Mission 3: Multiple Light Beams",
		bg:           NewBackground(width, height),
		width:        width,
		height:       height,
		speed:        spec.Beams.SpeedPx,
		countPerBeam: spec.Beams.CountPerBeam,
		spacing:      spec.Beams.SpacingPx,
	}
}

func (b *BeamRows) Name() string {
	return b.name
}

func (b *BeamRows) Init() {
	b.paused = false
	b.spawn()
}

func (b *BeamRows) spawn() {
	b.field = sim.NewBeamRows(b.height, rowMargin, rowSpawnX, b.spacing, b.countPerBeam, b.speed)
}

func (b *BeamRows) Update(dt float64) {
	if b.paused {
		return
	}
	b.field.Step(dt)
	b.field.WrapRight(b.width)
	b.field.CullVertical(b.height)
}

func (b *BeamRows) Handle(in Input) {
	switch {
	case in.TogglePause:
		b.paused = !b.paused
		log.Printf("%s: animation paused=%v", b.name, b.paused)
	case in.Reset:
		b.spawn()
		log.Printf("%s: beams reset", b.name)
	case in.SpacingDown:
		b.spacing = max(spacingStep, b.spacing-spacingStep)
		b.spawn()
		log.Printf("%s: spacing decreased to %d", b.name, b.spacing)
	case in.SpacingUp:
		b.spacing = min(int(b.height), b.spacing+spacingStep)
		b.spawn()
		log.Printf("%s: spacing increased to %d", b.name, b.spacing)
	}
}

func (b *BeamRows) Draw(screen *ebiten.Image) {
	b.bg.Draw(screen)
	drawField(screen, b.field)
}
