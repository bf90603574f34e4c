package mission

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spaced/blackhole2d/tuning"
)

// Redshift is mission 9: the validated geodesics of mission 8 recoloured by
// the gravitational redshift factor along each trail. Two observer modes are
// available: "local" shows the blueshift seen by a static observer at each
// point, "infty" shows the redshift relative to an observer at infinity.
type Redshift struct {
	Validation
	mode string
}

func NewRedshift(width, height float64, spec tuning.Spec) *Redshift {
	inner := NewValidation(width, height, spec)
	inner.name = "Mission 9: Gravitational Redshift Visualisation"
	return &Redshift{
		Validation: *inner,
		mode:       "local",
	}
}

func (r *Redshift) Handle(in Input) {
	if in.ToggleColor {
		if r.mode == "local" {
			r.mode = "infty"
		} else {
			r.mode = "local"
		}
		log.Printf("%s: color mode set to %s", r.name, r.mode)
		return
	}
	r.Validation.Handle(in)
}

func (r *Redshift) Draw(screen *ebiten.Image) {
	screen.Fill(trailBackdrop)
	drawShifted(screen, r.world, r.photons(), r.mode)
	r.bg.DrawDisc(screen)
}
