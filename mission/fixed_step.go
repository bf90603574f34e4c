package mission

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spaced/blackhole2d/sim"
	"github.com/spaced/blackhole2d/tuning"
)

// FixedStep is mission 6: rays tracked in metres and advanced on a fixed
// simulation timestep, rendered with fading trails. Mission 7 reuses it with
// a geodesic photon factory, which is the only difference between the two.
type FixedStep struct {
	name          string
	width, height float64
	spec          tuning.Spec
	maxTrail      int

	// newPhoton builds one photon from a start position and coordinate
	// velocity, both in SI units.
	newPhoton func(pos, vel sim.Point, w *sim.World, maxTrail int) sim.Photon

	world   *sim.World
	bg      Background
	stepper sim.Stepper
	rays    []sim.Photon
	paused  bool
}

func NewFixedStep(width, height float64, spec tuning.Spec) *FixedStep {
	return &FixedStep{
		name:     "Mission 6: Rays with Trails (Fixed Timestep)",
		width:    width,
		height:   height,
		spec:     spec,
		maxTrail: spec.Trail.StraightMax,
		newPhoton: func(pos, vel sim.Point, w *sim.World, maxTrail int) sim.Photon {
			return sim.NewRay(pos, vel, w.RsM, maxTrail)
		},
	}
}

// NewBending is mission 7: identical layout and clocking, but every ray is a
// Schwarzschild null geodesic instead of a straight line.
func NewBending(width, height float64, spec tuning.Spec) *FixedStep {
	return &FixedStep{
		name:     "Mission 7: Light Bending (Schwarzschild Null Geodesics)",
		width:    width,
		height:   height,
		spec:     spec,
		maxTrail: spec.Trail.GeodesicMax,
		newPhoton: func(pos, vel sim.Point, w *sim.World, maxTrail int) sim.Photon {
			return sim.NewGeodesic(pos, vel, w.RsM, sim.LightSpeed, maxTrail)
		},
	}
}

func (f *FixedStep) Name() string {
	return f.name
}

func (f *FixedStep) Init() {
	f.paused = false
	f.world = sim.NewWorld(f.spec.World.MassKg, f.spec.World.PixelsPerMetre, f.width, f.height)
	f.bg = Background{
		Width:    f.width,
		Height:   f.height,
		CenterX:  f.world.CenterX,
		CenterY:  f.world.CenterY,
		RadiusPx: f.world.RsPx,
	}
	f.stepper = sim.Stepper{
		TimeScale: f.spec.Clock.TimeScale,
		FixedStep: f.spec.Clock.FixedStepS,
		MaxAccum:  f.spec.Clock.MaxSimStepS,
	}
	f.spawn()
}

func (f *FixedStep) spawn() {
	marginM := f.world.HeightM() / 20
	ys := tuning.LayoutYs(f.world.HeightM(), marginM, f.spec.Beams.Rows, f.spec.Beams.LayoutScript)
	x0 := -f.world.WidthM()/2 + marginM

	f.rays = f.rays[:0]
	for _, y := range ys {
		f.rays = append(f.rays, f.newPhoton(
			sim.Point{X: x0, Y: y},
			sim.Point{X: sim.LightSpeed},
			f.world,
			f.maxTrail,
		))
	}
}

func (f *FixedStep) Update(dt float64) {
	if f.paused {
		return
	}
	f.stepper.Advance(dt, func(simDt float64) {
		for _, r := range f.rays {
			r.Advance(simDt)
		}
	})
	if !anyPhotonAlive(f.rays) {
		f.spawn()
	}
}

func (f *FixedStep) Handle(in Input) {
	switch {
	case in.TogglePause:
		f.paused = !f.paused
		log.Printf("%s: animation paused=%v", f.name, f.paused)
	case in.Reset:
		f.stepper.Reset()
		f.spawn()
		log.Printf("%s: rays reset", f.name)
	}
}

func (f *FixedStep) Draw(screen *ebiten.Image) {
	screen.Fill(trailBackdrop)
	drawTrails(screen, f.world, f.rays)
	f.bg.DrawDisc(screen)
}

// Rays exposes the photon set for the validation missions layered on top.
func (f *FixedStep) Rays() []sim.Photon {
	return f.rays
}

func anyPhotonAlive(rays []sim.Photon) bool {
	for _, r := range rays {
		if r.IsAlive() {
			return true
		}
	}
	return false
}
