package mission

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spaced/blackhole2d/sim"
	"github.com/spaced/blackhole2d/tuning"
)

const validationReportEvery = 5

// Validation is mission 8: the geodesics of mission 7 instrumented with
// far-field deflection measurement, compared against the weak-field analytic
// formula. Each measurement is logged; a summary prints every few
// measurements. A fresh batch launches once every ray is captured or
// measured.
type Validation struct {
	name          string
	width, height float64
	spec          tuning.Spec

	world   *sim.World
	bg      Background
	stepper sim.Stepper
	rays    []*sim.Validator
	paused  bool

	// Far-field gate in metres; rays right of measureX and outside measureR
	// are measured.
	measureX, measureR float64
	measureCount       int
}

func NewValidation(width, height float64, spec tuning.Spec) *Validation {
	return &Validation{
		name:   "Mission 8: Light Bending Validation",
		width:  width,
		height: height,
		spec:   spec,
	}
}

func (v *Validation) Name() string {
	return v.name
}

func (v *Validation) Init() {
	v.paused = false
	v.world = sim.NewWorld(v.spec.World.MassKg, v.spec.World.PixelsPerMetre, v.width, v.height)
	v.bg = Background{
		Width:    v.width,
		Height:   v.height,
		CenterX:  v.world.CenterX,
		CenterY:  v.world.CenterY,
		RadiusPx: v.world.RsPx,
	}
	v.stepper = sim.Stepper{
		TimeScale: v.spec.Clock.TimeScale,
		FixedStep: v.spec.Clock.FixedStepS,
		MaxAccum:  v.spec.Clock.MaxSimStepS,
	}
	v.measureX = v.world.WidthM() * 0.4
	v.measureR = math.Max(v.world.WidthM(), v.world.HeightM()) * 0.45
	v.spawn()
}

func (v *Validation) spawn() {
	marginM := v.world.HeightM() / 20
	ys := tuning.LayoutYs(v.world.HeightM(), marginM, v.spec.Beams.Rows, v.spec.Beams.LayoutScript)
	x0 := -v.world.WidthM()/2 + marginM

	v.rays = v.rays[:0]
	for _, y := range ys {
		v.rays = append(v.rays, sim.NewValidator(
			sim.Point{X: x0, Y: y},
			sim.Point{X: sim.LightSpeed},
			v.world.RsM,
			sim.LightSpeed,
			v.spec.Trail.GeodesicMax,
		))
	}
}

func (v *Validation) Update(dt float64) {
	if v.paused {
		return
	}
	v.stepper.Advance(dt, func(simDt float64) {
		for _, r := range v.rays {
			r.Advance(simDt)
		}
		v.attemptMeasurements()
	})
	if v.batchDone() {
		v.spawn()
	}
}

func (v *Validation) attemptMeasurements() {
	for _, r := range v.rays {
		if !r.TryMeasure(v.measureX, v.measureR) {
			continue
		}
		v.measureCount++
		log.Printf("%s: b=%.3e m measured=%.4f deg analytic=%.4f deg ratio=%.4f",
			v.name, r.ImpactB, deg(r.Deflection), deg(r.Analytic), r.Ratio())
		if v.measureCount%validationReportEvery == 0 {
			v.logSummary()
		}
	}
}

func (v *Validation) logSummary() {
	log.Printf("%s: summary of measured rays:", v.name)
	for _, r := range v.rays {
		if r.Measured {
			log.Printf("  b=%.3e m: measured=%.3f deg analytic=%.3f deg", r.ImpactB, deg(r.Deflection), deg(r.Analytic))
		}
	}
}

// batchDone reports whether every ray is retired: captured by the horizon or
// measured in the far field.
func (v *Validation) batchDone() bool {
	anyAlive := false
	allMeasured := true
	for _, r := range v.rays {
		if r.IsAlive() {
			anyAlive = true
		}
		if !r.Measured {
			allMeasured = false
		}
	}
	return !anyAlive || allMeasured
}

func (v *Validation) Handle(in Input) {
	switch {
	case in.TogglePause:
		v.paused = !v.paused
		log.Printf("%s: animation paused=%v", v.name, v.paused)
	case in.Reset:
		v.stepper.Reset()
		v.spawn()
		log.Printf("%s: rays reset", v.name)
	}
}

func (v *Validation) Draw(screen *ebiten.Image) {
	screen.Fill(trailBackdrop)
	drawTrails(screen, v.world, v.photons())
	v.bg.DrawDisc(screen)
}

func (v *Validation) photons() []sim.Photon {
	out := make([]sim.Photon, len(v.rays))
	for i, r := range v.rays {
		out[i] = r
	}
	return out
}

func deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
