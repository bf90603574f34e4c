package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/spaced/blackhole2d/common"
	"github.com/spaced/blackhole2d/sim"
	"github.com/spaced/blackhole2d/tuning"
)

// deflect integrates Schwarzschild null geodesics without a window and prints
// measured deflection angles against the weak-field analytic value. Useful
// for checking integrator accuracy after tuning changes.
func main() {
	mass := flag.Float64("mass", 2e29, "black hole mass in kg")
	rays := flag.Int("rays", 0, "number of rays (0 uses the tuning spec)")
	step := flag.Float64("step", 1e-7, "simulation timestep in seconds")
	steps := flag.Int("steps", 2_000_000, "maximum integration steps per ray")
	flag.Parse()

	spec, err := tuning.LoadSpec()
	if err != nil {
		log.Printf("using default tuning: %v", err)
	}
	if *rays > 0 {
		spec.Beams.Rows = *rays
	}

	world := sim.NewWorld(*mass, spec.World.PixelsPerMetre, common.BaseWidth, common.BaseHeight)
	marginM := world.HeightM() / 20
	ys := tuning.LayoutYs(world.HeightM(), marginM, spec.Beams.Rows, spec.Beams.LayoutScript)
	x0 := -world.WidthM()/2 + marginM

	measureX := world.WidthM() * 0.4
	measureR := math.Max(world.WidthM(), world.HeightM()) * 0.45

	fmt.Printf("mass=%.3e kg  rs=%.3f m  rays=%d  step=%.1e s\n\n", *mass, world.RsM, len(ys), *step)
	fmt.Printf("%14s %14s %14s %10s  %s\n", "b (m)", "measured (deg)", "analytic (deg)", "ratio", "fate")

	escaped := 0
	for _, y := range ys {
		v := sim.NewValidator(
			sim.Point{X: x0, Y: y},
			sim.Point{X: sim.LightSpeed},
			world.RsM,
			sim.LightSpeed,
			spec.Trail.GeodesicMax,
		)
		for i := 0; i < *steps && v.IsAlive() && !v.Measured; i++ {
			v.Advance(*step)
			v.TryMeasure(measureX, measureR)
		}

		switch {
		case v.Measured:
			escaped++
			fmt.Printf("%14.4e %14.4f %14.4f %10.4f  escaped\n",
				v.ImpactB, deg(v.Deflection), deg(v.Analytic), v.Ratio())
		case !v.IsAlive():
			fmt.Printf("%14.4e %14s %14.4f %10s  captured\n", v.ImpactB, "-", deg(v.Analytic), "-")
		default:
			fmt.Printf("%14.4e %14s %14.4f %10s  step budget exhausted\n", v.ImpactB, "-", deg(v.Analytic), "-")
		}
	}

	if escaped == 0 {
		fmt.Fprintln(os.Stderr, "\nno ray escaped; lower -mass or raise -steps")
		os.Exit(1)
	}
}

func deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
