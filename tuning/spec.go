package tuning

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Spec holds the simulation tuning knobs. Values not present in the YAML
// keep their defaults.
type Spec struct {
	World WorldSpec `yaml:"world"`
	Beams BeamSpec  `yaml:"beams"`
	Clock ClockSpec `yaml:"clock"`
	Trail TrailSpec `yaml:"trail"`
}

type WorldSpec struct {
	MassKg         float64 `yaml:"mass_kg"`
	PixelsPerMetre float64 `yaml:"pixels_per_metre"`
}

type BeamSpec struct {
	// SpacingPx is the vertical gap between beam rows in the pixel-space
	// missions.
	SpacingPx    int     `yaml:"spacing_px"`
	CountPerBeam int     `yaml:"count_per_beam"`
	SpeedPx      float64 `yaml:"speed_px"`
	// Rows is the beam count for the SI-unit trail missions.
	Rows int `yaml:"rows"`
	// LayoutScript names a tengo script under tuning/scripts that computes
	// row offsets. Empty disables scripting.
	LayoutScript string `yaml:"layout_script"`
}

type ClockSpec struct {
	TimeScale   float64 `yaml:"time_scale"`
	FixedStepS  float64 `yaml:"fixed_step_s"`
	MaxSimStepS float64 `yaml:"max_sim_step_s"`
}

type TrailSpec struct {
	StraightMax int `yaml:"straight_max"`
	GeodesicMax int `yaml:"geodesic_max"`
}

// Default returns the built-in tuning used when no spec file is available.
func Default() Spec {
	return Spec{
		World: WorldSpec{
			MassKg:         2.0e30,
			PixelsPerMetre: 0.05,
		},
		Beams: BeamSpec{
			SpacingPx:    24,
			CountPerBeam: 80,
			SpeedPx:      220,
			Rows:         20,
			LayoutScript: "layout.tengo",
		},
		Clock: ClockSpec{
			TimeScale:   1e-5,
			FixedStepS:  1e-3,
			MaxSimStepS: 0.1,
		},
		Trail: TrailSpec{
			StraightMax: 800,
			GeodesicMax: 2000,
		},
	}
}

// LoadSpec reads simulation.yaml (disk override first, then the embedded
// copy) over the defaults. On failure the defaults are returned alongside
// the error.
func LoadSpec() (Spec, error) {
	data, err := Load("simulation.yaml")
	if err != nil {
		return Default(), fmt.Errorf("tuning: load simulation.yaml: %w", err)
	}
	spec := Default()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Default(), fmt.Errorf("tuning: unmarshal simulation.yaml: %w", err)
	}
	return spec, nil
}
