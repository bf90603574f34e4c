package mission

import "github.com/spaced/blackhole2d/tuning"

// NewAll builds the nine missions in order. Construction is cheap; each
// mission allocates its simulation state in Init.
func NewAll(width, height float64, spec tuning.Spec) []Mission {
	return []Mission{
		NewGrid(width, height),
		NewSingleBeam(width, height, spec),
		NewBeamRows(width, height, spec),
		NewAbsorbingRows(width, height, spec),
		NewSIUnits(width, height, spec),
		NewFixedStep(width, height, spec),
		NewBending(width, height, spec),
		NewValidation(width, height, spec),
		NewRedshift(width, height, spec),
	}
}
