package sim

// Stepper turns variable frame time into deterministic fixed substeps. Frame
// time is scaled by TimeScale into simulation seconds, accumulated, clamped
// at MaxAccum to absorb hiccups, consumed in FixedStep increments, and any
// remainder is flushed as one partial step so motion stays smooth.
type Stepper struct {
	TimeScale float64 // simulation seconds per real second
	FixedStep float64 // substep size in simulation seconds
	MaxAccum  float64 // accumulator clamp in simulation seconds

	accum float64
}

// Advance feeds frameDt real seconds into the accumulator and invokes step
// for every substep taken.
func (s *Stepper) Advance(frameDt float64, step func(simDt float64)) {
	s.accum += frameDt * s.TimeScale
	if s.accum > s.MaxAccum {
		s.accum = s.MaxAccum
	}
	for s.accum >= s.FixedStep {
		step(s.FixedStep)
		s.accum -= s.FixedStep
	}
	if s.accum > 0 {
		step(s.accum)
		s.accum = 0
	}
}

// Reset drops any accumulated simulation time.
func (s *Stepper) Reset() {
	s.accum = 0
}
