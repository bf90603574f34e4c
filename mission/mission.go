// Package mission holds the nine simulation missions and the progression
// order the controller runs them in. Each mission owns its state and knows
// how to reset, advance, and draw itself; the controller feeds it frame time
// and distilled input actions.
package mission

import "github.com/hajimehoshi/ebiten/v2"

// Input is the per-frame action set forwarded to the active mission.
type Input struct {
	TogglePause bool
	Reset       bool
	SpacingDown bool
	SpacingUp   bool
	ToggleColor bool
}

// Mission is one demo level of the simulation.
type Mission interface {
	Name() string
	// Init builds (or rebuilds) the mission state. Called when the mission
	// becomes active and when it is reset.
	Init()
	Update(dt float64)
	Handle(in Input)
	Draw(screen *ebiten.Image)
}
