package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spaced/blackhole2d/mission"
)

var missionKeys = []ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
	ebiten.KeyDigit6,
	ebiten.KeyDigit7,
	ebiten.KeyDigit8,
	ebiten.KeyDigit9,
}

// Input is the per-frame snapshot of pressed controls. SelectMission is the
// 1-based mission number, or 0 when no digit key was pressed.
type Input struct {
	Quit          bool
	Help          bool
	SelectMission int
	Mission       mission.Input
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	i.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.Help = inpututil.IsKeyJustPressed(ebiten.KeyH)

	i.SelectMission = 0
	for n, key := range missionKeys {
		if inpututil.IsKeyJustPressed(key) {
			i.SelectMission = n + 1
			break
		}
	}

	i.Mission = mission.Input{
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Reset:       inpututil.IsKeyJustPressed(ebiten.KeyR),
		SpacingDown: inpututil.IsKeyJustPressed(ebiten.KeyComma),
		SpacingUp:   inpututil.IsKeyJustPressed(ebiten.KeyPeriod),
		ToggleColor: inpututil.IsKeyJustPressed(ebiten.KeyC),
	}
}
