package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/spaced/blackhole2d/common"
	"github.com/spaced/blackhole2d/mission"
	"github.com/spaced/blackhole2d/tuning"
)

type Game struct {
	frames int
	debug  bool

	input    *Input
	missions []mission.Mission
	active   int

	showHelp bool
	helpUI   *ebitenui.UI

	spec    tuning.Spec
	watcher *tuning.Watcher
}

func NewGame(startMission int, debug bool) *Game {
	spec, err := tuning.LoadSpec()
	if err != nil {
		log.Printf("using default tuning: %v", err)
	}

	g := &Game{
		debug: debug,
		input: NewInput(),
		spec:  spec,
	}
	g.missions = mission.NewAll(common.BaseWidth, common.BaseHeight, spec)
	g.active = clampMission(startMission) - 1
	g.missions[g.active].Init()
	g.helpUI = NewHelpUI(g)

	// Hot reload is best effort; without a tuning/ directory on disk the
	// embedded spec stays in force.
	if w, err := tuning.NewWatcher("tuning", "tuning/scripts"); err != nil {
		log.Printf("tuning watch disabled: %v", err)
	} else {
		g.watcher = w
	}
	return g
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()
	if g.input.Quit {
		return ebiten.Termination
	}

	g.pollTuning()

	if g.input.Help {
		g.showHelp = !g.showHelp
	}
	if g.showHelp {
		g.helpUI.Update()
		return nil
	}

	if n := g.input.SelectMission; n != 0 && n-1 != g.active {
		g.active = n - 1
		g.missions[g.active].Init()
		log.Printf("switched to %s", g.missions[g.active].Name())
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.missions[g.active].Handle(g.input.Mission)
	g.missions[g.active].Update(dt)

	return nil
}

// pollTuning applies edited tuning files to a rebuilt mission set, keeping
// the active mission selected.
func (g *Game) pollTuning() {
	if g.watcher == nil {
		return
	}
	select {
	case name := <-g.watcher.Events:
		spec, err := tuning.LoadSpec()
		if err != nil {
			log.Printf("tuning reload failed: %v", err)
			return
		}
		g.spec = spec
		g.missions = mission.NewAll(common.BaseWidth, common.BaseHeight, spec)
		g.missions[g.active].Init()
		g.helpUI = NewHelpUI(g)
		log.Printf("tuning reloaded from %s", name)
	case err := <-g.watcher.Errors:
		log.Printf("tuning watch error: %v", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.missions[g.active].Draw(screen)

	if g.showHelp {
		g.helpUI.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s    FPS: %.2f", g.missions[g.active].Name(), ebiten.ActualFPS()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func clampMission(n int) int {
	if n < 1 {
		return 1
	}
	if n > 9 {
		return 9
	}
	return n
}
