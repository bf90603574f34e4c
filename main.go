package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spaced/blackhole2d/common"
)

func main() {
	startMission := flag.Int("mission", 1, "mission to start on (1-9)")
	debug := flag.Bool("debug", false, "enable the debug overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("SpaceD Mission Control")

	game := NewGame(*startMission, *debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
