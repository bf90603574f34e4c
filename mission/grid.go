package mission

import "github.com/hajimehoshi/ebiten/v2"

// Grid is mission 1: the static grid background and the event-horizon disc
// every later mission builds on.
type Grid struct {
	bg Background
}

func NewGrid(width, height float64) *Grid {
	return &Grid{bg: NewBackground(width, height)}
}

func (g *Grid) Name() string {
	return "Mission 1: Grid + Black Hole"
}

func (g *Grid) Init() {}

func (g *Grid) Update(dt float64) {}

func (g *Grid) Handle(in Input) {}

func (g *Grid) Draw(screen *ebiten.Image) {
	g.bg.Draw(screen)
}
