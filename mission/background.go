package mission

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const gridGap = 24.0

var (
	spaceColor = color.NRGBA{R: 8, G: 10, B: 18, A: 255}
	gridColor  = color.NRGBA{R: 31, G: 36, B: 51, A: 255}
	// Missions with trails skip the grid and clear to a slightly lighter
	// backdrop so faded trail ends stay visible.
	trailBackdrop = color.NRGBA{R: 20, G: 20, B: 26, A: 255}
	beamColor     = color.NRGBA{R: 255, G: 230, B: 140, A: 255}
)

// Background draws the coordinate grid and the event-horizon disc that every
// mission builds on.
type Background struct {
	Width, Height    float64
	CenterX, CenterY float64
	RadiusPx         float64
}

// NewBackground places the hole at the screen centre with the standard disc
// radius of 0.12 times the smaller screen dimension.
func NewBackground(width, height float64) Background {
	return Background{
		Width:    width,
		Height:   height,
		CenterX:  width / 2,
		CenterY:  height / 2,
		RadiusPx: 0.12 * math.Min(width, height),
	}
}

// Draw fills the backdrop, rules the grid, and draws the disc.
func (b Background) Draw(screen *ebiten.Image) {
	screen.Fill(spaceColor)
	for x := 0.0; x <= b.Width; x += gridGap {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(b.Height), 1, gridColor, false)
	}
	for y := 0.0; y <= b.Height; y += gridGap {
		vector.StrokeLine(screen, 0, float32(y), float32(b.Width), float32(y), 1, gridColor, false)
	}
	b.DrawDisc(screen)
}

// DrawDisc draws only the event-horizon disc.
func (b Background) DrawDisc(screen *ebiten.Image) {
	vector.DrawFilledCircle(screen, float32(b.CenterX), float32(b.CenterY), float32(b.RadiusPx), color.Black, true)
}
