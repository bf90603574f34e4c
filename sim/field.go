package sim

import "math"

// Offscreen margin, in pixels, before a particle wraps or is culled.
const fieldMargin = 50.0

// Field is a set of light particles moving in pixel space. Positions use the
// screen convention (origin top-left, y growing downward).
type Field struct {
	Pos   []Point
	Vel   []Point
	Alive []bool
	// Polar holds (r, phi) per particle relative to a centre set by the last
	// UpdatePolar call. Nil until then.
	Polar []Point
}

// NewSingleBeam creates one particle just off the left edge at centre height,
// moving right at speed pixels per second.
func NewSingleBeam(width, height, speed float64) *Field {
	return &Field{
		Pos:   []Point{{X: -fieldMargin, Y: height / 2}},
		Vel:   []Point{{X: speed}},
		Alive: []bool{true},
	}
}

// NewBeamRows creates horizontal rows of particles every spacing pixels
// between margin and height-margin. Each row holds countPerBeam particles
// staggered 1.5 px apart starting at x0 so the beam reads as continuous.
func NewBeamRows(height, margin, x0 float64, spacing, countPerBeam int, speed float64) *Field {
	if spacing < 2 {
		spacing = 2
	}
	const stepPx = 1.5
	f := &Field{}
	for y := margin; y <= height-margin; y += float64(spacing) {
		for i := 0; i < countPerBeam; i++ {
			f.Pos = append(f.Pos, Point{X: x0 - float64(i)*stepPx, Y: y})
			f.Vel = append(f.Vel, Point{X: speed})
			f.Alive = append(f.Alive, true)
		}
	}
	return f
}

// Step advances every living particle by dt seconds.
func (f *Field) Step(dt float64) {
	for i := range f.Pos {
		if !f.Alive[i] {
			continue
		}
		f.Pos[i].X += f.Vel[i].X * dt
		f.Pos[i].Y += f.Vel[i].Y * dt
	}
}

// WrapRight respawns living particles that left the right edge back at the
// left, keeping their row so the beam formation holds.
func (f *Field) WrapRight(width float64) {
	for i := range f.Pos {
		if f.Alive[i] && f.Pos[i].X > width+fieldMargin {
			f.Pos[i].X = -fieldMargin
		}
	}
}

// CullRight permanently removes particles that left the right edge.
func (f *Field) CullRight(width float64) {
	for i := range f.Pos {
		if f.Pos[i].X > width+fieldMargin {
			f.Alive[i] = false
		}
	}
}

// CullVertical removes particles that drifted far above or below the screen.
func (f *Field) CullVertical(height float64) {
	for i := range f.Pos {
		if f.Pos[i].Y < -fieldMargin || f.Pos[i].Y >= height+fieldMargin {
			f.Alive[i] = false
		}
	}
}

// UpdatePolar recomputes (r, phi) per particle relative to (cx, cy).
func (f *Field) UpdatePolar(cx, cy float64) {
	if f.Polar == nil || len(f.Polar) != len(f.Pos) {
		f.Polar = make([]Point, len(f.Pos))
	}
	for i := range f.Pos {
		dx := f.Pos[i].X - cx
		dy := f.Pos[i].Y - cy
		f.Polar[i] = Point{X: math.Hypot(dx, dy), Y: math.Atan2(dy, dx)}
	}
}

// AbsorbRadial removes particles whose polar radius is inside rPx. Call
// UpdatePolar first.
func (f *Field) AbsorbRadial(rPx float64) {
	for i := range f.Polar {
		if f.Alive[i] && f.Polar[i].X <= rPx {
			f.Alive[i] = false
		}
	}
}

// AbsorbInside removes particles inside the horizon's collision space.
func (f *Field) AbsorbInside(h *Horizon) {
	for i := range f.Pos {
		if f.Alive[i] && h.Absorbs(f.Pos[i].X, f.Pos[i].Y) {
			f.Alive[i] = false
		}
	}
}

func (f *Field) AnyAlive() bool {
	for _, a := range f.Alive {
		if a {
			return true
		}
	}
	return false
}

func (f *Field) AliveCount() int {
	n := 0
	for _, a := range f.Alive {
		if a {
			n++
		}
	}
	return n
}
