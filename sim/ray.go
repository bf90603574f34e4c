package sim

import "math"

// Photon is anything the trail renderer can draw and the fixed-step loop can
// advance: straight rays and Schwarzschild geodesics both satisfy it.
type Photon interface {
	// Advance moves the photon by simDt seconds of simulation time. Dead
	// photons stay put.
	Advance(simDt float64)
	Head() Point
	Trail() []Point
	IsAlive() bool
}

// Ray is a straight-line photon in metres, relative to the black hole at the
// origin. It keeps a bounded trail of recent positions for rendering.
type Ray struct {
	X, Y   float64 // metres
	VX, VY float64 // m/s
	R, Phi float64

	rs       float64
	alive    bool
	trail    []Point
	maxTrail int
}

func NewRay(pos, vel Point, rsM float64, maxTrail int) *Ray {
	r := &Ray{
		X:        pos.X,
		Y:        pos.Y,
		VX:       vel.X,
		VY:       vel.Y,
		rs:       rsM,
		alive:    true,
		maxTrail: maxTrail,
	}
	r.R = radius(r.X, r.Y)
	r.Phi = math.Atan2(r.Y, r.X)
	r.trail = append(r.trail, Point{X: r.X, Y: r.Y})
	return r
}

// Advance moves the ray in a straight line for dt seconds, appends to the
// trail, and kills the ray if it crossed the horizon.
func (r *Ray) Advance(dt float64) {
	if !r.alive {
		return
	}
	r.X += r.VX * dt
	r.Y += r.VY * dt
	r.R = radius(r.X, r.Y)
	r.Phi = math.Atan2(r.Y, r.X)
	r.appendTrail()
	if r.R <= r.rs {
		r.alive = false
	}
}

func (r *Ray) appendTrail() {
	r.trail = append(r.trail, Point{X: r.X, Y: r.Y})
	if over := len(r.trail) - r.maxTrail; over > 0 {
		r.trail = r.trail[over:]
	}
}

func (r *Ray) Head() Point {
	return Point{X: r.X, Y: r.Y}
}

func (r *Ray) Trail() []Point {
	return r.trail
}

func (r *Ray) IsAlive() bool {
	return r.alive
}
