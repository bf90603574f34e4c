package sim

import "github.com/jakecoffman/cp"

// Horizon is the absorbing event-horizon disc, held in a chipmunk space so
// absorption is a point query against a static circle shape.
type Horizon struct {
	space  *cp.Space
	radius float64
}

func NewHorizon(cx, cy, radius float64) *Horizon {
	space := cp.NewSpace()
	space.AddShape(cp.NewCircle(space.StaticBody, radius, cp.Vector{X: cx, Y: cy}))
	return &Horizon{space: space, radius: radius}
}

// Absorbs reports whether the pixel position (x, y) lies on or inside the
// horizon disc.
func (h *Horizon) Absorbs(x, y float64) bool {
	info := h.space.PointQueryNearest(cp.Vector{X: x, Y: y}, 0, cp.SHAPE_FILTER_ALL)
	return info != nil && info.Shape != nil
}

func (h *Horizon) Radius() float64 {
	return h.radius
}
