package distfield

import "github.com/go-gl/mathgl/mgl32"

// bbox is an integer box [min, max) in cell coordinates. Boxes are derived
// from the recursion path and never stored per node.
type bbox struct {
	min [2]uint32
	max [2]uint32
}

// rootBox returns the box of the quadtree root.
func rootBox(size int) bbox {
	s := uint32(size)
	return bbox{max: [2]uint32{s, s}}
}

// distanceSq returns the squared distance from p to the closest point of
// the box, zero when p is inside or on it.
func (b bbox) distanceSq(p mgl32.Vec2) float32 {
	var dx, dy float32
	if x := p.X(); x < float32(b.min[0]) {
		dx = float32(b.min[0]) - x
	} else if x > float32(b.max[0]) {
		dx = x - float32(b.max[0])
	}
	if y := p.Y(); y < float32(b.min[1]) {
		dy = float32(b.min[1]) - y
	} else if y > float32(b.max[1]) {
		dy = y - float32(b.max[1])
	}
	return dx*dx + dy*dy
}

// quadrant returns child box q of b. Bit 0 of q selects the upper x half
// and bit 1 the upper y half, matching the Morton child order.
func (b bbox) quadrant(q uint32) bbox {
	cx := (b.min[0] + b.max[0]) >> 1
	cy := (b.min[1] + b.max[1]) >> 1

	c := b
	if q&1 == 0 {
		c.max[0] = cx
	} else {
		c.min[0] = cx
	}
	if q&2 == 0 {
		c.max[1] = cy
	} else {
		c.min[1] = cy
	}
	return c
}
