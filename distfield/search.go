package distfield

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// noHit is returned by a search that found no cell of the wanted kind.
var noHit = float32(math.Inf(1))

// target selects which kind of cell a search looks for.
type target uint8

const (
	targetCovered target = iota
	targetUncovered
)

func (t target) String() string {
	if t == targetCovered {
		return "covered"
	}
	return "uncovered"
}

// nodeState classifies a quadtree node relative to a search target.
type nodeState uint8

const (
	nodeMixed nodeState = iota
	nodeFull            // every cell below is the target kind
	nodeEmpty           // no cell below is the target kind
)

func (h *Hierarchy) state(t target, level int, idx uint32) nodeState {
	allCovered := h.min[level][idx] > midpoint
	noneCovered := h.max[level][idx] <= midpoint

	if t == targetCovered {
		switch {
		case allCovered:
			return nodeFull
		case noneCovered:
			return nodeEmpty
		}
		return nodeMixed
	}

	switch {
	case noneCovered:
		return nodeFull
	case allCovered:
		return nodeEmpty
	}
	return nodeMixed
}

// NearestCoveredSq returns the squared distance from p to the nearest
// covered cell, or +Inf when the mask has no covered cell.
func (h *Hierarchy) NearestCoveredSq(p mgl32.Vec2) float32 {
	return h.nearestSq(targetCovered, 0, h.Levels(), rootBox(h.size), p)
}

// NearestUncoveredSq returns the squared distance from p to the nearest
// uncovered cell, or +Inf when every cell is covered.
func (h *Hierarchy) NearestUncoveredSq(p mgl32.Vec2) float32 {
	return h.nearestSq(targetUncovered, 0, h.Levels(), rootBox(h.size), p)
}

// nearestSq is the branch-and-bound descent. Children are visited in index
// order and a child is entered only when its box is strictly closer than
// the best hit among its earlier siblings.
func (h *Hierarchy) nearestSq(t target, idx uint32, level int, box bbox, p mgl32.Vec2) float32 {
	switch h.state(t, level, idx) {
	case nodeFull:
		return box.distanceSq(p)
	case nodeEmpty:
		return noHit
	}

	if level == 0 {
		return mixedLeaf(t, idx)
	}

	level--
	first := idx << 2
	best := noHit
	for q := range uint32(4) {
		child := box.quadrant(q)
		if child.distanceSq(p) >= best {
			continue
		}
		if d := h.nearestSq(t, first+q, level, child, p); d < best {
			best = d
			if best == 0 {
				return 0
			}
		}
	}
	return best
}

// mixedLeaf handles a level-0 node that is neither full nor empty. The
// sdfdebug build panics; other builds treat the cell as holding no target.
func mixedLeaf(t target, idx uint32) float32 {
	if checkInvariants {
		panic(&InvariantError{Search: t.String(), Index: idx})
	}
	return noHit
}
