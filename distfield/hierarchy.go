package distfield

import (
	"github.com/gogpu/makesdf/internal/parallel"
)

// minParallelCells is the level size below which a reduction runs on the
// calling goroutine.
const minParallelCells = 1 << 12

// Hierarchy is the pair of max/min quadtrees over a mask. Level 0 is the
// mask itself and level Levels() is the single root cell. It is read-only
// once built and safe for concurrent queries.
type Hierarchy struct {
	size int
	max  [][]byte
	min  [][]byte
}

// BuildHierarchy reduces m into its max and min quadtrees. Level 0 of both
// shares the mask cells.
func BuildHierarchy(m *Mask) *Hierarchy {
	return buildHierarchy(m, nil)
}

// buildHierarchy computes levels in ascending order. Within a level every
// parent is independent; ForEachBand returning is the barrier before the
// next level reads it.
func buildHierarchy(m *Mask, pool *parallel.WorkerPool) *Hierarchy {
	h := &Hierarchy{
		size: m.Size,
		max:  make([][]byte, m.Level+1),
		min:  make([][]byte, m.Level+1),
	}
	h.max[0] = m.Cells
	h.min[0] = m.Cells

	n := len(m.Cells)
	for i := 1; i <= m.Level; i++ {
		n >>= 2
		srcMax, srcMin := h.max[i-1], h.min[i-1]
		dstMax, dstMin := make([]byte, n), make([]byte, n)

		p := pool
		if n < minParallelCells {
			p = nil
		}
		parallel.ForEachBand(p, n, func(lo, hi int) {
			for idx := lo; idx < hi; idx++ {
				c := idx << 2
				dstMax[idx] = max(srcMax[c], srcMax[c+1], srcMax[c+2], srcMax[c+3])
				dstMin[idx] = min(srcMin[c], srcMin[c+1], srcMin[c+2], srcMin[c+3])
			}
		})

		h.max[i] = dstMax
		h.min[i] = dstMin
	}

	return h
}

// Levels returns the root level L; the hierarchy has L+1 levels.
func (h *Hierarchy) Levels() int {
	return len(h.max) - 1
}

// Size returns the edge length of the padded base mask.
func (h *Hierarchy) Size() int {
	return h.size
}

// Max returns the max-summary cells of level, in Morton order.
func (h *Hierarchy) Max(level int) []byte {
	return h.max[level]
}

// Min returns the min-summary cells of level, in Morton order.
func (h *Hierarchy) Min(level int) []byte {
	return h.min[level]
}
