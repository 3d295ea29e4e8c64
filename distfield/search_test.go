package distfield

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// bruteNearestSq scans every cell of m for the nearest one with value want.
func bruteNearestSq(m *Mask, p mgl32.Vec2, want byte) float32 {
	best := float32(math.Inf(1))
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			if m.At(x, y) != want {
				continue
			}
			cell := bbox{
				min: [2]uint32{uint32(x), uint32(y)},
				max: [2]uint32{uint32(x + 1), uint32(y + 1)},
			}
			best = min(best, cell.distanceSq(p))
		}
	}
	return best
}

func sameDistance(a, b float32) bool {
	if math.IsInf(float64(a), 1) || math.IsInf(float64(b), 1) {
		return a == b
	}
	return math.Abs(float64(a-b)) <= 1e-4*math.Max(1, float64(b))
}

func TestBBoxDistanceSq(t *testing.T) {
	b := bbox{min: [2]uint32{2, 2}, max: [2]uint32{4, 6}}
	tests := []struct {
		p    mgl32.Vec2
		want float32
	}{
		{mgl32.Vec2{3, 3}, 0},
		{mgl32.Vec2{2, 2}, 0},
		{mgl32.Vec2{4, 6}, 0},
		{mgl32.Vec2{0, 3}, 4},
		{mgl32.Vec2{7, 3}, 9},
		{mgl32.Vec2{3, 8}, 4},
		{mgl32.Vec2{0, 0}, 8},
		{mgl32.Vec2{5.5, 7}, 3.25},
	}
	for _, tt := range tests {
		if got := b.distanceSq(tt.p); got != tt.want {
			t.Errorf("distanceSq(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestBBoxQuadrants(t *testing.T) {
	b := bbox{min: [2]uint32{4, 8}, max: [2]uint32{8, 12}}
	want := [4]bbox{
		{min: [2]uint32{4, 8}, max: [2]uint32{6, 10}},
		{min: [2]uint32{6, 8}, max: [2]uint32{8, 10}},
		{min: [2]uint32{4, 10}, max: [2]uint32{6, 12}},
		{min: [2]uint32{6, 10}, max: [2]uint32{8, 12}},
	}
	for q := range uint32(4) {
		if got := b.quadrant(q); got != want[q] {
			t.Errorf("quadrant(%d) = %+v, want %+v", q, got, want[q])
		}
	}
}

func TestQuadrantsMatchMortonChildren(t *testing.T) {
	// Walking quadrants from the root must land on the box of the cell
	// whose Morton index the walk spells out.
	const level = 4
	size := 1 << level
	for idx := uint32(0); idx < uint32(size*size); idx++ {
		box := rootBox(size)
		for l := level - 1; l >= 0; l-- {
			box = box.quadrant((idx >> (2 * l)) & 3)
		}
		x, y := MortonCoords(idx)
		if box.min != [2]uint32{x, y} || box.max != [2]uint32{x + 1, y + 1} {
			t.Fatalf("idx %d: box %+v, want cell (%d, %d)", idx, box, x, y)
		}
	}
}

func TestNearestCoveredSingleDot(t *testing.T) {
	h := BuildHierarchy(mustMask(t, dotImage(16, 16, 8, 8), 1))

	tests := []struct {
		p    mgl32.Vec2
		want float32
	}{
		{mgl32.Vec2{0, 0}, 128},
		{mgl32.Vec2{8, 8}, 0},
		{mgl32.Vec2{9, 9}, 0},
		{mgl32.Vec2{8.5, 8.5}, 0},
		{mgl32.Vec2{15, 8}, 36},
		{mgl32.Vec2{8, 0}, 64},
		{mgl32.Vec2{12, 12}, 18},
	}
	for _, tt := range tests {
		if got := h.NearestCoveredSq(tt.p); got != tt.want {
			t.Errorf("NearestCoveredSq(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestNearestUncoveredSolidBlock(t *testing.T) {
	// Opaque 8x8 block at (4,4) inside a 16x16 transparent raster.
	img := alphaImage(16, 16, func(x, y int) uint8 {
		if x >= 4 && x < 12 && y >= 4 && y < 12 {
			return 255
		}
		return 0
	})
	h := BuildHierarchy(mustMask(t, img, 1))

	tests := []struct {
		p    mgl32.Vec2
		want float32
	}{
		{mgl32.Vec2{8, 8}, 16},
		{mgl32.Vec2{5, 8}, 1},
		{mgl32.Vec2{4, 8}, 0},
		{mgl32.Vec2{0, 0}, 0},
	}
	for _, tt := range tests {
		if got := h.NearestUncoveredSq(tt.p); got != tt.want {
			t.Errorf("NearestUncoveredSq(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestSearchEmptyAndFull(t *testing.T) {
	empty := BuildHierarchy(mustMask(t, solidImage(8, 8, 0), 1))
	if got := empty.NearestCoveredSq(mgl32.Vec2{3, 3}); !math.IsInf(float64(got), 1) {
		t.Errorf("empty NearestCoveredSq = %v, want +Inf", got)
	}
	if got := empty.NearestUncoveredSq(mgl32.Vec2{3, 3}); got != 0 {
		t.Errorf("empty NearestUncoveredSq = %v, want 0", got)
	}

	full := BuildHierarchy(mustMask(t, solidImage(8, 8, 255), 1))
	if got := full.NearestUncoveredSq(mgl32.Vec2{3, 3}); !math.IsInf(float64(got), 1) {
		t.Errorf("full NearestUncoveredSq = %v, want +Inf", got)
	}
	if got := full.NearestCoveredSq(mgl32.Vec2{3, 3}); got != 0 {
		t.Errorf("full NearestCoveredSq = %v, want 0", got)
	}
}

func TestSearchMatchesBruteForce(t *testing.T) {
	tests := []struct {
		name    string
		seed    uint64
		w, h    int
		density float64
	}{
		{"sparse", 1, 33, 21, 0.02},
		{"half", 2, 24, 24, 0.5},
		{"dense", 3, 19, 40, 0.97},
		{"tiny", 4, 3, 2, 0.5},
		{"row", 5, 64, 1, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMask(t, randomImage(tt.seed, tt.w, tt.h, tt.density), 1)
			h := BuildHierarchy(m)

			step := max(1, m.Size/16)
			var points []mgl32.Vec2
			for y := 0; y <= m.Size; y += step {
				for x := 0; x <= m.Size; x += step {
					points = append(points, mgl32.Vec2{float32(x), float32(y)})
				}
			}
			points = append(points,
				mgl32.Vec2{0.5, 0.5},
				mgl32.Vec2{7, 13},
				mgl32.Vec2{11, 2},
				mgl32.Vec2{float32(m.Size) / 3, 1.25},
				mgl32.Vec2{-2, -3},
				mgl32.Vec2{float32(m.Size) + 4, float32(m.Size) / 2},
			)

			for _, p := range points {
				if got, want := h.NearestCoveredSq(p), bruteNearestSq(m, p, Covered); !sameDistance(got, want) {
					t.Fatalf("NearestCoveredSq(%v) = %v, want %v", p, got, want)
				}
				if got, want := h.NearestUncoveredSq(p), bruteNearestSq(m, p, Uncovered); !sameDistance(got, want) {
					t.Fatalf("NearestUncoveredSq(%v) = %v, want %v", p, got, want)
				}
			}
		})
	}
}

func TestSearchIsPure(t *testing.T) {
	h := BuildHierarchy(mustMask(t, randomImage(42, 40, 40, 0.3), 1))
	p := mgl32.Vec2{17, 23}

	first := h.NearestCoveredSq(p)
	for range 10 {
		if got := h.NearestCoveredSq(p); got != first {
			t.Fatalf("NearestCoveredSq changed between calls: %v then %v", first, got)
		}
	}
}

func BenchmarkNearestCoveredSq(b *testing.B) {
	h := BuildHierarchy(mustMask(b, randomImage(1, 512, 512, 0.01), 1))
	p := mgl32.Vec2{256, 256}

	b.ResetTimer()
	for range b.N {
		h.NearestCoveredSq(p)
	}
}
