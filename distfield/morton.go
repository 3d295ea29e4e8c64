package distfield

// MaxDimension is the largest raster width or height accepted. Morton
// indices interleave two 16-bit coordinates into a uint32.
const MaxDimension = 1 << 16

// spreadBits moves the low 16 bits of n to the even bit positions.
func spreadBits(n uint32) uint32 {
	n &= 0x0000ffff
	n = (n | (n << 8)) & 0x00ff00ff
	n = (n | (n << 4)) & 0x0f0f0f0f
	n = (n | (n << 2)) & 0x33333333
	n = (n | (n << 1)) & 0x55555555
	return n
}

// compactBits is the inverse of spreadBits.
func compactBits(n uint32) uint32 {
	n &= 0x55555555
	n = (n | (n >> 1)) & 0x33333333
	n = (n | (n >> 2)) & 0x0f0f0f0f
	n = (n | (n >> 4)) & 0x00ff00ff
	n = (n | (n >> 8)) & 0x0000ffff
	return n
}

// MortonIndex interleaves x (even bits) and y (odd bits) into a Z-order
// index. Only the low 16 bits of each coordinate are used.
func MortonIndex(x, y uint32) uint32 {
	return spreadBits(x) | spreadBits(y)<<1
}

// MortonCoords returns the cell coordinates of a Morton index.
func MortonCoords(idx uint32) (x, y uint32) {
	return compactBits(idx), compactBits(idx >> 1)
}

// Children returns the indices of the four child cells of idx one level
// down, in quadrant order: (x0,y0), (x1,y0), (x0,y1), (x1,y1).
func Children(idx uint32) [4]uint32 {
	c := idx << 2
	return [4]uint32{c, c + 1, c + 2, c + 3}
}

// LevelFor returns the quadtree depth L such that 2^L is the smallest power
// of two not less than max(w, h).
func LevelFor(w, h int) int {
	n := max(w, h)
	level := 0
	for 1<<level < n {
		level++
	}
	return level
}
