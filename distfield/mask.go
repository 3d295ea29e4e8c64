package distfield

import (
	"fmt"
	"image"

	"github.com/gogpu/makesdf/internal/parallel"
)

const (
	// Covered is the mask value of a covered cell.
	Covered = 255

	// Uncovered is the mask value of an empty or padding cell.
	Uncovered = 0

	// midpoint splits hierarchy summaries: above it a min-summary means
	// fully covered, at or below it a max-summary means fully empty.
	midpoint = 127
)

// Mask is a thresholded coverage bitmap stored in Morton order.
type Mask struct {
	// Level is the quadtree depth; the mask is Size x Size with
	// Size = 1 << Level.
	Level int

	// Size is the padded edge length in cells.
	Size int

	// Cells holds Size*Size values, each Covered or Uncovered, indexed by
	// MortonIndex(x, y).
	Cells []byte
}

// At returns the mask value of cell (x, y).
func (m *Mask) At(x, y int) byte {
	if x < 0 || y < 0 || x >= m.Size || y >= m.Size {
		return Uncovered
	}
	return m.Cells[MortonIndex(uint32(x), uint32(y))]
}

// BuildMask thresholds the alpha channel of src. A pixel is covered when
// its alpha is at least threshold. Cells beyond the raster are uncovered.
func BuildMask(src *image.NRGBA, threshold uint8) (*Mask, error) {
	if threshold == 0 {
		return nil, &ConfigError{Field: "Threshold", Reason: "must be in [1, 255]"}
	}
	if err := checkRaster(src); err != nil {
		return nil, err
	}
	return buildMask(src, threshold, nil), nil
}

func checkRaster(src *image.NRGBA) error {
	if src == nil {
		return fmt.Errorf("%w: nil raster", ErrInvalidInput)
	}
	w, h := src.Rect.Dx(), src.Rect.Dy()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidInput, w, h)
	}
	if w > MaxDimension || h > MaxDimension {
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrInvalidInput, w, h, MaxDimension)
	}
	return nil
}

// buildMask fills the mask row by row. Rows touch disjoint cells, so bands
// run without synchronisation.
func buildMask(src *image.NRGBA, threshold uint8, pool *parallel.WorkerPool) *Mask {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	level := LevelFor(w, h)
	size := 1 << level

	m := &Mask{
		Level: level,
		Size:  size,
		Cells: make([]byte, size*size),
	}

	parallel.ForEachBand(pool, h, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := src.Pix[src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y):]
			ym := spreadBits(uint32(y)) << 1
			for x := 0; x < w; x++ {
				if row[4*x+3] >= threshold {
					m.Cells[spreadBits(uint32(x))|ym] = Covered
				}
			}
		}
	})

	return m
}
