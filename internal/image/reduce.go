package image

import (
	"fmt"
	"image"

	"github.com/gogpu/makesdf/internal/color"
	"github.com/gogpu/makesdf/internal/parallel"
)

// minCoverage is the averaged alpha below which a reduced pixel keeps its
// premultiplied colour instead of being divided back out.
const minCoverage = 0.001

// Reduce box-filters src down to dw x dh.
//
// Every destination pixel averages the source block
// [x*sw/dw, (x+1)*sw/dw) x [y*sh/dh, (y+1)*sh/dh). Colour is averaged in
// linear light, weighted by alpha, and re-encoded with the display gamma
// afterwards, so transparent texels do not bleed dark fringes into edges.
// When the destination is larger than the source along an axis, each block
// is widened to one source pixel.
//
// Rows are processed in parallel on pool; pool may be nil.
func Reduce(src *image.NRGBA, dw, dh int, pool *parallel.WorkerPool) (*image.NRGBA, error) {
	if src == nil || src.Rect.Empty() {
		return nil, ErrEmptyImage
	}
	if dw <= 0 || dh <= 0 {
		return nil, fmt.Errorf("image: reduce to %dx%d: %w", dw, dh, ErrEmptyImage)
	}

	sw, sh := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))

	parallel.ForEachBand(pool, dh, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			y0, y1 := span(y, sh, dh)
			row := dst.Pix[y*dst.Stride:]
			for x := 0; x < dw; x++ {
				x0, x1 := span(x, sw, dw)
				c := boxAverage(src, x0, y0, x1, y1)
				row[4*x+0] = color.LinearToGammaU8(c.R)
				row[4*x+1] = color.LinearToGammaU8(c.G)
				row[4*x+2] = color.LinearToGammaU8(c.B)
				row[4*x+3] = color.F32ToU8(c.A)
			}
		}
	})

	return dst, nil
}

// span returns the source range [lo, hi) covered by destination index i.
// It is never empty and never leaves [0, src).
func span(i, src, dst int) (lo, hi int) {
	lo = i * src / dst
	hi = color.Clamp((i+1)*src/dst, lo+1, src)
	return lo, hi
}

// boxAverage returns the linear, un-premultiplied average of the block.
func boxAverage(src *image.NRGBA, x0, y0, x1, y1 int) color.ColorF32 {
	var sum color.ColorF32
	for y := y0; y < y1; y++ {
		p := src.Pix[src.PixOffset(src.Rect.Min.X+x0, src.Rect.Min.Y+y):]
		for x := x0; x < x1; x++ {
			a := color.U8ToF32(p[3])
			sum = sum.Add(color.ColorF32{
				R: color.GammaToLinearFast(p[0]) * a,
				G: color.GammaToLinearFast(p[1]) * a,
				B: color.GammaToLinearFast(p[2]) * a,
				A: a,
			})
			p = p[4:]
		}
	}

	n := float32((x1 - x0) * (y1 - y0))
	return sum.Scale(1 / n).Unpremultiply(minCoverage)
}
