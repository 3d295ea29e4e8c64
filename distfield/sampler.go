package distfield

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/makesdf/internal/parallel"
)

// MaxDistance is the magnitude a distance saturates to when a search finds
// nothing: outside an image with no coverage at all, or inside one that is
// covered edge to edge. It encodes to the extreme byte values.
const MaxDistance float32 = 255

// interiorEpsilon is the smallest normal float32. An outer distance below
// it means the sample touches coverage.
const interiorEpsilon = 0x1p-126

// SamplePoint maps output pixel (ox, oy) of a dw x dh raster to a point in
// a sw x sh source, using integer arithmetic on the sample centre.
func SamplePoint(ox, oy, sw, sh, dw, dh int) mgl32.Vec2 {
	return mgl32.Vec2{
		float32((ox*sw + sw/2) / dw),
		float32((oy*sh + sh/2) / dh),
	}
}

// SignedDistance returns the distance from p to the coverage boundary:
// positive outside coverage, negative inside.
//
// The outer search runs first. When it reports zero, p touches a covered
// cell and the inner search supplies the negative distance instead, so
// the field stays continuous across the edge.
func (h *Hierarchy) SignedDistance(p mgl32.Vec2) float32 {
	outer := h.NearestCoveredSq(p)
	if outer == noHit {
		return MaxDistance
	}
	if d := sqrt32(outer); d >= interiorEpsilon {
		return d
	}

	inner := h.NearestUncoveredSq(p)
	if inner == noHit {
		return -MaxDistance
	}
	return -sqrt32(inner)
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

// Generator creates distance field rasters.
type Generator struct {
	config Config
}

// NewGenerator creates a new generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{
		config: config,
	}
}

// DefaultGenerator creates a new generator with default configuration.
func DefaultGenerator() *Generator {
	return NewGenerator(DefaultConfig())
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.config
}

// SetConfig updates the generator's configuration.
func (g *Generator) SetConfig(config Config) {
	g.config = config
}

// Field builds the coverage hierarchy of src.
func (g *Generator) Field(src *image.NRGBA) (*Hierarchy, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}
	if err := checkRaster(src); err != nil {
		return nil, err
	}

	pool := parallel.NewWorkerPool(g.config.Workers)
	defer pool.Close()

	return g.field(src, pool), nil
}

func (g *Generator) field(src *image.NRGBA, pool *parallel.WorkerPool) *Hierarchy {
	start := time.Now()
	m := buildMask(src, g.config.Threshold, pool)
	h := buildHierarchy(m, pool)

	slogger().Debug("distfield: hierarchy built",
		"src", src.Rect.Size(),
		"size", h.Size(),
		"levels", h.Levels()+1,
		"threshold", g.config.Threshold,
		"elapsed", time.Since(start))

	return h
}

// Generate bakes src into a dw x dh distance field.
func (g *Generator) Generate(src *image.NRGBA, dw, dh int) (*image.NRGBA, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}
	if err := checkRaster(src); err != nil {
		return nil, err
	}
	if dw < 1 || dh < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDegenerateGeometry, dw, dh)
	}

	pool := parallel.NewWorkerPool(g.config.Workers)
	defer pool.Close()

	h := g.field(src, pool)

	start := time.Now()
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	h.render(dst, src.Rect.Dx(), src.Rect.Dy(), pool)

	slogger().Debug("distfield: field sampled",
		"dst", dst.Rect.Size(),
		"workers", pool.Workers(),
		"elapsed", time.Since(start))

	return dst, nil
}

// render samples every pixel of dst against a sw x sh source. Rows are
// independent and the hierarchy is read-only, so bands need no locking.
func (h *Hierarchy) render(dst *image.NRGBA, sw, sh int, pool *parallel.WorkerPool) {
	dw, dh := dst.Rect.Dx(), dst.Rect.Dy()

	parallel.ForEachBand(pool, dh, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := dst.Pix[y*dst.Stride:]
			for x := 0; x < dw; x++ {
				c := Encode(h.SignedDistance(SamplePoint(x, y, sw, sh, dw, dh)))
				row[4*x+0] = c.R
				row[4*x+1] = c.G
				row[4*x+2] = c.B
				row[4*x+3] = c.A
			}
		}
	})
}
