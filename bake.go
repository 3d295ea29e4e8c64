package makesdf

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/makesdf/distfield"
	imageio "github.com/gogpu/makesdf/internal/image"
	"github.com/gogpu/makesdf/internal/parallel"
)

// ErrIncomplete is returned by Result.Save when either raster is missing.
var ErrIncomplete = errors.New("makesdf: result is incomplete")

// Result holds the rasters produced by Bake. Both have the same size.
type Result struct {
	// SDF is the encoded distance field.
	SDF *image.NRGBA

	// Color is the gamma-correct box-filtered reduction of the source.
	Color *image.NRGBA
}

// OutputSize returns the output dimensions for a w x h source reduced to
// the given height, keeping the aspect ratio with integer division.
// A width that rounds down to zero is raised to one.
func OutputSize(w, h, height int) (dw, dh int, err error) {
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("%w: source is %dx%d", distfield.ErrInvalidInput, w, h)
	}
	if height < 1 {
		return 0, 0, fmt.Errorf("%w: height %d", distfield.ErrDegenerateGeometry, height)
	}

	dw = height * w / h
	if dw < 1 {
		Logger().Warn("makesdf: output width rounds to zero, using 1",
			"src", image.Pt(w, h), "height", height)
		dw = 1
	}
	return dw, height, nil
}

// Bake computes the distance field and the colour reduction of src.
//
// The two jobs run concurrently and both must succeed; on any error no
// partial result is returned. ctx is checked before the jobs start.
func Bake(ctx context.Context, src *image.NRGBA, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cfg := o.config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", distfield.ErrInvalidInput)
	}

	sw, sh := src.Rect.Dx(), src.Rect.Dy()
	dw, dh, err := OutputSize(sw, sh, o.height)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	var res Result
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		sdf, err := distfield.NewGenerator(cfg).Generate(src, dw, dh)
		if err != nil {
			return fmt.Errorf("makesdf: distance field: %w", err)
		}
		res.SDF = sdf
		return nil
	})

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		pool := parallel.NewWorkerPool(o.workers)
		defer pool.Close()

		c, err := imageio.Reduce(src, dw, dh, pool)
		if err != nil {
			return fmt.Errorf("makesdf: colour: %w", err)
		}
		res.Color = c
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	Logger().Info("makesdf: baked",
		"src", image.Pt(sw, sh),
		"dst", image.Pt(dw, dh),
		"threshold", o.threshold,
		"elapsed", time.Since(start))

	return &res, nil
}

// Save writes the distance field to sdfPath and the colour image to
// colorPath as PNG.
func (r *Result) Save(sdfPath, colorPath string) error {
	if r == nil || r.SDF == nil || r.Color == nil {
		return ErrIncomplete
	}
	if err := imageio.SavePNG(sdfPath, r.SDF); err != nil {
		return fmt.Errorf("makesdf: save distance field: %w", err)
	}
	if err := imageio.SavePNG(colorPath, r.Color); err != nil {
		return fmt.Errorf("makesdf: save colour: %w", err)
	}

	Logger().Info("makesdf: saved", "sdf", sdfPath, "color", colorPath)
	return nil
}
