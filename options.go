package makesdf

import "github.com/gogpu/makesdf/distfield"

// DefaultHeight is the output height used when WithHeight is not given.
const DefaultHeight = 64

// Option configures a Bake call.
//
// Example:
//
//	res, err := makesdf.Bake(ctx, src,
//	    makesdf.WithHeight(32),
//	    makesdf.WithThreshold(128),
//	)
type Option func(*options)

type options struct {
	height    int
	threshold uint8
	workers   int
}

func defaultOptions() options {
	cfg := distfield.DefaultConfig()
	return options{
		height:    DefaultHeight,
		threshold: cfg.Threshold,
		workers:   cfg.Workers,
	}
}

// WithHeight sets the output height in pixels. The width follows from the
// source aspect ratio.
func WithHeight(h int) Option {
	return func(o *options) {
		o.height = h
	}
}

// WithThreshold sets the lowest alpha that counts as covered, in [1, 255].
func WithThreshold(t uint8) Option {
	return func(o *options) {
		o.threshold = t
	}
}

// WithWorkers sets the number of goroutines per job. Zero uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func (o options) config() distfield.Config {
	return distfield.Config{
		Threshold: o.threshold,
		Workers:   o.workers,
	}
}
