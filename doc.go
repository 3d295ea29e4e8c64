// Package makesdf bakes a high-resolution RGBA image into a low-resolution
// signed distance field texture plus a matching colour texture.
//
// # Overview
//
// Coverage is taken from the alpha channel: a source pixel is covered when
// its alpha reaches the threshold. Each output pixel of the distance field
// stores the distance, in source pixels, from its sample point to the
// nearest boundary between covered and uncovered pixels. The colour output
// is a gamma-correct box-filtered reduction of the same source.
//
// # Quick Start
//
//	src, err := image.Load("glyph.png") // internal/image, or any *image.NRGBA
//	res, err := makesdf.Bake(ctx, src, makesdf.WithHeight(64))
//	err = res.Save("sdf.png", "dest.png")
//
// # Encoding
//
// A distance d is written as R = d+128, G = |d|, B = 255 when d < 0 and 0
// otherwise, A = 255. R is the channel a shader samples; G and B keep
// distances beyond the R range recoverable. See [distfield.Encode].
//
// # Architecture
//
//   - distfield: coverage mask, max/min quadtree, nearest-cell search, sampler
//   - glyph: text to source raster
//   - internal/image: decoding, PNG output, colour reduction
//   - internal/parallel: worker pool shared by mask, hierarchy and sampling
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to receive diagnostics
// from makesdf and distfield.
package makesdf
