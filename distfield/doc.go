// Package distfield bakes a single-channel signed distance field from the
// alpha coverage of a raster.
//
// A source pixel is covered when its alpha is at least the threshold. The
// field stores, for every output pixel, the distance in source pixels to
// the nearest cell of the opposite coverage: positive outside the shape,
// negative inside.
//
// # How It Works
//
// 1. Threshold alpha into a 0/255 mask padded to a power-of-two square and
// stored in Morton (Z) order, so the four children of node idx are always
// 4*idx+0..3.
//
// 2. Reduce the mask level by level into two quadtrees: one keeps the max of
// each 2x2 block (a node at or below 127 is entirely empty), the other the
// min (a node above 127 is entirely covered).
//
// 3. For each output pixel, search the trees branch-and-bound: the outer
// search looks for the nearest covered cell, and when the pixel is itself
// covered the inner search looks for the nearest empty one. Subtrees whose
// box is no closer than the best hit so far are never visited.
//
// 4. Encode the distance as R = d+128, G = |d|, B = sign, A = 255.
//
// # Usage
//
//	config := distfield.DefaultConfig()
//	config.Threshold = 128
//
//	gen := distfield.NewGenerator(config)
//	field, err := gen.Generate(src, 64, 64)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Shader Example
//
//	let d = textureSample(sdf_tex, samp, uv).r * 255.0 - 128.0;
//	let alpha = clamp(0.5 - d / length(fwidth(uv * src_size)), 0.0, 1.0);
//
// Distances are measured to cell boxes, not to an interpolated contour, so
// they are exact only up to one source pixel.
package distfield
