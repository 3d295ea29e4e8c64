// Package color holds the colour arithmetic used by the colour reduction:
// float accumulators and the display gamma transfer functions.
package color

import "golang.org/x/exp/constraints"

// ColorF32 is a colour with float32 components. RGB may be gamma-encoded
// or linear depending on context; alpha is always linear.
type ColorF32 struct {
	R, G, B, A float32
}

// Add returns the component-wise sum c + o.
func (c ColorF32) Add(o ColorF32) ColorF32 {
	return ColorF32{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

// Scale returns every component multiplied by s.
func (c ColorF32) Scale(s float32) ColorF32 {
	return ColorF32{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// Unpremultiply divides RGB by alpha when alpha exceeds minAlpha and
// leaves the colour untouched otherwise.
func (c ColorF32) Unpremultiply(minAlpha float32) ColorF32 {
	if c.A <= minAlpha {
		return c
	}
	inv := 1 / c.A
	return ColorF32{R: c.R * inv, G: c.G * inv, B: c.B * inv, A: c.A}
}

// U8ToF32 maps a byte component [0,255] to [0,1].
func U8ToF32(v uint8) float32 {
	return float32(v) / 255.0
}

// F32ToU8 clamps v to [0,1] and converts it to a byte with rounding.
func F32ToU8(v float32) uint8 {
	return uint8(Clamp(v, 0, 1)*255.0 + 0.5)
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
