package color

import "math"

// Gamma is the display exponent the colour reduction linearises with.
// Images are treated as plain power-law 2.2 rather than piecewise sRGB.
const Gamma = 2.2

// gammaToLinearLUT maps an encoded byte to its linear value in [0,1].
var gammaToLinearLUT [256]float32

func init() {
	for i := range gammaToLinearLUT {
		gammaToLinearLUT[i] = gammaToLinear(uint8(i))
	}
}

// GammaToLinearFast converts an encoded byte to linear float32 using the
// lookup table. It is called once per channel per source pixel.
func GammaToLinearFast(v uint8) float32 {
	return gammaToLinearLUT[v]
}

func gammaToLinear(v uint8) float32 {
	return float32(math.Pow(float64(v)/255.0, Gamma))
}

// LinearToGamma re-encodes a linear value in [0,1]. Inputs outside the
// range are clamped.
//
// There is no table for this direction: the curve is too steep near zero
// for a small table, and it runs once per output pixel only.
func LinearToGamma(l float32) float32 {
	return float32(math.Pow(float64(Clamp(l, 0, 1)), 1.0/Gamma))
}

// LinearToGammaU8 re-encodes a linear value straight to a byte.
func LinearToGammaU8(l float32) uint8 {
	return F32ToU8(LinearToGamma(l))
}
