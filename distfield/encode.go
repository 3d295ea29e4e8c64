package distfield

import (
	"image/color"
	"math"

	sdfcolor "github.com/gogpu/makesdf/internal/color"
)

// encodeCeil keeps float-to-byte conversion below 256.
const encodeCeil = 255.99999

// Encode packs a signed distance into a pixel:
//
//	R = d + 128, clamped to [0, 255] (offset encoding, 128 is the edge)
//	G = |d|, clamped to [0, 255]
//	B = 0 when d >= 0, 255 when d < 0
//	A = 255
func Encode(d float32) color.NRGBA {
	c := color.NRGBA{A: 255}
	c.R = uint8(sdfcolor.Clamp(d+128, 0, encodeCeil))
	c.G = uint8(sdfcolor.Clamp(float32(math.Abs(float64(d))), 0, encodeCeil))
	if d < 0 {
		c.B = 255
	}
	return c
}

// Decode recovers the signed distance from an encoded pixel. The offset
// channel saturates at -128 and +127; beyond that the magnitude channel
// and sign are used.
func Decode(c color.NRGBA) float32 {
	d := float32(c.R) - 128
	if c.R == 0 || c.R == 255 {
		d = float32(c.G)
		if c.B != 0 {
			d = -d
		}
	}
	return d
}
