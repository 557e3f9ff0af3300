package vision

import (
	"math"

	"github.com/chewxy/math32"
)

var gammaExponent float32 = 2.4

// DecodeSRGB converts a gamma encoded sRGB component in [0,1] to linear light.
func DecodeSRGB(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return pow32((c+0.055)/1.055, gammaExponent)
}

// EncodeSRGB converts a linear component back to gamma encoded sRGB.
// Negative values take the linear segment and are left for the caller to clamp.
func EncodeSRGB(v float32) float32 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return float32(1.055*pow32(v, 1/gammaExponent)) - 0.055
}

// pow32 is a correctly rounded single-precision power. math32.Pow can be off
// by an ulp, which is enough to flip a rounded output byte.
func pow32(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

func unitFromByte(b uint8) float32 {
	return float32(b) / 255
}

// byteFromUnit clamps v to [0,1], scales it to [0,255] and rounds half away
// from zero.
func byteFromUnit(v float32) uint8 {
	v = math32.Max(0, math32.Min(1, v))
	return uint8(math32.Round(v * 255))
}
