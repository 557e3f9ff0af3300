package vision

import (
	"github.com/chewxy/math32"

	"colorviz/internal/model"
)

// Calibration is a per-channel linear correction y = Slope*x + Intercept,
// fitted for one sensor against reference swatches.
type Calibration struct {
	Slope     [3]float32 `json:"slope"`
	Intercept [3]float32 `json:"intercept"`
}

// DefaultCalibration returns the fit measured on the prototype board.
func DefaultCalibration() Calibration {
	return Calibration{
		Slope:     [3]float32{1.0826, 1.0279, 1.6014},
		Intercept: [3]float32{-26.065, -39.116, -55.049},
	}
}

// Apply corrects each channel, clamps to [0,255] and truncates.
func (c Calibration) Apply(in model.RGB) model.RGB {
	return model.RGB{
		R: c.channel(0, in.R),
		G: c.channel(1, in.G),
		B: c.channel(2, in.B),
	}
}

func (c Calibration) channel(i int, x uint8) uint8 {
	v := float32(float32(x)*c.Slope[i]) + c.Intercept[i]
	return uint8(math32.Min(255, math32.Max(0, v)))
}
