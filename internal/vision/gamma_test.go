package vision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"colorviz/internal/model"
)

func TestDecodeSRGBSegments(t *testing.T) {
	assert.Equal(t, float32(0), DecodeSRGB(0))
	assert.InDelta(t, 0.04045/12.92, DecodeSRGB(0.04045), 1e-7)
	assert.InDelta(t, 0.23302202, DecodeSRGB(0.52), 1e-6)
	assert.InDelta(t, 1, DecodeSRGB(1), 1e-6)
}

func TestEncodeSRGBSegments(t *testing.T) {
	assert.InDelta(t, 0.012920001, EncodeSRGB(0.001), 1e-7)
	assert.InDelta(t, 0.84338915, EncodeSRGB(0.68), 1e-6)
	assert.InDelta(t, 1, EncodeSRGB(1), 1e-6)
	assert.Less(t, EncodeSRGB(-0.5), float32(0))
}

func TestByteFromUnitClamps(t *testing.T) {
	assert.Equal(t, uint8(0), byteFromUnit(-0.3))
	assert.Equal(t, uint8(255), byteFromUnit(1.7))
	assert.Equal(t, uint8(128), byteFromUnit(127.5/255))
}

func TestGammaRoundTripThroughIdentity(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := model.RGB{R: uint8(i), G: uint8(255 - i), B: uint8(i / 2)}
		out := simulateWith(c, Identity3, Identity3, Identity3)
		assert.InDelta(t, int(c.R), int(out.R), 1, "r=%d", i)
		assert.InDelta(t, int(c.G), int(out.G), 1, "g=%d", 255-i)
		assert.InDelta(t, int(c.B), int(out.B), 1, "b=%d", i/2)
	}
}

func TestPow32AgreesWithDoublePrecision(t *testing.T) {
	for i := 11; i < 256; i++ {
		x := (unitFromByte(uint8(i)) + 0.055) / 1.055
		want := float32(math.Pow(float64(x), 2.4))
		assert.Equal(t, want, DecodeSRGB(unitFromByte(uint8(i))), "byte=%d", i)
	}
}

// Inputs where a single-precision pow that is off by an ulp lands on the
// other side of a rounding boundary.
func TestSimulateRoundingBoundaries(t *testing.T) {
	cases := []struct {
		in   model.RGB
		v    model.Variant
		want model.RGB
	}{
		{model.RGB{R: 3, G: 94, B: 103}, model.VariantProtanopia, model.RGB{R: 0, G: 77, B: 103}},
		{model.RGB{R: 5, G: 154, B: 43}, model.VariantProtanopia, model.RGB{R: 243, G: 187, B: 43}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Simulate(tc.in, tc.v), "%v %s", tc.in, tc.v)
	}
}
