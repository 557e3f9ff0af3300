package vision

import "colorviz/internal/model"

// Smith & Pokorny cone fundamentals for linear sRGB.
var (
	linearToLMS = Mat3{
		{0.4002, 0.7076, -0.0808},
		{-0.2263, 1.1653, 0.0457},
		{0, 0, 0.9182},
	}
	lmsToLinear = Mat3{
		{1.8601, -1.1396, 0.2782},
		{0.3612, 0.6388, 0},
		{0, 0, 1.0890},
	}
)

// Dichromat projections in LMS space (Brettel, Viénot & Mollon).
var projections = map[model.Variant]Mat3{
	model.VariantProtanopia: {
		{0, 2.0234, -2.5258},
		{0, 1, 0},
		{0, 0, 1},
	},
	model.VariantDeuteranopia: {
		{1, 0, 0},
		{0.4942, 0, 0.4854},
		{0, 0, 1},
	},
	model.VariantTritanopia: {
		{1, 0, 0},
		{0, 1, 0},
		{-0.0393, 0.2319, 0},
	},
}

// Projection returns the LMS projection matrix for v. VariantNormal and
// unknown variants have none.
func Projection(v model.Variant) (Mat3, bool) {
	m, ok := projections[v]
	return m, ok
}

// Simulate shows how c appears to a dichromat of the given variant.
// VariantNormal returns c unchanged.
func Simulate(c model.RGB, v model.Variant) model.RGB {
	projection, ok := projections[v]
	if !ok {
		return c
	}
	return simulateWith(c, linearToLMS, projection, lmsToLinear)
}

func simulateWith(c model.RGB, toLMS, projection, fromLMS Mat3) model.RGB {
	linear := Vec3{
		DecodeSRGB(unitFromByte(c.R)),
		DecodeSRGB(unitFromByte(c.G)),
		DecodeSRGB(unitFromByte(c.B)),
	}
	lms := toLMS.MulVec(linear)
	projected := projection.MulVec(lms)
	back := fromLMS.MulVec(projected)
	return model.RGB{
		R: byteFromUnit(EncodeSRGB(back[0])),
		G: byteFromUnit(EncodeSRGB(back[1])),
		B: byteFromUnit(EncodeSRGB(back[2])),
	}
}
