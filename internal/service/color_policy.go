package service

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"colorviz/internal/model"
)

var (
	textWhite = model.RGB{R: 255, G: 255, B: 255}
	textBlack = model.RGB{}
)

func toColorful(c model.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// ReadableText picks white or black text for a background, whichever has
// the higher WCAG contrast ratio.
func ReadableText(bg model.RGB) model.RGB {
	if contrast(toColorful(bg), toColorful(textWhite)) >= contrast(toColorful(bg), toColorful(textBlack)) {
		return textWhite
	}
	return textBlack
}

// PerceptualDistance is the CIE Lab distance between two colors, in Lab
// units scaled to 0..100.
func PerceptualDistance(a, b model.RGB) float64 {
	return toColorful(a).DistanceLab(toColorful(b)) * 100
}

// HexOf formats c as #RRGGBB in upper case, the way the device screen does.
func HexOf(c model.RGB) string {
	return strings.ToUpper(toColorful(c).Hex())
}

func contrast(a, b colorful.Color) float64 {
	la := relativeLuminance(a)
	lb := relativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
