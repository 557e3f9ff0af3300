package vision

import "colorviz/internal/model"

// ReferenceColor pairs the reading this device's sensor produces for a
// physical reference color with the canonical value that stands for it.
type ReferenceColor struct {
	Name   string    `json:"name"`
	Sensor model.RGB `json:"sensor"`
	Ideal  model.RGB `json:"ideal"`
}

type Palette []ReferenceColor

func ref(name string, sr, sg, sb, ir, ig, ib uint8) ReferenceColor {
	return ReferenceColor{
		Name:   name,
		Sensor: model.RGB{R: sr, G: sg, B: sb},
		Ideal:  model.RGB{R: ir, G: ig, B: ib},
	}
}

// Sensor signatures were captured with the TCS34725 under the same lighting
// AmbientReferenceScale was tuned for. Order matters for ties.
var defaultPalette = Palette{
	ref("rosa choque", 191, 96, 147, 255, 20, 147),
	ref("vermelho", 168, 73, 76, 255, 0, 0),
	ref("vinho", 71, 66, 66, 90, 0, 0),

	ref("laranja claro", 252, 193, 147, 255, 156, 64),
	ref("laranja", 234, 137, 104, 255, 119, 0),
	ref("laranja escuro", 206, 96, 84, 255, 77, 0),

	ref("amarelo claro", 255, 255, 206, 247, 255, 99),
	ref("amarelo", 255, 255, 168, 255, 255, 0),
	ref("mostarda", 196, 193, 114, 205, 173, 0),

	ref("verde claro", 175, 255, 239, 152, 255, 152),
	ref("verde", 112, 209, 140, 7, 245, 7),
	ref("verde militar", 63, 96, 76, 58, 105, 22),
	ref("verde escuro", 50, 78, 232, 6, 59, 8),
	ref("verde água", 99, 186, 153, 21, 189, 116),

	ref("azul bebe", 155, 255, 255, 135, 206, 235),
	ref("azul ceu", 71, 147, 232, 0, 94, 255),
	ref("azul marinho", 40, 84, 127, 0, 0, 128),
	ref("azul petroleo", 45, 71, 79, 3, 17, 41),

	ref("lilas", 188, 242, 255, 200, 162, 200),
	ref("roxo", 96, 91, 147, 128, 0, 128),
	ref("violeta", 58, 86, 112, 58, 23, 87),

	ref("cinza claro", 173, 249, 252, 172, 176, 174),
	ref("cinza", 81, 119, 117, 87, 97, 88),
	ref("cinza escuro", 63, 91, 94, 49, 59, 59),
	ref("preto", 40, 61, 58, 0, 0, 0),

	ref("areia", 219, 255, 232, 222, 203, 164),
	ref("marrom", 89, 84, 71, 139, 69, 19),
	ref("marrom escuro", 58, 73, 68, 79, 44, 21),

	ref("rosa chiclete", 211, 150, 193, 255, 105, 180),
	ref("rosa bebe", 245, 245, 235, 247, 181, 173),
	ref("branco", 255, 255, 255, 255, 255, 255),
}

// DefaultPalette returns a copy of the compiled-in reference palette.
func DefaultPalette() Palette {
	out := make(Palette, len(defaultPalette))
	copy(out, defaultPalette)
	return out
}

// Lookup returns the first entry called name.
func (p Palette) Lookup(name string) (ReferenceColor, bool) {
	for _, c := range p {
		if c.Name == name {
			return c, true
		}
	}
	return ReferenceColor{}, false
}
