package vision

import (
	"github.com/chewxy/math32"

	"colorviz/internal/model"
)

// UnknownColorName labels a reading when the palette has nothing to offer.
const UnknownColorName = "Desconhecida"

type Match struct {
	Index    int       `json:"index"`
	Name     string    `json:"name"`
	Ideal    model.RGB `json:"ideal"`
	Distance float32   `json:"distance"`
}

// Found reports whether a palette entry was matched.
func (m Match) Found() bool {
	return m.Index >= 0
}

// Match finds the entry whose sensor signature is nearest to c in RGB space
// and returns its canonical color in place of c. The first entry at the
// minimum distance wins. An empty palette yields UnknownColorName and c
// itself.
func (p Palette) Match(c model.RGB) Match {
	best := Match{Index: -1, Name: UnknownColorName, Ideal: c}
	for i, ref := range p {
		d := rgbDistance(c, ref.Sensor)
		if !best.Found() || d < best.Distance {
			best = Match{Index: i, Name: ref.Name, Ideal: ref.Ideal, Distance: d}
		}
	}
	return best
}

// MatchColor matches c against the default palette.
func MatchColor(c model.RGB) Match {
	return defaultPalette.Match(c)
}

func rgbDistance(a, b model.RGB) float32 {
	dr := float32(a.R) - float32(b.R)
	dg := float32(a.G) - float32(b.G)
	db := float32(a.B) - float32(b.B)
	return math32.Sqrt(float32(dr*dr) + float32(dg*dg) + float32(db*db))
}
