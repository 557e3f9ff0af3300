package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"colorviz/internal/model"
)

func TestDefaultPaletteShape(t *testing.T) {
	p := DefaultPalette()
	assert.Len(t, p, 31)
	assert.Equal(t, "rosa choque", p[0].Name)
	assert.Equal(t, "branco", p[len(p)-1].Name)
}

func TestDefaultPaletteIsACopy(t *testing.T) {
	p := DefaultPalette()
	p[0].Name = "mutated"
	assert.Equal(t, "rosa choque", DefaultPalette()[0].Name)
}

func TestLongestNameFitsColorName(t *testing.T) {
	longest := len(UnknownColorName)
	for _, c := range DefaultPalette() {
		if len(c.Name) > longest {
			longest = len(c.Name)
		}
	}
	assert.Equal(t, model.MaxColorNameLen, longest)
	for _, c := range DefaultPalette() {
		assert.Equal(t, c.Name, model.NewColorName(c.Name).String())
	}
}

func TestLookup(t *testing.T) {
	c, ok := DefaultPalette().Lookup("verde água")
	assert.True(t, ok)
	assert.Equal(t, model.RGB{R: 21, G: 189, B: 116}, c.Ideal)
	_, ok = DefaultPalette().Lookup("ultravioleta")
	assert.False(t, ok)
}
