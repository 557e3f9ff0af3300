package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"colorviz/internal/model"
)

func TestReadableText(t *testing.T) {
	assert.Equal(t, textBlack, ReadableText(model.RGB{R: 255, G: 255, B: 255}))
	assert.Equal(t, textBlack, ReadableText(model.RGB{R: 255, G: 255}))
	assert.Equal(t, textWhite, ReadableText(model.RGB{}))
	assert.Equal(t, textWhite, ReadableText(model.RGB{B: 128}))
}

func TestPerceptualDistance(t *testing.T) {
	assert.Zero(t, PerceptualDistance(model.RGB{R: 9}, model.RGB{R: 9}))
	assert.InDelta(t, 100, PerceptualDistance(model.RGB{}, model.RGB{R: 255, G: 255, B: 255}), 0.01)
}

func TestHexOfMatchesScreenFormat(t *testing.T) {
	for _, c := range []model.RGB{{R: 236, G: 177, B: 7}, {R: 255, G: 20, B: 147}, {}} {
		assert.Equal(t, c.Hex(), HexOf(c))
	}
	assert.Equal(t, "#ECB107", HexOf(model.RGB{R: 236, G: 177, B: 7}))
}
