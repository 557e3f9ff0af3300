package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"colorviz/internal/model"
)

func TestCalibrationApply(t *testing.T) {
	cal := DefaultCalibration()
	assert.Equal(t, model.RGB{R: 112, G: 92, B: 149}, cal.Apply(model.RGB{R: 128, G: 128, B: 128}))
}

func TestCalibrationClamps(t *testing.T) {
	cal := DefaultCalibration()
	assert.Equal(t, model.RGB{}, cal.Apply(model.RGB{}))
	assert.Equal(t, uint8(255), cal.Apply(model.RGB{B: 255}).B)
}
