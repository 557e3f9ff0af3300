package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorviz/internal/model"
	"colorviz/internal/vision"
)

func TestSimulatedCyclesPalette(t *testing.T) {
	p := vision.Palette{
		{Name: "a", Sensor: model.RGB{R: 255}},
		{Name: "b", Sensor: model.RGB{G: 255}},
	}
	s := NewSimulated(p, 2, 0, 1)
	var reds []uint16
	for i := 0; i < 5; i++ {
		r, err := s.Read()
		require.NoError(t, err)
		reds = append(reds, r.Red)
	}
	assert.Equal(t, []uint16{100, 100, 0, 0, 100}, reds)
}

func TestSimulatedFeedsPipeline(t *testing.T) {
	s := NewSimulated(vision.DefaultPalette(), vision.DefaultSampleCount, 0, 1)
	for _, ref := range vision.DefaultPalette()[:5] {
		res, err := vision.Analyze(AcquirerFor(s), vision.DefaultSampleCount, model.VariantNormal)
		require.NoError(t, err)
		assert.Equal(t, model.NewColorName(ref.Name), res.Name)
	}
}

func TestSimulatedJitterStaysBounded(t *testing.T) {
	p := vision.Palette{{Name: "x", Sensor: model.RGB{R: 0, G: 128, B: 255}}}
	s := NewSimulated(p, 1, 3, 7)
	for i := 0; i < 50; i++ {
		r, _ := s.Read()
		assert.LessOrEqual(t, r.Red, uint16(3))
		assert.InDelta(t, 50, int(r.Green), 3)
		assert.InDelta(t, 100, int(r.Blue), 3)
	}
}

func TestRawFromNormalized(t *testing.T) {
	assert.Equal(t, model.RawSample{Clear: 300, Red: 100, Green: 100, Blue: 100}, RawFromNormalized(model.RGB{R: 255, G: 255, B: 255}))
}
