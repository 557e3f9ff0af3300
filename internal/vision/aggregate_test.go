package vision

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorviz/internal/model"
)

func stubAcquirer(samples ...model.RawSample) (Acquirer, *int) {
	calls := 0
	return func() (model.RawSample, error) {
		s := samples[calls%len(samples)]
		calls++
		return s, nil
	}, &calls
}

func TestAggregateFullScale(t *testing.T) {
	acquire, calls := stubAcquirer(model.RawSample{Red: 100, Green: 100, Blue: 100})
	got, err := Aggregate(5, acquire, nil)
	require.NoError(t, err)
	assert.Equal(t, model.RGB{R: 255, G: 255, B: 255}, got)
	assert.Equal(t, 5, *calls)
}

func TestAggregateRoundsAndClamps(t *testing.T) {
	acquire, _ := stubAcquirer(
		model.RawSample{Red: 50, Green: 65535, Blue: 1},
		model.RawSample{Red: 50, Green: 65535, Blue: 2},
	)
	got, err := Aggregate(2, acquire, nil)
	require.NoError(t, err)
	// blue mean truncates 1.5 to 1, then 2.55 rounds to 3
	assert.Equal(t, model.RGB{R: 128, G: 255, B: 3}, got)
}

func TestAggregatePacesEverySample(t *testing.T) {
	acquire, _ := stubAcquirer(model.RawSample{})
	paced := 0
	_, err := Aggregate(DefaultSampleCount, acquire, func() { paced++ })
	require.NoError(t, err)
	assert.Equal(t, DefaultSampleCount, paced)
}

func TestAggregatePropagatesAcquireError(t *testing.T) {
	busErr := errors.New("bus stalled")
	calls := 0
	acquire := func() (model.RawSample, error) {
		calls++
		if calls == 3 {
			return model.RawSample{}, busErr
		}
		return model.RawSample{Red: 10}, nil
	}
	_, err := Aggregate(5, acquire, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, busErr)
	assert.Equal(t, 3, calls)
}

func TestAggregateRejectsNonPositiveCount(t *testing.T) {
	acquire, calls := stubAcquirer(model.RawSample{})
	_, err := Aggregate(0, acquire, nil)
	assert.ErrorIs(t, err, ErrSampleCount)
	assert.Equal(t, 0, *calls)
}

func TestSleepPacerDisabledForZero(t *testing.T) {
	assert.Nil(t, SleepPacer(0))
	assert.NotNil(t, SleepPacer(1))
}
