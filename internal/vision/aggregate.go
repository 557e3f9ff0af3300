package vision

import (
	"errors"
	"fmt"
	"time"

	"github.com/chewxy/math32"

	"colorviz/internal/model"
)

// AmbientReferenceScale is the raw channel reading expected for a full
// intensity channel under the lighting the device was tuned in. It is a fixed
// environmental assumption; nothing adapts it at runtime.
const AmbientReferenceScale float32 = 100.0

var ErrSampleCount = errors.New("sample count must be > 0")

// Acquirer performs one blocking sensor acquisition.
type Acquirer func() (model.RawSample, error)

// Pacer runs after every acquisition, typically to let the sensor integrate
// a fresh reading.
type Pacer func()

// SleepPacer waits d after each acquisition.
func SleepPacer(d time.Duration) Pacer {
	if d <= 0 {
		return nil
	}
	return func() { time.Sleep(d) }
}

// Aggregate averages sampleCount acquisitions and normalizes the means to
// 0-255 against AmbientReferenceScale.
func Aggregate(sampleCount int, acquire Acquirer, pace Pacer) (model.RGB, error) {
	if sampleCount <= 0 {
		return model.RGB{}, ErrSampleCount
	}
	var sumR, sumG, sumB uint64
	for i := 0; i < sampleCount; i++ {
		s, err := acquire()
		if err != nil {
			return model.RGB{}, fmt.Errorf("acquire sample %d: %w", i+1, err)
		}
		sumR += uint64(s.Red)
		sumG += uint64(s.Green)
		sumB += uint64(s.Blue)
		if pace != nil {
			pace()
		}
	}
	n := uint64(sampleCount)
	return model.RGB{
		R: normalizeChannel(sumR / n),
		G: normalizeChannel(sumG / n),
		B: normalizeChannel(sumB / n),
	}, nil
}

func normalizeChannel(mean uint64) uint8 {
	v := math32.Round(float32(mean) / AmbientReferenceScale * 255)
	if v > 255 {
		return 255
	}
	return uint8(v)
}
