package sensor

import (
	"math/rand/v2"
	"sync"

	"github.com/chewxy/math32"

	"colorviz/internal/model"
	"colorviz/internal/vision"
)

// Simulated replays the palette's sensor signatures as raw counts, holding
// each color for a fixed number of reads. It stands in for the TCS34725 when
// no bus is attached.
type Simulated struct {
	mu      sync.Mutex
	samples []model.RawSample
	hold    int
	jitter  int
	reads   int
	rng     *rand.Rand
}

func NewSimulated(palette vision.Palette, hold, jitter int, seed uint64) *Simulated {
	if hold <= 0 {
		hold = 1
	}
	samples := make([]model.RawSample, 0, len(palette))
	for _, ref := range palette {
		samples = append(samples, RawFromNormalized(ref.Sensor))
	}
	return &Simulated{
		samples: samples,
		hold:    hold,
		jitter:  jitter,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *Simulated) Read() (model.RawSample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.samples) == 0 {
		return model.RawSample{}, nil
	}
	out := s.samples[(s.reads/s.hold)%len(s.samples)]
	s.reads++
	if s.jitter > 0 {
		out.Red = s.noisy(out.Red)
		out.Green = s.noisy(out.Green)
		out.Blue = s.noisy(out.Blue)
	}
	return out, nil
}

func (s *Simulated) noisy(v uint16) uint16 {
	n := int(v) + s.rng.IntN(2*s.jitter+1) - s.jitter
	if n < 0 {
		return 0
	}
	if n > 0xFFFF {
		return 0xFFFF
	}
	return uint16(n)
}

// RawFromNormalized inverts the aggregator's scaling for a 0-255 color.
func RawFromNormalized(c model.RGB) model.RawSample {
	conv := func(v uint8) uint16 {
		return uint16(math32.Round(float32(v) * vision.AmbientReferenceScale / 255))
	}
	r, g, b := conv(c.R), conv(c.G), conv(c.B)
	return model.RawSample{Clear: r + g + b, Red: r, Green: g, Blue: b}
}
