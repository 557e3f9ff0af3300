package sensor

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorviz/internal/model"
)

type fakeBus struct {
	regs   map[byte]byte
	writes [][]byte
	err    error
}

func (b *fakeBus) Tx(addr uint16, w, r []byte) error {
	if b.err != nil {
		return b.err
	}
	b.writes = append(b.writes, append([]byte(nil), w...))
	reg := w[0] &^ commandBit
	if len(w) == 2 {
		b.regs[reg] = w[1]
	}
	for i := range r {
		r[i] = b.regs[reg+byte(i)]
	}
	return nil
}

func newTestDriver(bus *fakeBus) *TCS34725 {
	d := NewTCS34725(bus, 0)
	d.sleep = func(time.Duration) {}
	return d
}

func TestInitConfiguresRegisters(t *testing.T) {
	bus := &fakeBus{regs: map[byte]byte{regID: chipIDTCS34725}}
	d := newTestDriver(bus)
	require.NoError(t, d.Init(0xEB, 0x01))
	assert.Equal(t, byte(0xEB), bus.regs[regATime])
	assert.Equal(t, byte(0x01), bus.regs[regControl])
	assert.Equal(t, byte(0x03), bus.regs[regEnable])
	assert.Equal(t, []byte{0x92}, bus.writes[0])
}

func TestInitAcceptsTCS34727(t *testing.T) {
	bus := &fakeBus{regs: map[byte]byte{regID: chipIDTCS34727}}
	assert.NoError(t, newTestDriver(bus).Init(0xEB, 0))
}

func TestInitRejectsUnknownChip(t *testing.T) {
	bus := &fakeBus{regs: map[byte]byte{regID: 0x10}}
	err := newTestDriver(bus).Init(0xEB, 0)
	assert.ErrorIs(t, err, ErrChipID)
}

func TestReadDecodesLittleEndian(t *testing.T) {
	bus := &fakeBus{regs: map[byte]byte{
		0x14: 0x34, 0x15: 0x12,
		0x16: 0x64, 0x17: 0x00,
		0x18: 0x2C, 0x19: 0x01,
		0x1A: 0xFF, 0x1B: 0xFF,
	}}
	s, err := newTestDriver(bus).Read()
	require.NoError(t, err)
	assert.Equal(t, model.RawSample{Clear: 0x1234, Red: 100, Green: 300, Blue: 0xFFFF}, s)
}

func TestReadWrapsBusError(t *testing.T) {
	busErr := errors.New("nack")
	_, err := newTestDriver(&fakeBus{err: busErr}).Read()
	assert.ErrorIs(t, err, busErr)
}
