package sensor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"colorviz/internal/model"
)

// DefaultAddress is the fixed 7-bit I2C address of the TCS3472x family.
const DefaultAddress uint16 = 0x29

const (
	commandBit  = 0x80
	regEnable   = 0x00
	regATime    = 0x01
	regControl  = 0x0F
	regID       = 0x12
	regCDataLow = 0x14

	enablePowerOn = 0x01
	enableADC     = 0x02

	chipIDTCS34725 = 0x44
	chipIDTCS34727 = 0x4D
)

var ErrChipID = errors.New("tcs34725: unexpected chip id")

// I2C is the bus transaction the driver needs: write w, then read into r.
type I2C interface {
	Tx(addr uint16, w, r []byte) error
}

type TCS34725 struct {
	bus   I2C
	addr  uint16
	sleep func(time.Duration)
}

func NewTCS34725(bus I2C, addr uint16) *TCS34725 {
	if addr == 0 {
		addr = DefaultAddress
	}
	return &TCS34725{bus: bus, addr: addr, sleep: time.Sleep}
}

// Init checks the chip id, sets integration time and gain, then powers the
// oscillator and ADC. atime 0xEB integrates for (256-235)*2.4ms = 50.4ms;
// gain 0x00..0x03 selects 1x, 4x, 16x or 60x.
func (d *TCS34725) Init(atime, gain uint8) error {
	id := make([]byte, 1)
	if err := d.bus.Tx(d.addr, []byte{commandBit | regID}, id); err != nil {
		return fmt.Errorf("read chip id: %w", err)
	}
	if id[0] != chipIDTCS34725 && id[0] != chipIDTCS34727 {
		return fmt.Errorf("%w: 0x%02X", ErrChipID, id[0])
	}
	if err := d.writeReg(regATime, atime); err != nil {
		return fmt.Errorf("set integration time: %w", err)
	}
	if err := d.writeReg(regControl, gain&0x03); err != nil {
		return fmt.Errorf("set gain: %w", err)
	}
	if err := d.writeReg(regEnable, enablePowerOn|enableADC); err != nil {
		return fmt.Errorf("enable adc: %w", err)
	}
	d.sleep(3 * time.Millisecond)
	return nil
}

// Read bursts the four 16-bit little-endian channels starting at CDATAL.
func (d *TCS34725) Read() (model.RawSample, error) {
	buf := make([]byte, 8)
	if err := d.bus.Tx(d.addr, []byte{commandBit | regCDataLow}, buf); err != nil {
		return model.RawSample{}, fmt.Errorf("read color data: %w", err)
	}
	return model.RawSample{
		Clear: binary.LittleEndian.Uint16(buf[0:2]),
		Red:   binary.LittleEndian.Uint16(buf[2:4]),
		Green: binary.LittleEndian.Uint16(buf[4:6]),
		Blue:  binary.LittleEndian.Uint16(buf[6:8]),
	}, nil
}

func (d *TCS34725) writeReg(reg, value uint8) error {
	return d.bus.Tx(d.addr, []byte{commandBit | reg, value}, nil)
}
