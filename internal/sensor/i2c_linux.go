//go:build linux

package sensor

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

const ioctlI2CSlave = 0x0703

// Device is an i2c-dev character device bound to one slave address.
type Device struct {
	mu   sync.Mutex
	f    *os.File
	addr uint16
}

// OpenDevice opens path (for example /dev/i2c-1) and selects addr.
func OpenDevice(path string, addr uint16) (*Device, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open i2c device: %w", err)
	}
	if err := unix.IoctlSetInt(int(f.Fd()), ioctlI2CSlave, int(addr)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("select i2c address 0x%02X: %w", addr, err)
	}
	return &Device{f: f, addr: addr}, nil
}

// Tx writes w and then reads len(r) bytes. The kernel issues a stop between
// the two; the TCS34725 keeps its register pointer across it.
func (d *Device) Tx(addr uint16, w, r []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if addr != d.addr {
		if err := unix.IoctlSetInt(int(d.f.Fd()), ioctlI2CSlave, int(addr)); err != nil {
			return fmt.Errorf("select i2c address 0x%02X: %w", addr, err)
		}
		d.addr = addr
	}
	if len(w) > 0 {
		if _, err := d.f.Write(w); err != nil {
			return fmt.Errorf("i2c write: %w", err)
		}
	}
	if len(r) > 0 {
		if _, err := d.f.Read(r); err != nil {
			return fmt.Errorf("i2c read: %w", err)
		}
	}
	return nil
}

func (d *Device) Close() error {
	return d.f.Close()
}
