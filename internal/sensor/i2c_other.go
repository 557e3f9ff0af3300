//go:build !linux

package sensor

import "errors"

type Device struct{}

func OpenDevice(path string, addr uint16) (*Device, error) {
	return nil, errors.ErrUnsupported
}

func (d *Device) Tx(addr uint16, w, r []byte) error {
	return errors.ErrUnsupported
}

func (d *Device) Close() error {
	return nil
}
