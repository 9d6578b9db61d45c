// This file is part of framtool.
//
// framtool is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// framtool is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with framtool.  If not, see <https://www.gnu.org/licenses/>.

//go:build linux

package linuxi2c

import (
	"errors"

	"golang.org/x/sys/unix"

	"github.com/jetsetilly/framtool/curated"
	"github.com/jetsetilly/framtool/i2c"
)

// ioctl request to set the peripheral address for subsequent read() and
// write() calls. from linux/i2c-dev.h
const ioctlSlave = 0x0703

// Bus is an i2c-dev bus master.
type Bus struct {
	fd int

	open   bool
	target i2c.Addr
	tx     []uint8

	rx []uint8
}

// Open the i2c-dev device.
func Open(device string) (*Bus, error) {
	fd, err := unix.Open(device, unix.O_RDWR, 0)
	if err != nil {
		return nil, curated.Errorf(i2c.Transport, err)
	}
	return &Bus{
		fd: fd,
		tx: make([]uint8, 0, 8),
	}, nil
}

// Close the i2c-dev device.
func (b *Bus) Close() error {
	err := unix.Close(b.fd)
	if err != nil {
		return curated.Errorf(i2c.Transport, err)
	}
	return nil
}

// translate an error from a read() or write() call. the adapter drivers
// indicate a missing acknowledge in different ways
func translate(addr i2c.Addr, err error) error {
	var errno unix.Errno
	if errors.As(err, &errno) {
		switch errno {
		case unix.ENXIO, unix.EREMOTEIO, unix.EIO:
			return curated.Errorf(i2c.NoAcknowledge, addr)
		}
	}
	return curated.Errorf(i2c.Transport, err)
}

func (b *Bus) selectPeripheral(addr i2c.Addr) error {
	err := unix.IoctlSetInt(b.fd, ioctlSlave, int(addr))
	if err != nil {
		return curated.Errorf(i2c.Transport, err)
	}
	return nil
}

// BeginTransaction implements the i2c.Bus interface.
func (b *Bus) BeginTransaction(addr i2c.Addr) {
	b.open = true
	b.target = addr
	b.tx = b.tx[:0]
}

// WriteByte implements the i2c.Bus interface.
func (b *Bus) WriteByte(v byte) error {
	if !b.open {
		return curated.Errorf(i2c.NoTransaction)
	}
	b.tx = append(b.tx, v)
	return nil
}

// EndTransaction implements the i2c.Bus interface. A transaction with no bytes
// is a zero length write, which most adapters support as a presence check.
func (b *Bus) EndTransaction() error {
	if !b.open {
		return curated.Errorf(i2c.NoTransaction)
	}
	b.open = false

	if err := b.selectPeripheral(b.target); err != nil {
		return err
	}

	n, err := unix.Write(b.fd, b.tx)
	if err != nil {
		return translate(b.target, err)
	}
	if n != len(b.tx) {
		return curated.Errorf(i2c.Transport, "short write")
	}

	return nil
}

// RequestBytes implements the i2c.Bus interface.
func (b *Bus) RequestBytes(addr i2c.Addr, count int) error {
	b.rx = b.rx[:0]

	if err := b.selectPeripheral(addr); err != nil {
		return err
	}

	buf := make([]uint8, count)
	n, err := unix.Read(b.fd, buf)
	if err != nil {
		return translate(addr, err)
	}
	if n != count {
		return curated.Errorf(i2c.Transport, "short read")
	}

	b.rx = append(b.rx, buf...)

	return nil
}

// ReadByte implements the i2c.Bus interface.
func (b *Bus) ReadByte() (byte, error) {
	if len(b.rx) == 0 {
		return 0, curated.Errorf(i2c.NoData)
	}
	v := b.rx[0]
	b.rx = b.rx[1:]
	return v, nil
}
