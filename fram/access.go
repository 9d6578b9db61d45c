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

package fram

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/jetsetilly/framtool/curated"
	"github.com/jetsetilly/framtool/i2c"
)

// List of error patterns returned by the access functions.
const (
	AccessBeyondEnd = "fram: access beyond end of memory (%#05x)"
	AccessFailed    = "fram: access failed at %#05x: %v"
	UnsizedValue    = "fram: cannot transfer value of type %T"
)

// the maximum number of bytes transferred in a single transaction. a transfer
// never crosses from one chip to another
const maxTransfer = 256

// chunk returns the location of the flat address and the number of bytes that
// can be transferred in one transaction without leaving the chip
func (drv *Driver) chunk(address int64, remaining int) (Location, int, bool) {
	if address < 0 || address >= int64(drv.table.TotalBytes()) {
		return Location{}, 0, false
	}

	loc, ok := drv.table.Locate(uint32(address))
	if !ok {
		return loc, 0, false
	}

	n := int(int64(loc.End) - address + 1)
	n = min(n, remaining, maxTransfer)

	return loc, n, true
}

// ReadAt implements the io.ReaderAt interface. Reading from beyond the end of
// the flat memory space returns io.EOF.
func (drv *Driver) ReadAt(p []byte, off int64) (int, error) {
	var n int

	for n < len(p) {
		loc, c, ok := drv.chunk(off+int64(n), len(p)-n)
		if !ok {
			return n, io.EOF
		}

		addr := drv.base + i2c.Addr(loc.Slot)

		err := drv.transfer(addr, uint16(loc.Offset))
		if err == nil {
			err = drv.bus.RequestBytes(addr, c)
		}
		for i := 0; i < c && err == nil; i++ {
			p[n], err = drv.bus.ReadByte()
			if err == nil {
				n++
			}
		}

		if err != nil {
			drv.record(err)
			return n, curated.Errorf(AccessFailed, off+int64(n), err)
		}
	}

	return n, nil
}

// WriteAt implements the io.WriterAt interface. Writing beyond the end of the
// flat memory space is an error. Bytes before the end of memory will have been
// written.
func (drv *Driver) WriteAt(p []byte, off int64) (int, error) {
	var n int

	for n < len(p) {
		loc, c, ok := drv.chunk(off+int64(n), len(p)-n)
		if !ok {
			return n, curated.Errorf(AccessBeyondEnd, off+int64(n))
		}

		addr := drv.base + i2c.Addr(loc.Slot)

		err := drv.transfer(addr, uint16(loc.Offset), p[n:n+c]...)
		if err != nil {
			drv.record(err)
			return n, curated.Errorf(AccessFailed, off+int64(n), err)
		}

		n += c
	}

	return n, nil
}

// Get reads a fixed-size value from the flat address. The value must be a
// pointer to a type accepted by binary.Read(). Values are stored in
// little-endian order. Returns the number of bytes read.
func (drv *Driver) Get(address uint32, v any) (int, error) {
	n := binary.Size(v)
	if n < 0 {
		return 0, curated.Errorf(UnsizedValue, v)
	}

	r := io.NewSectionReader(drv, int64(address), int64(n))
	if err := binary.Read(r, binary.LittleEndian, v); err != nil {
		return 0, err
	}

	return n, nil
}

// Put writes a fixed-size value to the flat address. The value must be
// acceptable to binary.Write(). Returns the number of bytes written.
func (drv *Driver) Put(address uint32, v any) (int, error) {
	var b bytes.Buffer
	if err := binary.Write(&b, binary.LittleEndian, v); err != nil {
		return 0, curated.Errorf(UnsizedValue, v)
	}
	return drv.WriteAt(b.Bytes(), int64(address))
}
