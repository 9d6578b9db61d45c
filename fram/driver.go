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
	"github.com/jetsetilly/framtool/environment"
	"github.com/jetsetilly/framtool/i2c"
	"github.com/jetsetilly/framtool/logger"
)

// the two sentinel values used during detection. the values must be different
const (
	sentinelLo = 0x00
	sentinelHi = 0xff
)

// Driver for a bus of FRAM chips.
type Driver struct {
	env *environment.Environment
	bus i2c.Bus

	// address of the chip in slot zero
	base i2c.Addr

	// populated by Detect()
	table CapacityTable
	count int

	// the most recent transport error since the start of Detect().
	// transport errors do not stop detection and are not returned by the
	// byte primitives used during detection. they are recorded here instead
	status error
}

// NewDriver is the preferred method of initialisation for the Driver type. The
// table will be empty until Detect() is called.
func NewDriver(env *environment.Environment, bus i2c.Bus) *Driver {
	return &Driver{
		env:  env,
		bus:  bus,
		base: env.Prefs.Base(),
	}
}

func (drv *Driver) String() string {
	return drv.table.String()
}

// Table returns a copy of the capacity table.
func (drv *Driver) Table() CapacityTable {
	return drv.table
}

// DeviceCount returns the number of chips found by the most recent call to
// Detect().
func (drv *Driver) DeviceCount() int {
	return drv.count
}

// Status returns the most recent transport error since Detect() was last
// called. A nil value indicates that every bus operation has succeeded.
func (drv *Driver) Status() error {
	return drv.status
}

// TotalBytes returns the size of the flat memory space.
func (drv *Driver) TotalBytes() uint32 {
	return drv.table.TotalBytes()
}

// ChipSizeBytes returns the size of the chip in the slot, or zero if there is
// no chip.
func (drv *Driver) ChipSizeBytes(slot int) uint32 {
	return drv.table.ChipSizeBytes(slot)
}

// Locate the chip containing the flat address.
func (drv *Driver) Locate(address uint32) (Location, bool) {
	return drv.table.Locate(address)
}

// Detect probes every address on the bus for an FRAM chip and determines the
// size of every chip found. The capacity table is replaced and the number of
// chips found is returned.
//
// Transport errors do not stop detection. A chip that does not acknowledge
// its address is treated as absent. A failed read is taken to be zero, so a
// chip that accepts writes but fails reads will have address zero and the
// boundary addresses overwritten with zero and will be sized at 64KB.
func (drv *Driver) Detect() int {
	drv.table = CapacityTable{}
	drv.count = 0
	drv.status = nil

	for slot := 0; slot < NumSlots; slot++ {
		addr := drv.base + i2c.Addr(slot)

		// a transaction with no data is enough to see if a peripheral
		// acknowledges its address
		drv.bus.BeginTransaction(addr)
		if err := drv.bus.EndTransaction(); err != nil {
			logger.Logf(drv.env, drv.env.Tag("fram"), "no chip at %v", addr)
			continue
		}

		kb := drv.size(addr)
		drv.table[slot] = kb
		drv.count++

		logger.Logf(drv.env, drv.env.Tag("fram"), "%dKB chip at %v", kb, addr)
	}

	return drv.count
}

// size determines the size of the chip at the address, in kilobytes.
func (drv *Driver) size(addr i2c.Addr) uint8 {
	kb := fallbackSize

	orig := drv.peek(addr, 0)
	drv.poke(addr, 0, sentinelLo)

	wrapped := false
	for _, c := range candidates {
		// the boundary is truncated to the width of the chip's address
		// register. for the largest size the boundary is therefore
		// address zero
		boundary := uint16(uint32(c) * 1024)

		// the value at the boundary is kept so that it can be restored. if
		// the boundary aliases address zero then this will be the
		// sentinel value and not the original
		prev := drv.peek(addr, boundary)

		drv.poke(addr, boundary, sentinelHi)
		if drv.peek(addr, 0) == sentinelHi {
			kb = c
			wrapped = true
			break // for loop
		}

		drv.poke(addr, boundary, prev)
	}

	if !wrapped {
		logger.Logf(drv.env, drv.env.Tag("fram"), "no wraparound for chip at %v. assuming %dKB", addr, kb)
	}

	drv.poke(addr, 0, orig)

	return kb
}

// record a transport error. errors are logged as they happen
func (drv *Driver) record(err error) {
	if err != nil {
		drv.status = err
		logger.Log(drv.env, drv.env.Tag("fram"), err)
	}
}

// transfer sends the two byte address to the chip, most significant byte
// first, followed by any data bytes. the address is the address within the
// chip
func (drv *Driver) transfer(addr i2c.Addr, address uint16, data ...uint8) error {
	drv.bus.BeginTransaction(addr)

	if err := drv.bus.WriteByte(uint8(address >> 8)); err != nil {
		return err
	}
	if err := drv.bus.WriteByte(uint8(address)); err != nil {
		return err
	}
	for _, v := range data {
		if err := drv.bus.WriteByte(v); err != nil {
			return err
		}
	}

	return drv.bus.EndTransaction()
}

// readByte reads a single byte from the chip.
func (drv *Driver) readByte(addr i2c.Addr, address uint16) (uint8, error) {
	if err := drv.transfer(addr, address); err != nil {
		return 0, err
	}
	if err := drv.bus.RequestBytes(addr, 1); err != nil {
		return 0, err
	}
	return drv.bus.ReadByte()
}

// writeByte writes a single byte to the chip.
func (drv *Driver) writeByte(addr i2c.Addr, address uint16, v uint8) error {
	return drv.transfer(addr, address, v)
}

// peek is like readByte() except that the error is recorded and not returned.
// the value is zero if there was an error
func (drv *Driver) peek(addr i2c.Addr, address uint16) uint8 {
	v, err := drv.readByte(addr, address)
	drv.record(err)
	return v
}

// poke is like writeByte() except that the error is recorded and not returned.
func (drv *Driver) poke(addr i2c.Addr, address uint16, v uint8) {
	drv.record(drv.writeByte(addr, address, v))
}
