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

package sim

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/framtool/curated"
	"github.com/jetsetilly/framtool/i2c"
	"github.com/jetsetilly/framtool/logger"
)

// NumSlots is the number of chips that can be attached to the bus. FRAM chips
// have three address pins so there are eight possible addresses.
const NumSlots = 8

// TransferState records how the next byte in a write transaction will be
// interpreted by the chip.
type TransferState int

// List of valid TransferState values.
const (
	TransferAddressHi TransferState = iota
	TransferAddressLo
	TransferData
)

// Bus is a simulated two-wire bus. It implements the i2c.Bus interface.
type Bus struct {
	// the address of the chip in slot zero
	base i2c.Addr

	// attached chips. a nil entry means there is no chip at that address
	Chips [NumSlots]*Chip

	// requests for bytes from a faulty slot fail after the chip has
	// acknowledged its address. used to test transport error handling
	Faulty [NumSlots]bool

	// the open write transaction
	open   bool
	target i2c.Addr
	tx     []uint8

	// bytes returned by the most recent request
	rx []uint8

	// number of transactions and requests since creation
	Transactions int
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(base i2c.Addr) *Bus {
	return &Bus{
		base: base,
		tx:   make([]uint8, 0, 8),
	}
}

// Attach chip to the slot. The chip will respond to the base address plus the
// slot number. A nil chip detaches any existing chip.
func (b *Bus) Attach(slot int, c *Chip) {
	b.Chips[slot] = c
	if c != nil {
		logger.Logf(logger.Allow, "sim", "%dKB chip attached at %v", c.Size()/1024, b.base+i2c.Addr(slot))
	}
}

// Populate the bus with new chips. Sizes are in kilobytes, one entry per slot.
// A size of zero leaves the slot empty.
func (b *Bus) Populate(sizes ...int) error {
	for slot, kb := range sizes {
		if slot >= NumSlots {
			break
		}
		if kb == 0 {
			b.Attach(slot, nil)
			continue
		}
		c, err := NewChip(kb)
		if err != nil {
			return err
		}
		b.Attach(slot, c)
	}
	return nil
}

func (b *Bus) chip(addr i2c.Addr) (*Chip, int) {
	if addr < b.base || addr >= b.base+NumSlots {
		return nil, -1
	}
	slot := int(addr - b.base)
	return b.Chips[slot], slot
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

// EndTransaction implements the i2c.Bus interface.
func (b *Bus) EndTransaction() error {
	if !b.open {
		return curated.Errorf(i2c.NoTransaction)
	}
	b.open = false
	b.Transactions++

	c, _ := b.chip(b.target)
	if c == nil {
		return curated.Errorf(i2c.NoAcknowledge, b.target)
	}

	state := TransferAddressHi
	for _, v := range b.tx {
		switch state {
		case TransferAddressHi:
			c.Address = uint16(v) << 8
			state = TransferAddressLo
		case TransferAddressLo:
			c.Address |= uint16(v)
			state = TransferData
		case TransferData:
			c.put(v)
		}
	}

	return nil
}

// RequestBytes implements the i2c.Bus interface.
func (b *Bus) RequestBytes(addr i2c.Addr, count int) error {
	b.Transactions++
	b.rx = b.rx[:0]

	c, slot := b.chip(addr)
	if c == nil {
		return curated.Errorf(i2c.NoAcknowledge, addr)
	}
	if b.Faulty[slot] {
		return curated.Errorf(i2c.Transport, "arbitration lost")
	}

	for i := 0; i < count; i++ {
		b.rx = append(b.rx, c.get())
	}

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

func (b *Bus) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("sim %v:", b.base))
	for _, c := range b.Chips {
		if c == nil {
			s.WriteString(" -")
		} else {
			s.WriteString(fmt.Sprintf(" %dK", c.Size()/1024))
		}
	}
	return s.String()
}
