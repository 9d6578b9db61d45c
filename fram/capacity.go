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
	"fmt"
	"strings"
)

// NumSlots is the number of possible chips on the bus.
const NumSlots = 8

// the range of chip sizes in the FRAM family, in kilobytes. the list is
// ordered from smallest to largest, which is the order sizes are tested in
// during detection
var candidates = [...]uint8{8, 16, 32, 64}

// the size to use when no candidate size shows a wraparound
var fallbackSize = candidates[len(candidates)-1]

// CapacityTable records the size of each chip in kilobytes, in order of
// peripheral address. A size of zero means there is no chip at that address.
type CapacityTable [NumSlots]uint8

func (tab CapacityTable) String() string {
	s := strings.Builder{}
	for i, kb := range tab {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%d", kb))
	}
	return s.String()
}

// DeviceCount returns the number of chips in the table.
func (tab CapacityTable) DeviceCount() int {
	var n int
	for _, kb := range tab {
		if kb != 0 {
			n++
		}
	}
	return n
}

// TotalBytes returns the size of the flat memory space.
func (tab CapacityTable) TotalBytes() uint32 {
	var kb uint32
	for _, v := range tab {
		kb += uint32(v)
	}
	return kb * 1024
}

// ChipSizeBytes returns the size of the chip in the slot. Slots without a chip
// and slots outside the range of the table have a size of zero.
func (tab CapacityTable) ChipSizeBytes(slot int) uint32 {
	if slot < 0 || slot >= NumSlots {
		return 0
	}
	return uint32(tab[slot]) * 1024
}

// Location is the result of translating a flat address to a chip.
type Location struct {
	// the slot of the chip containing the address
	Slot int

	// the address within the chip
	Offset uint32

	// the flat address of the last byte in the chip
	End uint32
}

func (l Location) String() string {
	return fmt.Sprintf("slot %d offset %#04x (end %#05x)", l.Slot, l.Offset, l.End)
}

// Locate the chip containing the flat address. Chips are laid out in slot
// order with no gaps. Returns false if the address is beyond the end of the
// last chip, in which case the Slot field of the Location will be NumSlots.
func (tab CapacityTable) Locate(address uint32) (Location, bool) {
	// end is the address of the last byte of the most recent chip. it starts
	// at one before zero so that adding the size of the first chip gives the
	// correct value
	end := ^uint32(0)
	offset := address

	for slot, kb := range tab {
		if kb == 0 {
			continue
		}

		size := uint32(kb) * 1024
		end += size
		if address <= end {
			return Location{Slot: slot, Offset: offset, End: end}, true
		}
		offset -= size
	}

	return Location{Slot: NumSlots, Offset: offset, End: end}, false
}
