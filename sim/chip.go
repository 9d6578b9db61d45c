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
	"os"
	"slices"

	"github.com/jetsetilly/framtool/curated"
	"github.com/jetsetilly/framtool/logger"
)

// List of error patterns returned by the Chip type.
const (
	InvalidChipSize = "sim: invalid chip size (%dKB)"
	ChipFile        = "sim: chip file: %v"
)

// ValidSize returns true if size (in kilobytes) is one of the sizes in the
// FRAM family.
func ValidSize(kb int) bool {
	switch kb {
	case 8, 16, 32, 64:
		return true
	}
	return false
}

// Chip represents the memory array in a single FRAM chip.
type Chip struct {
	// the next address a read or write will access. the address register is
	// always 16 bits regardless of the size of the chip
	Address uint16

	// amend Data only through put() and Poke()
	Data []uint8

	// the data as it was last loaded or saved. used to decide whether the
	// chip has changed since
	DiskData []uint8

	// writes are ignored when WriteProtect is true. this is the equivalent
	// of the WP pin being held high
	WriteProtect bool
}

// NewChip is the preferred method of initialisation for the Chip type. Size is
// in kilobytes and must be one of the valid FRAM sizes.
func NewChip(kb int) (*Chip, error) {
	if !ValidSize(kb) {
		return nil, curated.Errorf(InvalidChipSize, kb)
	}

	c := &Chip{
		Data:     make([]uint8, kb*1024),
		DiskData: make([]uint8, kb*1024),
	}

	return c, nil
}

// Size of memory array in bytes.
func (c *Chip) Size() int {
	return len(c.Data)
}

// decode the address register to an index into the Data array. the chip
// ignores address lines beyond its size
func (c *Chip) decode(address uint16) int {
	return int(address) & (len(c.Data) - 1)
}

// Poke a value into the memory array. The address wraps the same way as it
// does on the bus.
func (c *Chip) Poke(address uint16, data uint8) {
	c.Data[c.decode(address)] = data
}

// Peek at a value in the memory array.
func (c *Chip) Peek(address uint16) uint8 {
	return c.Data[c.decode(address)]
}

func (c *Chip) put(v uint8) {
	if !c.WriteProtect {
		c.Data[c.decode(c.Address)] = v
	}
	c.Address++
}

func (c *Chip) get() uint8 {
	v := c.Data[c.decode(c.Address)]
	c.Address++
	return v
}

// Load chip data from file. A file that is smaller than the chip fills only the
// start of the chip. A larger file is truncated.
func (c *Chip) Load(filename string) error {
	d, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(ChipFile, err)
	}

	if len(d) != len(c.Data) {
		logger.Logf(logger.Allow, "sim", "chip file is of incorrect length. %d should be %d", len(d), len(c.Data))
	}

	copy(c.Data, d)
	copy(c.DiskData, c.Data)

	logger.Logf(logger.Allow, "sim", "chip file loaded from %s", filename)

	return nil
}

// Save chip data to file.
func (c *Chip) Save(filename string) error {
	err := os.WriteFile(filename, c.Data, 0600)
	if err != nil {
		return curated.Errorf(ChipFile, err)
	}

	copy(c.DiskData, c.Data)

	logger.Logf(logger.Allow, "sim", "chip file saved to %s", filename)

	return nil
}

// IsSaved returns true if data is the same as the data last loaded or saved.
func (c *Chip) IsSaved() bool {
	return slices.Compare(c.Data, c.DiskData) == 0
}
