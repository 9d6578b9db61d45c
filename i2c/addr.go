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

package i2c

import "fmt"

// Addr is a 7-bit peripheral address on the bus. It does not include the
// read/write bit.
type Addr uint8

// MaxAddr is the highest valid 7-bit address.
const MaxAddr Addr = 0x7f

func (a Addr) String() string {
	return fmt.Sprintf("%#02x", uint8(a))
}

// Read returns the address byte for a read transfer.
func (a Addr) Read() uint8 {
	return uint8(a)<<1 | 0x01
}

// Write returns the address byte for a write transfer.
func (a Addr) Write() uint8 {
	return uint8(a) << 1
}
