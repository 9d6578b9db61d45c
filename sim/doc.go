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

// Package sim implements a simulated two-wire bus with FRAM chips attached.
// It is used to exercise the fram driver without hardware.
//
// The Chip type models the memory array of a single chip. The address
// register is 16 bits wide but the memory array is only as large as the chip,
// so the chip only decodes as many address bits as it needs. Addresses beyond
// the end of the array alias back to the start. This is the property the
// fram driver uses to determine the size of a chip.
//
// The Bus type implements the i2c.Bus interface. Up to eight chips can be
// attached, one per address starting from a base address. A write
// transaction is interpreted the way the chip interprets it: the first byte
// is the high byte of the memory address, the second byte is the low byte,
// and all subsequent bytes are data written to sequential addresses. A read
// request returns bytes from sequential addresses starting from the current
// address.
package sim
