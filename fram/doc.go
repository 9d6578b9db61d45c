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

// Package fram is a driver for the MB85RC family of I2C FRAM chips. Up to
// eight chips can share a bus, each at one of eight consecutive peripheral
// addresses. The chips are presented as a single flat memory space.
//
// The chips have no identification register so the size of each chip is
// determined by exploiting the way the chip decodes addresses. A chip only
// decodes as many address lines as it needs and so the first address beyond
// the end of the chip is the same location as address zero. Detect() writes
// a sentinel at address zero, and then a different sentinel at each candidate
// size. The first candidate at which the second sentinel appears at address
// zero is the size of the chip.
//
// Detection is destructive but the contents of address zero and of each
// candidate boundary are restored once the size is known.
//
// Once detected, chips are laid out in the flat memory space in order of
// peripheral address, with no gaps. The CapacityTable type translates a flat
// address to the chip and the offset within the chip.
//
// The Driver type is not safe for concurrent use. The bus is assumed to be
// owned by the driver for the duration of every call.
package fram
