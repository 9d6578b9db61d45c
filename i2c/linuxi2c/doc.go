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

// Package linuxi2c implements the i2c.Bus interface with the Linux i2c-dev
// interface. The device file is usually /dev/i2c-N where N is the number of
// the bus adapter.
//
// Every transaction is preceded by an I2C_SLAVE ioctl to select the
// peripheral. Write transactions are performed with a single write() of all
// queued bytes and requests with a single read().
//
// The package is only available on Linux.
package linuxi2c
