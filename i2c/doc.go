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

// Package i2c defines the bus transport used by the fram driver. The Bus
// interface is the minimum a driver needs from a two-wire bus master: a write
// transaction to a peripheral, and a request for bytes from a peripheral.
//
// Write transactions are built up between calls to BeginTransaction() and
// EndTransaction(). Bytes written with WriteByte() are queued and only sent to
// the peripheral when EndTransaction() is called. A transaction with no bytes
// is a presence check: the peripheral acknowledges its address or it doesn't.
//
// Reads are performed with RequestBytes() followed by the requested number of
// calls to ReadByte().
//
// Implementations are in the linuxi2c and buspirate sub-packages. The sim
// package provides a simulated bus for testing.
package i2c
