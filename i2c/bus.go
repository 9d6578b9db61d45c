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

// Bus is the interface to a two-wire bus master.
type Bus interface {
	// BeginTransaction starts a write transaction to the peripheral. Any
	// transaction that has not been ended is discarded.
	BeginTransaction(addr Addr)

	// WriteByte queues a byte in the open transaction.
	WriteByte(v byte) error

	// EndTransaction sends the queued bytes to the peripheral and closes
	// the transaction. An error is returned if the peripheral does not
	// acknowledge.
	EndTransaction() error

	// RequestBytes reads count bytes from the peripheral. The bytes are
	// returned by subsequent calls to ReadByte().
	RequestBytes(addr Addr, count int) error

	// ReadByte returns the next byte of the most recent request.
	ReadByte() (byte, error)
}

// List of error patterns returned by Bus implementations.
const (
	NoAcknowledge = "i2c: no acknowledge from %v"
	NoTransaction = "i2c: no open transaction"
	NoData        = "i2c: no data to read"
	Transport     = "i2c: %v"
)
