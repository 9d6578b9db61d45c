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

package buspirate

import (
	"bytes"
	"io"
	"time"

	"github.com/pkg/term"

	"github.com/jetsetilly/framtool/curated"
	"github.com/jetsetilly/framtool/i2c"
	"github.com/jetsetilly/framtool/logger"
)

// List of error patterns returned by the package.
const (
	ModeFailed    = "buspirate: could not enter %s mode"
	ShortResponse = "buspirate: short response to command %#02x: %v"
	BadResponse   = "buspirate: unexpected response to command %#02x (%#02x)"
)

// binary mode commands
const (
	cmdReset     = 0x00
	cmdI2C       = 0x02
	cmdStart     = 0x02
	cmdStop      = 0x03
	cmdRead      = 0x04
	cmdAck       = 0x06
	cmdNack      = 0x07
	cmdBulkWrite = 0x10
	cmdSpeed     = 0x60
)

// the speed setting for the cmdSpeed command. 0x03 is 400kHz, the fastest
// setting the Bus Pirate supports
const speed400kHz = 0x03

// the maximum number of bytes in a bulk write command
const maxBulk = 16

// the value returned by the Bus Pirate when a command has succeeded
const success = 0x01

// the values returned by the bulk write command for each byte
const (
	ack  = 0x00
	nack = 0x01
)

// how long to wait for a response from the Bus Pirate
const readTimeout = time.Second

// Bus is a Bus Pirate in binary I2C mode.
type Bus struct {
	port io.ReadWriter

	open   bool
	target i2c.Addr
	tx     []uint8

	rx []uint8
}

// Open the serial port and put the Bus Pirate into binary I2C mode.
func Open(device string, baud int) (*Bus, error) {
	t, err := term.Open(device, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, curated.Errorf(i2c.Transport, err)
	}

	err = t.SetReadTimeout(readTimeout)
	if err != nil {
		t.Close()
		return nil, curated.Errorf(i2c.Transport, err)
	}

	b, err := NewBus(t)
	if err != nil {
		t.Close()
		return nil, err
	}

	logger.Logf(logger.Allow, "buspirate", "binary i2c mode on %s", device)

	return b, nil
}

// NewBus prepares a Bus Pirate that is already connected. The Bus Pirate is
// put into binary I2C mode.
func NewBus(port io.ReadWriter) (*Bus, error) {
	b := &Bus{
		port: port,
		tx:   make([]uint8, 0, maxBulk),
	}

	err := b.enterBinaryMode()
	if err != nil {
		return nil, err
	}

	return b, nil
}

// Close returns the Bus Pirate to the terminal mode and closes the port if
// possible.
func (b *Bus) Close() error {
	// reset from binary mode to bitbang mode and then from bitbang mode to
	// the user terminal
	_, _ = b.port.Write([]uint8{cmdReset, 0x0f})

	if c, ok := b.port.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (b *Bus) enterBinaryMode() error {
	// twenty resets are required to enter bitbang mode from the user terminal
	// but if the Bus Pirate is already in bitbang mode it responds to every
	// reset. we send resets one at a time until there is a response
	bbio := []uint8("BBIO1")
	resp := make([]uint8, len(bbio))

	var ok bool
	for i := 0; i < 20; i++ {
		if _, err := b.port.Write([]uint8{cmdReset}); err != nil {
			return curated.Errorf(i2c.Transport, err)
		}
		if _, err := io.ReadFull(b.port, resp); err == nil && bytes.Equal(resp, bbio) {
			ok = true
			break // for loop
		}
	}
	if !ok {
		return curated.Errorf(ModeFailed, "bitbang")
	}

	if _, err := b.port.Write([]uint8{cmdI2C}); err != nil {
		return curated.Errorf(i2c.Transport, err)
	}
	i2c1 := []uint8("I2C1")
	resp = resp[:len(i2c1)]
	if _, err := io.ReadFull(b.port, resp); err != nil || !bytes.Equal(resp, i2c1) {
		return curated.Errorf(ModeFailed, "i2c")
	}

	return b.command(cmdSpeed | speed400kHz)
}

// command sends a single byte command and checks for the success response.
func (b *Bus) command(cmd uint8) error {
	if _, err := b.port.Write([]uint8{cmd}); err != nil {
		return curated.Errorf(i2c.Transport, err)
	}

	var resp [1]uint8
	if _, err := io.ReadFull(b.port, resp[:]); err != nil {
		return curated.Errorf(ShortResponse, cmd, err)
	}
	if resp[0] != success {
		return curated.Errorf(BadResponse, cmd, resp[0])
	}

	return nil
}

// bulkWrite sends the data in as many bulk write commands as necessary. returns
// the index of the first byte that was not acknowledged or -1 if every byte was
// acknowledged.
func (b *Bus) bulkWrite(data []uint8) (int, error) {
	for i := 0; i < len(data); i += maxBulk {
		chunk := data[i:min(i+maxBulk, len(data))]
		cmd := uint8(cmdBulkWrite | (len(chunk) - 1))

		if _, err := b.port.Write(append([]uint8{cmd}, chunk...)); err != nil {
			return -1, curated.Errorf(i2c.Transport, err)
		}

		resp := make([]uint8, len(chunk)+1)
		if _, err := io.ReadFull(b.port, resp); err != nil {
			return -1, curated.Errorf(ShortResponse, cmd, err)
		}
		if resp[0] != success {
			return -1, curated.Errorf(BadResponse, cmd, resp[0])
		}

		for j, r := range resp[1:] {
			if r != ack {
				return i + j, nil
			}
		}
	}

	return -1, nil
}

// read a single byte and respond with an ACK or a NACK.
func (b *Bus) read(last bool) (uint8, error) {
	if _, err := b.port.Write([]uint8{cmdRead}); err != nil {
		return 0, curated.Errorf(i2c.Transport, err)
	}

	var resp [1]uint8
	if _, err := io.ReadFull(b.port, resp[:]); err != nil {
		return 0, curated.Errorf(ShortResponse, cmdRead, err)
	}

	if last {
		return resp[0], b.command(cmdNack)
	}
	return resp[0], b.command(cmdAck)
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

	if err := b.command(cmdStart); err != nil {
		return err
	}

	nacked, err := b.bulkWrite(append([]uint8{b.target.Write()}, b.tx...))
	if err != nil {
		return err
	}

	if err := b.command(cmdStop); err != nil {
		return err
	}

	switch nacked {
	case -1:
		return nil
	case 0:
		return curated.Errorf(i2c.NoAcknowledge, b.target)
	}

	return curated.Errorf(i2c.Transport, "data byte not acknowledged")
}

// RequestBytes implements the i2c.Bus interface.
func (b *Bus) RequestBytes(addr i2c.Addr, count int) error {
	b.rx = b.rx[:0]

	if err := b.command(cmdStart); err != nil {
		return err
	}

	nacked, err := b.bulkWrite([]uint8{addr.Read()})
	if err != nil {
		return err
	}
	if nacked != -1 {
		if err := b.command(cmdStop); err != nil {
			return err
		}
		return curated.Errorf(i2c.NoAcknowledge, addr)
	}

	for i := 0; i < count; i++ {
		v, err := b.read(i == count-1)
		if err != nil {
			return err
		}
		b.rx = append(b.rx, v)
	}

	return b.command(cmdStop)
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
