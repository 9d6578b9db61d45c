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

// Package buspirate implements the i2c.Bus interface with a Bus Pirate
// connected to a serial port. The Bus Pirate is put into its binary I2C mode
// when the port is opened.
//
// Information about the binary I2C mode taken from
// http://dangerousprototypes.com/docs/I2C_(binary) (02/08/2021)
//
// Write transactions are queued and sent as a start bit, one or more bulk
// write commands, and a stop bit. The first byte of the bulk write is the
// peripheral address with the write bit. A request for bytes is sent as a
// start bit, the peripheral address with the read bit, a read command for each
// byte followed by an ACK (or a NACK for the last byte), and a stop bit.
package buspirate
