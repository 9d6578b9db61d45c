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

package fram_test

import (
	"io"
	"testing"

	"github.com/jetsetilly/framtool/curated"
	"github.com/jetsetilly/framtool/fram"
	"github.com/jetsetilly/framtool/i2c"
	"github.com/jetsetilly/framtool/test"
)

func TestAccessAcrossChips(t *testing.T) {
	drv, bus := newDriver(t, 8, 0, 32)
	test.DemandEquality(t, drv.Detect(), 2)

	// the write straddles the boundary between the two chips
	n, err := drv.WriteAt([]byte{0x01, 0x02, 0x03, 0x04}, 8190)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)

	test.ExpectEquality(t, bus.Chips[0].Peek(0x1ffe), 0x01)
	test.ExpectEquality(t, bus.Chips[0].Peek(0x1fff), 0x02)
	test.ExpectEquality(t, bus.Chips[2].Peek(0x0000), 0x03)
	test.ExpectEquality(t, bus.Chips[2].Peek(0x0001), 0x04)

	p := make([]byte, 4)
	n, err = drv.ReadAt(p, 8190)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, string(p), "\x01\x02\x03\x04")
}

func TestLargeTransfer(t *testing.T) {
	drv, bus := newDriver(t, 16, 16)
	test.DemandEquality(t, drv.Detect(), 2)

	w := make([]byte, 5000)
	for i := range w {
		w[i] = uint8(i * 7)
	}

	n, err := drv.WriteAt(w, 14000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len(w))
	test.ExpectEquality(t, bus.Chips[1].Peek(uint16(18999-16384)), w[4999])

	r := make([]byte, len(w))
	n, err = drv.ReadAt(r, 14000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len(r))
	test.ExpectEquality(t, string(r), string(w))
}

func TestAccessBeyondEnd(t *testing.T) {
	drv, _ := newDriver(t, 8)
	test.DemandEquality(t, drv.Detect(), 1)

	n, err := drv.WriteAt([]byte{1, 2, 3, 4}, 8190)
	test.ExpectEquality(t, n, 2)
	test.ExpectSuccess(t, curated.Is(err, fram.AccessBeyondEnd))

	p := make([]byte, 4)
	n, err = drv.ReadAt(p, 8190)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, err, io.EOF)
	test.ExpectEquality(t, p[1], 2)

	_, err = drv.ReadAt(p, -1)
	test.ExpectEquality(t, err, io.EOF)
}

func TestAccessFailed(t *testing.T) {
	drv, bus := newDriver(t, 8)
	test.DemandEquality(t, drv.Detect(), 1)
	bus.Faulty[0] = true

	p := make([]byte, 1)
	_, err := drv.ReadAt(p, 0)
	test.ExpectSuccess(t, curated.Is(err, fram.AccessFailed))
	test.ExpectSuccess(t, curated.Is(drv.Status(), i2c.Transport))

	// the chip disappears from the bus
	bus.Attach(0, nil)
	_, err = drv.WriteAt(p, 0)
	test.ExpectSuccess(t, curated.Is(err, fram.AccessFailed))
	test.ExpectSuccess(t, curated.Is(drv.Status(), i2c.NoAcknowledge))
}

type record struct {
	Hiscore uint32
	Level   uint8
	Name    [3]byte
}

func TestGetPut(t *testing.T) {
	drv, _ := newDriver(t, 8, 8)
	test.DemandEquality(t, drv.Detect(), 2)

	n, err := drv.Put(8190, uint32(0xdeadbeef))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)

	var v uint32
	n, err = drv.Get(8190, &v)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, v, 0xdeadbeef)

	// little-endian order
	var b uint8
	_, err = drv.Get(8190, &b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, 0xef)

	rec := record{Hiscore: 123456, Level: 9, Name: [3]byte{'J', 'S', 'I'}}
	n, err = drv.Put(100, rec)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 8)

	var got record
	_, err = drv.Get(100, &got)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, got, rec)

	// not enough room at the end of memory
	_, err = drv.Get(16383, &v)
	test.ExpectFailure(t, err)

	// variable sized values cannot be transferred
	_, err = drv.Put(0, "hello")
	test.ExpectSuccess(t, curated.Is(err, fram.UnsizedValue))
}
