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

package main

import (
	"encoding/hex"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/framtool/curated"
	"github.com/jetsetilly/framtool/modalflag"
	"github.com/jetsetilly/framtool/test"
)

// run the command line as though it had been given to the program.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	w := &test.Writer{}

	md := &modalflag.Modes{Output: w}
	md.NewArgs(args)
	md.AddSubModes("DETECT", "READ", "WRITE")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)

	switch md.Mode() {
	case "DETECT":
		err = detect(md, w)
	case "READ":
		err = read(md, w)
	case "WRITE":
		err = write(md, w)
	}

	return w.String(), err
}

func TestParseChips(t *testing.T) {
	sizes, err := parseChips("8, 32,0,64")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(sizes), 4)
	test.ExpectEquality(t, sizes[1], 32)
	test.ExpectEquality(t, sizes[2], 0)

	_, err = parseChips("8,12")
	test.ExpectEquality(t, curated.Is(err, BadChipList), true)

	_, err = parseChips("8,x")
	test.ExpectEquality(t, curated.Is(err, BadChipList), true)

	_, err = parseChips("8,8,8,8,8,8,8,8,8")
	test.ExpectEquality(t, curated.Is(err, BadChipList), true)
}

func TestDetectMode(t *testing.T) {
	out, err := run(t, "-chips", "8,32")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "8 32 0 0 0 0 0 0\n"+
		"  slot 0:  8KB 0x0000 - 0x1fff\n"+
		"  slot 1: 32KB 0x2000 - 0x9fff\n"+
		"2 chips, 40960 bytes\n")

	out, err = run(t, "DETECT", "-chips", "0,0,16")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "0 0 16 0 0 0 0 0\n"+
		"  slot 2: 16KB 0x0000 - 0x3fff\n"+
		"1 chips, 16384 bytes\n")
}

func TestUnknownBus(t *testing.T) {
	_, err := run(t, "DETECT", "-bus", "SPI")
	test.ExpectEquality(t, curated.Is(err, UnknownBus), true)
}

func TestNoChipsToRead(t *testing.T) {
	_, err := run(t, "READ", "-chips", "0")
	test.ExpectEquality(t, curated.Is(err, NoChips), true)
}

func TestWriteRead(t *testing.T) {
	image := filepath.Join(t.TempDir(), "fram")

	// the write straddles the boundary between the two chips
	out, err := run(t, "WRITE", "-chips", "8,32", "-image", image, "-addr", "0x1ffe", "0102030405")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "5 bytes written at 0x1ffe\n")

	out, err = run(t, "READ", "-chips", "8,32", "-image", image, "-addr", "0x1ffe", "-len", "5")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, hex.Dump([]byte{0x01, 0x02, 0x03, 0x04, 0x05}))

	// reading past the end of memory shortens the listing
	out, err = run(t, "READ", "-chips", "8,32", "-image", image, "-addr", "40958", "-len", "16")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, hex.Dump([]byte{0x00, 0x00}))
}

func TestWriteBadData(t *testing.T) {
	_, err := run(t, "WRITE", "-chips", "8", "zz")
	test.ExpectEquality(t, curated.Is(err, BadData), true)

	_, err = run(t, "WRITE", "-chips", "8")
	test.ExpectEquality(t, curated.Is(err, BadData), true)
}
