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

package sim_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/framtool/curated"
	"github.com/jetsetilly/framtool/sim"
	"github.com/jetsetilly/framtool/test"
)

func TestChipSizes(t *testing.T) {
	for _, kb := range []int{8, 16, 32, 64} {
		c, err := sim.NewChip(kb)
		test.DemandSuccess(t, err, kb)
		test.ExpectEquality(t, c.Size(), kb*1024, kb)
	}

	for _, kb := range []int{0, 4, 24, 128} {
		_, err := sim.NewChip(kb)
		test.ExpectSuccess(t, curated.Is(err, sim.InvalidChipSize), kb)
	}
}

func TestChipWraparound(t *testing.T) {
	c, err := sim.NewChip(8)
	test.DemandSuccess(t, err)

	// the end of an 8KB chip plus one is the start of the chip
	c.Poke(0x2000, 0xaa)
	test.ExpectEquality(t, c.Peek(0x0000), 0xaa)
	test.ExpectEquality(t, c.Data[0], 0xaa)

	c.Poke(0x1fff, 0xbb)
	test.ExpectEquality(t, c.Peek(0xffff), 0xbb)

	// a 64KB chip decodes every address line
	c, err = sim.NewChip(64)
	test.DemandSuccess(t, err)
	c.Poke(0x8000, 0xcc)
	test.ExpectEquality(t, c.Peek(0x0000), 0x00)
	test.ExpectEquality(t, c.Peek(0x8000), 0xcc)
}

func TestChipFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "chip")

	c, err := sim.NewChip(16)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, c.IsSaved())

	c.Poke(0x0100, 0x42)
	test.ExpectFailure(t, c.IsSaved())
	test.DemandSuccess(t, c.Save(fn))
	test.ExpectSuccess(t, c.IsSaved())

	d, err := sim.NewChip(16)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, d.Load(fn))
	test.ExpectEquality(t, d.Peek(0x0100), 0x42)
	test.ExpectSuccess(t, d.IsSaved())

	err = d.Load(filepath.Join(t.TempDir(), "missing"))
	test.ExpectSuccess(t, curated.Is(err, sim.ChipFile))
}
