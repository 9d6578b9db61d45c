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

//go:build !statsview

package main

import (
	"testing"

	"github.com/jetsetilly/framtool/test"
)

func TestStatsviewUnavailable(t *testing.T) {
	// the tool does not wait for an interrupt when there is no stats server
	out, err := run(t, "DETECT", "-statsview", "-chips", "8")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "stats server not available (build with the statsview tag)\n"+
		"8 0 0 0 0 0 0 0\n"+
		"  slot 0:  8KB 0x0000 - 0x1fff\n"+
		"1 chips, 8192 bytes\n")
}
