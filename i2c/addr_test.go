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

package i2c_test

import (
	"testing"

	"github.com/jetsetilly/framtool/i2c"
	"github.com/jetsetilly/framtool/test"
)

func TestAddr(t *testing.T) {
	a := i2c.Addr(0x50)
	test.ExpectEquality(t, a.String(), "0x50")
	test.ExpectEquality(t, a.Write(), 0xa0)
	test.ExpectEquality(t, a.Read(), 0xa1)

	a = i2c.Addr(0x57)
	test.ExpectEquality(t, a.Write(), 0xae)
	test.ExpectEquality(t, a.Read(), 0xaf)
}
