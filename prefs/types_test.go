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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/framtool/curated"
	"github.com/jetsetilly/framtool/prefs"
	"github.com/jetsetilly/framtool/test"
)

func TestBool(t *testing.T) {
	var b prefs.Bool
	test.ExpectEquality(t, b.Get().(bool), false)

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectEquality(t, b.String(), "true")

	test.ExpectSuccess(t, b.Set("TRUE"))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectSuccess(t, b.Set("no"))
	test.ExpectEquality(t, b.Get().(bool), false)

	err := b.Set(1.5)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidValue))
}

func TestInt(t *testing.T) {
	var i prefs.Int
	test.ExpectSuccess(t, i.Set("0x50"))
	test.ExpectEquality(t, i.Get().(int), 0x50)
	test.ExpectSuccess(t, i.Set(115200))
	test.ExpectEquality(t, i.String(), "115200")
	test.ExpectFailure(t, i.Set("fifty"))
	test.ExpectEquality(t, i.Get().(int), 115200)
}

func TestString(t *testing.T) {
	var s prefs.String
	test.ExpectEquality(t, s.String(), "")
	test.ExpectSuccess(t, s.Set("/dev/i2c-1"))
	test.ExpectEquality(t, s.Get().(string), "/dev/i2c-1")
	test.ExpectSuccess(t, s.Reset())
	test.ExpectEquality(t, s.String(), "")
}

func TestHooks(t *testing.T) {
	var i prefs.Int
	var posted int

	i.SetHookPre(func(v prefs.Value) error {
		if v.(int)%8 != 0 {
			return errors.New("not aligned")
		}
		return nil
	})
	i.SetHookPost(func(v prefs.Value) error {
		posted = v.(int)
		return nil
	})

	test.ExpectSuccess(t, i.Set(0x50))
	test.ExpectEquality(t, posted, 0x50)

	// rejected by the pre-hook. value remains unchanged
	test.ExpectFailure(t, i.Set(0x51))
	test.ExpectEquality(t, i.Get().(int), 0x50)
	test.ExpectEquality(t, posted, 0x50)
}
