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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/framtool/curated"
	"github.com/jetsetilly/framtool/test"
)

const testError = "test error: %s"
const wrapError = "wrap error: %v"

func TestPattern(t *testing.T) {
	err := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, err.Error(), "test error: foo")
	test.ExpectSuccess(t, curated.IsAny(err))
	test.ExpectSuccess(t, curated.Is(err, testError))
	test.ExpectFailure(t, curated.Is(err, wrapError))

	// plain errors are never curated
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Is(nil, testError))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("fram: %v", curated.Errorf("fram: %s", "foo"))
	test.ExpectEquality(t, e.Error(), "fram: foo")
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	f := curated.Errorf(wrapError, e)
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, wrapError))
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectFailure(t, curated.Has(errors.New("plain"), testError))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(wrapError, io.EOF)
	test.ExpectSuccess(t, errors.Is(e, io.EOF))
}
