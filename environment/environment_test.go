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

package environment_test

import (
	"testing"

	"github.com/jetsetilly/framtool/environment"
	"github.com/jetsetilly/framtool/logger"
	"github.com/jetsetilly/framtool/test"
)

func TestPermission(t *testing.T) {
	env, err := environment.NewEnvironment("", nil)
	test.DemandSuccess(t, err)

	log := logger.NewLogger(10)
	tw := &test.Writer{}

	log.Log(env, env.Tag("fram"), "allowed")
	test.DemandSuccess(t, env.Prefs.Logging.Set(false))
	log.Log(env, env.Tag("fram"), "not allowed")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "fram: allowed\n")

	env.Normalise()
	test.ExpectSuccess(t, env.AllowLogging())
}

func TestSharedPreferences(t *testing.T) {
	a, err := environment.NewEnvironment("left", nil)
	test.DemandSuccess(t, err)
	b, err := environment.NewEnvironment("right", a.Prefs)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, a.Prefs.Logging.Set(false))
	test.ExpectFailure(t, b.AllowLogging())

	test.ExpectEquality(t, a.Tag("fram"), "left/fram")
	test.ExpectEquality(t, b.Tag("sim"), "right/sim")
}
