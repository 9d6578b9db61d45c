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

//go:build linux

package main

import (
	"io"

	"github.com/jetsetilly/framtool/i2c"
	"github.com/jetsetilly/framtool/i2c/linuxi2c"
)

func openLinux(device string) (i2c.Bus, io.Closer, error) {
	bus, err := linuxi2c.Open(device)
	if err != nil {
		return nil, nil, err
	}
	return bus, bus, nil
}
