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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and of associating a flag set with each mode.
//
// Modes are specified by the first non-flag argument on the command line. If
// the argument is not one of the modes specified with AddSubModes() then the
// first mode in the list is the mode. For example, the framtool modes are
// DETECT, READ and WRITE with DETECT being the default:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("DETECT", "READ", "WRITE")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// Flags for the selected mode are then added after a call to NewMode() and
// parsed with another call to Parse():
//
//	md.NewMode()
//	log := md.AddBool("log", false, "echo log to stdout")
//	p, err = md.Parse()
//
// The Path() function returns the sequence of modes selected so far, which is
// useful for error messages.
package modalflag
