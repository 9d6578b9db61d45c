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

// Package prefs facilitates the storage of preference values. The Bool, Int
// and String types can be used as fields in a preferences structure and then
// set and retrieved safely from any goroutine.
//
// Values can be set from a string, which is how the command line preferences
// stack works. The stack allows preference values to be specified on the
// command line in the form:
//
//	key::value; key::value
//
// A preferences structure retrieves any value on the top of the stack with
// GetCommandLinePref() when it is being initialised.
//
// Hooks can be attached to a preference value. The pre-hook is called before
// the value is stored and can reject the value by returning an error. The
// post-hook is called after the value has been stored.
package prefs
