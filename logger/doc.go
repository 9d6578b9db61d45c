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

// Package logger is the logging package used throughout framtool. Entries are
// a tag and a detail. The tag identifies the subsystem making the entry (for
// example "fram" or "sim") and the detail is the message.
//
// Consecutive entries with the same tag and detail are collapsed into a single
// entry with a repeat count. The number of entries kept is bounded and the
// oldest entries are dropped first.
//
// Every log request is accompanied by a Permission. The Allow value can be used
// when an entry should always be made. Otherwise, a type that implements the
// Permission interface can decide whether logging is allowed at the time of
// the request. The environment.Environment type is the Permission used by the
// driver.
//
// There is one central log, accessed through the package level functions.
// Independent logs can be created with NewLogger(), which is useful for
// testing.
package logger
