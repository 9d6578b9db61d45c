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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface but store the formatting
// pattern separately from the values. This means the error can be tested
// against the pattern without resorting to string comparisons of the
// formatted message.
//
//	const NoAcknowledge = "i2c: no acknowledge from %#02x"
//
//	err := curated.Errorf(NoAcknowledge, addr)
//	if curated.Is(err, NoAcknowledge) {
//		...
//	}
//
// Curated errors can wrap other curated errors by including them in the list
// of values. The Has() function will search the chain of wrapped errors for a
// matching pattern.
//
// When formatted, consecutive message parts that are identical are
// de-duplicated. This allows a function to prefix an error with the name of
// the package or subsystem without worrying about the prefix being repeated:
//
//	fram: fram: write beyond end of memory
//
// is printed as
//
//	fram: write beyond end of memory
package curated
