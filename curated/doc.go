// This file is part of VM2600.
//
// VM2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VM2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VM2600.  If not, see <https://www.gnu.org/licenses/>.

// Package curated wraps the plain Go error type with errors that remember the
// pattern they were created with.
//
// Curated errors are created with Errorf(), which takes the same arguments as
// fmt.Errorf(). The pattern is kept so that an error can be identified later
// without string matching on the formatted message:
//
//	const BankRange = "bank: offset %d outside of bank %d"
//
//	err := curated.Errorf(BankRange, 4096, 0)
//
//	if curated.Is(err, BankRange) {
//		...
//	}
//
// Has() looks for the pattern anywhere in the chain of curated errors that
// have been passed as values to other curated errors. IsAny() answers whether
// an error is curated at all.
//
// The Error() function removes a duplicated leading part from the message. A
// function that wraps an error from a function in the same package with the
// same prefix will not produce "assembler: assembler: unknown opcode".
package curated
