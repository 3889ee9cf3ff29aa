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

// Package script runs Lua scripts that exercise the assembler, CPU and TIA.
// It is used for writing tests of 6502 programs without writing Go.
//
// The following functions are available to a script:
//
//	assemble(source)        assemble a string or a table of lines. the
//	                        bytes are loaded into memory at the bank origin.
//	                        returns the status and the number of errors
//	run([start], [limit])   run to the next BRK instruction
//	step()                  execute one instruction. returns its disassembly
//	reg(name)               a register, flag or memory value by name
//	check(name, value)      true if the named value is equal to value
//	peek(address)           read memory
//	poke(address, value)    write memory
//	tia(register, value)    write a TIA register, by name or address
//	clock(n)                run the TIA to color clock n
//	scanline()              render the rest of the scanline. returns a
//	                        table of the 160 pixel values
//	collisions(register)    read a collision register, by name or address
//	expect(cond, message)   record a failure if cond is false
//
// Output from print() and failure messages go to the io.Writer given to
// NewScript().
package script
