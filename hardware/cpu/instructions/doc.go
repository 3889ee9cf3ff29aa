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

// Package instructions defines the instruction table of the 6502. Every one of
// the 256 opcodes has a Definition, including the opcodes that are not
// assigned to an instruction. Those are in the FutureExpansion addressing
// mode and are one byte long.
//
// The table is used by the CPU to decode and execute instructions and by the
// assembler to find the opcode for a mnemonic and addressing mode.
package instructions
