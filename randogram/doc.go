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

// Package randogram is used to visualise the quality of a random number
// generator written in 6502 assembly.
//
// A program is run from its start address until it reaches a BRK
// instruction. Every time the instruction about to be executed is a NOP the
// value of the accumulator is captured. This means the random number routine
// can be written as a loop that leaves each new value in the accumulator
// before a NOP:
//
//	loop: JSR random
//	      NOP
//	      DEX
//	      BNE loop
//	      BRK
//
// The captured bytes are read in pairs and each pair is counted as a point
// in a 256x256 grid. A good generator will produce an even grey image
// without any obvious patterns.
package randogram
