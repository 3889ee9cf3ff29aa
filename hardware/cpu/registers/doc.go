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

// Package registers contains the status register type of the 6502 along with
// the arithmetic helpers that decide how the flags in the status register are
// affected by an addition or subtraction, in both binary and decimal mode.
//
// The accumulator, index registers and stack pointer are plain uint8 values
// in the CPU and need no special type.
package registers
