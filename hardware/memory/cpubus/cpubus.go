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

// Package cpubus defines the view of memory as seen by the CPU.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The CPU does not care what is behind an address: the flat cartridge
// used by the assembler tests and the VCS bus both implement this interface.
//
// Neither operation can fail. Implementations wrap or ignore addresses that
// are out of their range.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Reset is the address where the reset address is stored.
const Reset = uint16(0xfffc)

// IRQ is the address where the interrupt address is stored. Used by the BRK
// instruction.
const IRQ = uint16(0xfffe)
