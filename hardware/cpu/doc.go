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

// Package cpu emulates the 6502 microprocessor. Instructions are decoded with
// the table in the instructions package and executed against any
// implementation of the cpubus.Memory interface.
//
// The CPU is not cycle-stepped. Each call to Step() executes one complete
// instruction and advances the Tick count by the number of cycles the
// instruction takes, plus one cycle for a taken branch and one more if the
// branch or an indexed read crosses a page boundary.
//
// RunToBreak() executes instructions until the opcode at the instruction
// pointer is BRK (0x00). The BRK itself is not executed. This is how test
// programs signal that they have finished. For example:
//
//	mc := cpu.NewCPU(mem)
//	err := mc.RunToBreak(0, 1000)
//
// The state of the registers can be inspected directly through the State
// field, or by name through ProcessorState.Lookup().
package cpu
