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

package cpu

import "github.com/BillySpelchan/VM2600/hardware/cpu/instructions"

// operand is the result of resolving the addressing mode of an instruction.
type operand struct {
	// the effective address. not used by implied, accumulator or immediate
	// addressing
	address uint16

	// the value read from the effective address for Read and RMW
	// instructions. the immediate value for immediate addressing, the
	// accumulator for accumulator addressing, and the offset for relative
	// addressing
	value uint8

	// RMW instructions write the result back to the accumulator rather than
	// to memory
	accumulator bool
}

// resolve the operand for the instruction at the IP. the page crossing
// penalty is added to the Tick count for instructions that are sensitive to
// it.
func (mc *CPU) resolve(defn *instructions.Definition) operand {
	var opd operand

	ip := mc.State.IP

	switch defn.AddressingMode {
	case instructions.Implied, instructions.FutureExpansion:
		return opd

	case instructions.Accumulator:
		opd.value = mc.State.A
		opd.accumulator = true
		return opd

	case instructions.Immediate, instructions.Relative:
		opd.value = mc.mem.Read(ip + 1)
		return opd

	case instructions.ZeroPage:
		opd.address = uint16(mc.mem.Read(ip + 1))

	case instructions.ZeroPageIndexedX:
		// index does not carry into the next page
		opd.address = uint16(mc.mem.Read(ip+1) + mc.State.X)

	case instructions.ZeroPageIndexedY:
		opd.address = uint16(mc.mem.Read(ip+1) + mc.State.Y)

	case instructions.Absolute:
		opd.address = mc.read16Bit(ip + 1)

	case instructions.AbsoluteIndexedX:
		base := mc.read16Bit(ip + 1)
		opd.address = base + uint16(mc.State.X)
		if defn.PageSensitive() {
			mc.pageCheck(base, opd.address)
		}

	case instructions.AbsoluteIndexedY:
		base := mc.read16Bit(ip + 1)
		opd.address = base + uint16(mc.State.Y)
		if defn.PageSensitive() {
			mc.pageCheck(base, opd.address)
		}

	case instructions.Indirect:
		// the high byte of the indirect address is read from the same page
		// as the low byte. for example, JMP ($10ff) reads the high byte from
		// $1000 and not $1100
		indirect := mc.read16Bit(ip + 1)
		lo := mc.mem.Read(indirect)
		hi := mc.mem.Read((indirect & 0xff00) | ((indirect + 1) & 0x00ff))
		opd.address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndexedIndirect:
		opd.address = mc.read16BitZeroPage(mc.mem.Read(ip+1) + mc.State.X)

	case instructions.IndirectIndexed:
		base := mc.read16BitZeroPage(mc.mem.Read(ip + 1))
		opd.address = base + uint16(mc.State.Y)
		if defn.PageSensitive() {
			mc.pageCheck(base, opd.address)
		}
	}

	if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
		opd.value = mc.mem.Read(opd.address)
	}

	return opd
}
