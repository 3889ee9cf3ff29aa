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

import (
	"fmt"
	"strings"

	"github.com/BillySpelchan/VM2600/hardware/cpu/instructions"
)

// Disassemble returns the instruction at the address as a string. The state
// of the CPU is not changed. Operands are upper case hex without leading
// zeros:
//
//	LDA #$A
//	STA $80, X
//	BNE $F00C
func (mc *CPU) Disassemble(address uint16) string {
	defn := mc.instructions[mc.mem.Read(address)]

	s := strings.Builder{}
	s.WriteString(defn.Mnemonic)
	s.WriteRune(' ')

	zp := mc.mem.Read(address + 1)
	abs := mc.read16Bit(address + 1)

	switch defn.AddressingMode {
	case instructions.Implied:
	case instructions.Accumulator:
		s.WriteString("A")
	case instructions.FutureExpansion:
		s.WriteString("FUTURE EXPANSION")
	case instructions.Immediate:
		fmt.Fprintf(&s, "#$%X", zp)
	case instructions.ZeroPage:
		fmt.Fprintf(&s, "$%X", zp)
	case instructions.ZeroPageIndexedX:
		fmt.Fprintf(&s, "$%X, X", zp)
	case instructions.ZeroPageIndexedY:
		fmt.Fprintf(&s, "$%X, Y", zp)
	case instructions.Absolute:
		fmt.Fprintf(&s, "$%X", abs)
	case instructions.AbsoluteIndexedX:
		fmt.Fprintf(&s, "$%X, X", abs)
	case instructions.AbsoluteIndexedY:
		fmt.Fprintf(&s, "$%X, Y", abs)
	case instructions.Indirect:
		fmt.Fprintf(&s, "($%X)", abs)
	case instructions.IndexedIndirect:
		fmt.Fprintf(&s, "($%X, X)", zp)
	case instructions.IndirectIndexed:
		// no dollar sign for this mode
		fmt.Fprintf(&s, "(%X), Y", zp)
	case instructions.Relative:
		fmt.Fprintf(&s, "$%X", address+2+uint16(int8(zp)))
	}

	return s.String()
}
