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

package instructions

import (
	"fmt"
	"strings"
)

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following three effects have a variable effect on the program
	// counter, depending on the instruction's precise operand.

	// flow consists of the Branch and JMP instructions. Branch instructions
	// specifically can be distinguished by the AddressingMode.
	Flow

	Subroutine
	Interrupt
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Effect         EffectCategory
	Operator       Operator
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s effect=%s]",
		defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// IsFuture returns true if the opcode is not assigned to an instruction.
func (defn Definition) IsFuture() bool {
	return defn.AddressingMode == FutureExpansion
}

// PageSensitive returns true if the instruction takes an additional cycle
// when the effective address crosses a page boundary.
func (defn Definition) PageSensitive() bool {
	if defn.Effect != Read {
		return false
	}
	switch defn.AddressingMode {
	case AbsoluteIndexedX, AbsoluteIndexedY, IndirectIndexed:
		return true
	}
	return false
}

// Definitions returns a copy of the instruction table. The table is indexed
// by opcode.
func Definitions() []Definition {
	defs := make([]Definition, len(table))
	copy(defs, table[:])
	return defs
}

// Lookup returns the definitions that have the mnemonic, in opcode order.
// The match is case-insensitive.
func Lookup(mnemonic string) []Definition {
	var defs []Definition
	for _, d := range table {
		if strings.EqualFold(d.Mnemonic, mnemonic) && !d.IsFuture() {
			defs = append(defs, d)
		}
	}
	return defs
}
