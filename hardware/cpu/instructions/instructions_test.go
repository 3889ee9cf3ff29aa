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

package instructions_test

import (
	"testing"

	"github.com/BillySpelchan/VM2600/hardware/cpu/instructions"
	"github.com/BillySpelchan/VM2600/test"
)

func TestTable(t *testing.T) {
	defs := instructions.Definitions()
	test.DemandEquality(t, len(defs), 256)

	var future int
	for i, d := range defs {
		test.ExpectEquality(t, int(d.OpCode), i)
		test.ExpectEquality(t, d.Bytes, d.AddressingMode.Bytes())
		if d.IsFuture() {
			future++
			test.ExpectEquality(t, d.Cycles, 6)
			test.ExpectEquality(t, d.Operator, instructions.Future)
		} else {
			test.ExpectEquality(t, d.Operator.String(), d.Mnemonic)
		}
	}
	test.ExpectEquality(t, future, 105)
}

func TestTableQuirks(t *testing.T) {
	defs := instructions.Definitions()
	test.ExpectEquality(t, defs[0x4f].Mnemonic, "X42")
	test.ExpectEquality(t, defs[0xf7].Mnemonic, "XF2")
	test.ExpectEquality(t, defs[0xff].Mnemonic, "XF2")
	test.ExpectEquality(t, defs[0x02].Mnemonic, "X02")

	// cycle counts as they appear in the table
	test.ExpectEquality(t, defs[0x05].Cycles, 6)
	test.ExpectEquality(t, defs[0xe6].Cycles, 3)
	test.ExpectEquality(t, defs[0xfe].Cycles, 4)
	test.ExpectEquality(t, defs[0x91].Cycles, 6)
}

func TestDefinitionsIsCopy(t *testing.T) {
	defs := instructions.Definitions()
	defs[0].Mnemonic = "FOO"
	test.ExpectEquality(t, instructions.Definitions()[0].Mnemonic, "BRK")
}

func TestLookup(t *testing.T) {
	lda := instructions.Lookup("lda")
	test.ExpectEquality(t, len(lda), 8)
	for _, d := range lda {
		test.ExpectEquality(t, d.Operator, instructions.Lda)
	}

	test.ExpectEquality(t, len(instructions.Lookup("X02")), 0)
	test.ExpectEquality(t, len(instructions.Lookup("JMP")), 2)
}

func TestCategories(t *testing.T) {
	defs := instructions.Definitions()
	test.ExpectSuccess(t, defs[0xd0].IsBranch())
	test.ExpectFailure(t, defs[0x4c].IsBranch())
	test.ExpectSuccess(t, defs[0x4c].Operator == instructions.Jmp)

	// page sensitivity only applies to indexed reads
	test.ExpectSuccess(t, defs[0xbd].PageSensitive())
	test.ExpectSuccess(t, defs[0xb1].PageSensitive())
	test.ExpectFailure(t, defs[0x9d].PageSensitive())
	test.ExpectFailure(t, defs[0xfe].PageSensitive())
	test.ExpectFailure(t, defs[0xad].PageSensitive())
}
