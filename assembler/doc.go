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

// Package assembler turns 6502 source lines into bytes stored in one or more
// banks. Assembly happens in a single parsing pass followed by a link pass
// that resolves label references:
//
//	asm := assembler.NewAssembler(instructions.Definitions())
//	if asm.AssembleProgram(source) != assembler.Clean {
//		for _, e := range asm.Errors() {
//			fmt.Println(e)
//		}
//	}
//	data := asm.CurrentBank().Bytes()
//
// Every line is tokenized and then parsed. Label references found during
// parsing are recorded together with the location of the bytes that need to
// be patched and the type of patch required. A label declaration records the
// address the label stands for. Link() visits every label after the source
// has been parsed and writes the resolved values into the bank.
//
// Directives start with a dot:
//
//	.BANK id [origin] [size]    select or create a bank
//	.ORG address                move the write cursor in the current bank
//	.EQU name value             define a constant
//	.BYTE v1 v2 ...             emit bytes
//	.WORD v1 v2 ...             emit little-endian words
//	.HIGH v / .LOW v            high or low byte of a value (immediate only)
//	.MSTART name [defaults]     begin recording a macro
//	.MEND                       end recording
//	.MACRO name [args]          expand a recorded macro
//
// Macro parameters are referred to in the macro body as P0 to P9. Labels
// declared inside a macro are local to each expansion.
package assembler
