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

package assembler

// Sentinel error patterns.
const (
	BankRange        = "assembler: bank %d: address %#04x outside of bank"
	BankSize         = "assembler: bank %d: invalid size (%d)"
	ExpectedOpcode   = "assembler: expected an opcode but found %s"
	UnknownMode      = "assembler: %s does not support %s addressing"
	MalformedOperand = "assembler: malformed operand for %s"
	BadToken         = "assembler: %s"
	DirectiveArgs    = "assembler: .%s: %s"
	UnknownMacro     = "assembler: unknown macro (%s)"
	UnmatchedMEND    = "assembler: .MEND without .MSTART"
	MacroDepth       = "assembler: macro %s nested too deeply"
	MacroLine        = "assembler: macro %s: %v"
)
