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

// the instruction table. unassigned opcodes are named with an X followed by
// the opcode in hex. note that 0x4f is named X42 and that 0xf7 and 0xff are
// both named XF2.
var table = [256]Definition{
	{OpCode: 0x00, Mnemonic: "BRK", Bytes: 1, Cycles: 7, AddressingMode: Implied, Effect: Interrupt, Operator: Brk},
	{OpCode: 0x01, Mnemonic: "ORA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read, Operator: Ora},
	{OpCode: 0x02, Mnemonic: "X02", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x03, Mnemonic: "X03", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x04, Mnemonic: "X04", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x05, Mnemonic: "ORA", Bytes: 2, Cycles: 6, AddressingMode: ZeroPage, Effect: Read, Operator: Ora},
	{OpCode: 0x06, Mnemonic: "ASL", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW, Operator: Asl},
	{OpCode: 0x07, Mnemonic: "X07", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x08, Mnemonic: "PHP", Bytes: 1, Cycles: 3, AddressingMode: Implied, Effect: Read, Operator: Php},
	{OpCode: 0x09, Mnemonic: "ORA", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Operator: Ora},
	{OpCode: 0x0a, Mnemonic: "ASL", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: RMW, Operator: Asl},
	{OpCode: 0x0b, Mnemonic: "X0B", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x0c, Mnemonic: "X0C", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x0d, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Operator: Ora},
	{OpCode: 0x0e, Mnemonic: "ASL", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Operator: Asl},
	{OpCode: 0x0f, Mnemonic: "X0F", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x10, Mnemonic: "BPL", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow, Operator: Bpl},
	{OpCode: 0x11, Mnemonic: "ORA", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read, Operator: Ora},
	{OpCode: 0x12, Mnemonic: "X12", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x13, Mnemonic: "X13", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x14, Mnemonic: "X14", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x15, Mnemonic: "ORA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read, Operator: Ora},
	{OpCode: 0x16, Mnemonic: "ASL", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW, Operator: Asl},
	{OpCode: 0x17, Mnemonic: "X17", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x18, Mnemonic: "CLC", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Clc},
	{OpCode: 0x19, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read, Operator: Ora},
	{OpCode: 0x1a, Mnemonic: "X1A", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x1b, Mnemonic: "X1B", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x1c, Mnemonic: "X1C", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x1d, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read, Operator: Ora},
	{OpCode: 0x1e, Mnemonic: "ASL", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW, Operator: Asl},
	{OpCode: 0x1f, Mnemonic: "X1F", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x20, Mnemonic: "JSR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: Subroutine, Operator: Jsr},
	{OpCode: 0x21, Mnemonic: "AND", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read, Operator: And},
	{OpCode: 0x22, Mnemonic: "X22", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x23, Mnemonic: "X23", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x24, Mnemonic: "BIT", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read, Operator: Bit},
	{OpCode: 0x25, Mnemonic: "AND", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read, Operator: And},
	{OpCode: 0x26, Mnemonic: "ROL", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW, Operator: Rol},
	{OpCode: 0x27, Mnemonic: "X27", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x28, Mnemonic: "PLP", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Operator: Plp},
	{OpCode: 0x29, Mnemonic: "AND", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Operator: And},
	{OpCode: 0x2a, Mnemonic: "ROL", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: RMW, Operator: Rol},
	{OpCode: 0x2b, Mnemonic: "X2B", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x2c, Mnemonic: "BIT", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Operator: Bit},
	{OpCode: 0x2d, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Operator: And},
	{OpCode: 0x2e, Mnemonic: "ROL", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Operator: Rol},
	{OpCode: 0x2f, Mnemonic: "X2F", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x30, Mnemonic: "BMI", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow, Operator: Bmi},
	{OpCode: 0x31, Mnemonic: "AND", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read, Operator: And},
	{OpCode: 0x32, Mnemonic: "X32", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x33, Mnemonic: "X33", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x34, Mnemonic: "X34", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x35, Mnemonic: "AND", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read, Operator: And},
	{OpCode: 0x36, Mnemonic: "ROL", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW, Operator: Rol},
	{OpCode: 0x37, Mnemonic: "X37", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x38, Mnemonic: "SEC", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Sec},
	{OpCode: 0x39, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read, Operator: And},
	{OpCode: 0x3a, Mnemonic: "X3A", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x3b, Mnemonic: "X3B", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x3c, Mnemonic: "X3C", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x3d, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read, Operator: And},
	{OpCode: 0x3e, Mnemonic: "ROL", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW, Operator: Rol},
	{OpCode: 0x3f, Mnemonic: "X3F", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x40, Mnemonic: "RTI", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Interrupt, Operator: Rti},
	{OpCode: 0x41, Mnemonic: "EOR", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read, Operator: Eor},
	{OpCode: 0x42, Mnemonic: "X42", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x43, Mnemonic: "X43", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x44, Mnemonic: "X44", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x45, Mnemonic: "EOR", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read, Operator: Eor},
	{OpCode: 0x46, Mnemonic: "LSR", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW, Operator: Lsr},
	{OpCode: 0x47, Mnemonic: "X47", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x48, Mnemonic: "PHA", Bytes: 1, Cycles: 3, AddressingMode: Implied, Effect: Read, Operator: Pha},
	{OpCode: 0x49, Mnemonic: "EOR", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Operator: Eor},
	{OpCode: 0x4a, Mnemonic: "LSR", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: RMW, Operator: Lsr},
	{OpCode: 0x4b, Mnemonic: "X4B", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x4c, Mnemonic: "JMP", Bytes: 3, Cycles: 3, AddressingMode: Absolute, Effect: Flow, Operator: Jmp},
	{OpCode: 0x4d, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Operator: Eor},
	{OpCode: 0x4e, Mnemonic: "LSR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Operator: Lsr},
	{OpCode: 0x4f, Mnemonic: "X42", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x50, Mnemonic: "BVC", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow, Operator: Bvc},
	{OpCode: 0x51, Mnemonic: "EOR", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read, Operator: Eor},
	{OpCode: 0x52, Mnemonic: "X52", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x53, Mnemonic: "X53", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x54, Mnemonic: "X54", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x55, Mnemonic: "EOR", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read, Operator: Eor},
	{OpCode: 0x56, Mnemonic: "LSR", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW, Operator: Lsr},
	{OpCode: 0x57, Mnemonic: "X57", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x58, Mnemonic: "CLI", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Cli},
	{OpCode: 0x59, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read, Operator: Eor},
	{OpCode: 0x5a, Mnemonic: "X5A", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x5b, Mnemonic: "X5B", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x5c, Mnemonic: "X5C", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x5d, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read, Operator: Eor},
	{OpCode: 0x5e, Mnemonic: "LSR", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW, Operator: Lsr},
	{OpCode: 0x5f, Mnemonic: "X5F", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x60, Mnemonic: "RTS", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Subroutine, Operator: Rts},
	{OpCode: 0x61, Mnemonic: "ADC", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read, Operator: Adc},
	{OpCode: 0x62, Mnemonic: "X62", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x63, Mnemonic: "X63", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x64, Mnemonic: "X64", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x65, Mnemonic: "ADC", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read, Operator: Adc},
	{OpCode: 0x66, Mnemonic: "ROR", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW, Operator: Ror},
	{OpCode: 0x67, Mnemonic: "X67", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x68, Mnemonic: "PLA", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read, Operator: Pla},
	{OpCode: 0x69, Mnemonic: "ADC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Operator: Adc},
	{OpCode: 0x6a, Mnemonic: "ROR", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: RMW, Operator: Ror},
	{OpCode: 0x6b, Mnemonic: "X6B", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x6c, Mnemonic: "JMP", Bytes: 3, Cycles: 5, AddressingMode: Indirect, Effect: Flow, Operator: Jmp},
	{OpCode: 0x6d, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Operator: Adc},
	{OpCode: 0x6e, Mnemonic: "ROR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Operator: Ror},
	{OpCode: 0x6f, Mnemonic: "X6F", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x70, Mnemonic: "BVS", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow, Operator: Bvs},
	{OpCode: 0x71, Mnemonic: "ADC", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read, Operator: Adc},
	{OpCode: 0x72, Mnemonic: "X72", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x73, Mnemonic: "X73", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x74, Mnemonic: "X74", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x75, Mnemonic: "ADC", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read, Operator: Adc},
	{OpCode: 0x76, Mnemonic: "ROR", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW, Operator: Ror},
	{OpCode: 0x77, Mnemonic: "X77", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x78, Mnemonic: "SEI", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Sei},
	{OpCode: 0x79, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read, Operator: Adc},
	{OpCode: 0x7a, Mnemonic: "X7A", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x7b, Mnemonic: "X7B", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x7c, Mnemonic: "X7C", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x7d, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read, Operator: Adc},
	{OpCode: 0x7e, Mnemonic: "ROR", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW, Operator: Ror},
	{OpCode: 0x7f, Mnemonic: "X7F", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x80, Mnemonic: "X80", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x81, Mnemonic: "STA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Write, Operator: Sta},
	{OpCode: 0x82, Mnemonic: "X82", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x83, Mnemonic: "X83", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x84, Mnemonic: "STY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Write, Operator: Sty},
	{OpCode: 0x85, Mnemonic: "STA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Write, Operator: Sta},
	{OpCode: 0x86, Mnemonic: "STX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Write, Operator: Stx},
	{OpCode: 0x87, Mnemonic: "X87", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x88, Mnemonic: "DEY", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Dey},
	{OpCode: 0x89, Mnemonic: "X89", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x8a, Mnemonic: "TXA", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Txa},
	{OpCode: 0x8b, Mnemonic: "X8B", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x8c, Mnemonic: "STY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write, Operator: Sty},
	{OpCode: 0x8d, Mnemonic: "STA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write, Operator: Sta},
	{OpCode: 0x8e, Mnemonic: "STX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write, Operator: Stx},
	{OpCode: 0x8f, Mnemonic: "X8F", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x90, Mnemonic: "BCC", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow, Operator: Bcc},
	{OpCode: 0x91, Mnemonic: "STA", Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, Effect: Write, Operator: Sta},
	{OpCode: 0x92, Mnemonic: "X92", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x93, Mnemonic: "X93", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x94, Mnemonic: "STY", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write, Operator: Sty},
	{OpCode: 0x95, Mnemonic: "STA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write, Operator: Sta},
	{OpCode: 0x96, Mnemonic: "STX", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Write, Operator: Stx},
	{OpCode: 0x97, Mnemonic: "X97", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x98, Mnemonic: "TYA", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Tya},
	{OpCode: 0x99, Mnemonic: "STA", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, Effect: Write, Operator: Sta},
	{OpCode: 0x9a, Mnemonic: "TXS", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Txs},
	{OpCode: 0x9b, Mnemonic: "X9B", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x9c, Mnemonic: "X9C", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x9d, Mnemonic: "STA", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, Effect: Write, Operator: Sta},
	{OpCode: 0x9e, Mnemonic: "X9E", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0x9f, Mnemonic: "X9F", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xa0, Mnemonic: "LDY", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Operator: Ldy},
	{OpCode: 0xa1, Mnemonic: "LDA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read, Operator: Lda},
	{OpCode: 0xa2, Mnemonic: "LDX", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Operator: Ldx},
	{OpCode: 0xa3, Mnemonic: "XA3", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xa4, Mnemonic: "LDY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read, Operator: Ldy},
	{OpCode: 0xa5, Mnemonic: "LDA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read, Operator: Lda},
	{OpCode: 0xa6, Mnemonic: "LDX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read, Operator: Ldx},
	{OpCode: 0xa7, Mnemonic: "XA7", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xa8, Mnemonic: "TAY", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Tay},
	{OpCode: 0xa9, Mnemonic: "LDA", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Operator: Lda},
	{OpCode: 0xaa, Mnemonic: "TAX", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Tax},
	{OpCode: 0xab, Mnemonic: "XAB", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xac, Mnemonic: "LDY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Operator: Ldy},
	{OpCode: 0xad, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Operator: Lda},
	{OpCode: 0xae, Mnemonic: "LDX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Operator: Ldx},
	{OpCode: 0xaf, Mnemonic: "XAF", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xb0, Mnemonic: "BCS", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow, Operator: Bcs},
	{OpCode: 0xb1, Mnemonic: "LDA", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read, Operator: Lda},
	{OpCode: 0xb2, Mnemonic: "XB2", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xb3, Mnemonic: "XB3", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xb4, Mnemonic: "LDY", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read, Operator: Ldy},
	{OpCode: 0xb5, Mnemonic: "LDA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read, Operator: Lda},
	{OpCode: 0xb6, Mnemonic: "LDX", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Read, Operator: Ldx},
	{OpCode: 0xb7, Mnemonic: "XB7", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xb8, Mnemonic: "CLV", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Clv},
	{OpCode: 0xb9, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read, Operator: Lda},
	{OpCode: 0xba, Mnemonic: "TSX", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Tsx},
	{OpCode: 0xbb, Mnemonic: "XBB", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xbc, Mnemonic: "LDY", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read, Operator: Ldy},
	{OpCode: 0xbd, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read, Operator: Lda},
	{OpCode: 0xbe, Mnemonic: "LDX", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read, Operator: Ldx},
	{OpCode: 0xbf, Mnemonic: "XBF", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xc0, Mnemonic: "CPY", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Operator: Cpy},
	{OpCode: 0xc1, Mnemonic: "CMP", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read, Operator: Cmp},
	{OpCode: 0xc2, Mnemonic: "XC2", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xc3, Mnemonic: "XC3", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xc4, Mnemonic: "CPY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read, Operator: Cpy},
	{OpCode: 0xc5, Mnemonic: "CMP", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read, Operator: Cmp},
	{OpCode: 0xc6, Mnemonic: "DEC", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: RMW, Operator: Dec},
	{OpCode: 0xc7, Mnemonic: "XC7", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xc8, Mnemonic: "INY", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Iny},
	{OpCode: 0xc9, Mnemonic: "CMP", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Operator: Cmp},
	{OpCode: 0xca, Mnemonic: "DEX", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Dex},
	{OpCode: 0xcb, Mnemonic: "XCB", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xcc, Mnemonic: "CPY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Operator: Cpy},
	{OpCode: 0xcd, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Operator: Cmp},
	{OpCode: 0xce, Mnemonic: "DEC", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: RMW, Operator: Dec},
	{OpCode: 0xcf, Mnemonic: "XCF", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xd0, Mnemonic: "BNE", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow, Operator: Bne},
	{OpCode: 0xd1, Mnemonic: "CMP", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read, Operator: Cmp},
	{OpCode: 0xd2, Mnemonic: "XD2", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xd3, Mnemonic: "XD3", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xd4, Mnemonic: "XD4", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xd5, Mnemonic: "CMP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read, Operator: Cmp},
	{OpCode: 0xd6, Mnemonic: "DEC", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: RMW, Operator: Dec},
	{OpCode: 0xd7, Mnemonic: "XD7", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xd8, Mnemonic: "CLD", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Cld},
	{OpCode: 0xd9, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read, Operator: Cmp},
	{OpCode: 0xda, Mnemonic: "XDA", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xdb, Mnemonic: "XDB", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xdc, Mnemonic: "XDC", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xdd, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read, Operator: Cmp},
	{OpCode: 0xde, Mnemonic: "DEC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: RMW, Operator: Dec},
	{OpCode: 0xdf, Mnemonic: "XDF", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xe0, Mnemonic: "CPX", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Operator: Cpx},
	{OpCode: 0xe1, Mnemonic: "SBC", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read, Operator: Sbc},
	{OpCode: 0xe2, Mnemonic: "XE2", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xe3, Mnemonic: "XE3", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xe4, Mnemonic: "CPX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read, Operator: Cpx},
	{OpCode: 0xe5, Mnemonic: "SBC", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read, Operator: Sbc},
	{OpCode: 0xe6, Mnemonic: "INC", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: RMW, Operator: Inc},
	{OpCode: 0xe7, Mnemonic: "XE7", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xe8, Mnemonic: "INX", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Inx},
	{OpCode: 0xe9, Mnemonic: "SBC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Operator: Sbc},
	{OpCode: 0xea, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Nop},
	{OpCode: 0xeb, Mnemonic: "XEB", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xec, Mnemonic: "CPX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Operator: Cpx},
	{OpCode: 0xed, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Operator: Sbc},
	{OpCode: 0xee, Mnemonic: "INC", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: RMW, Operator: Inc},
	{OpCode: 0xef, Mnemonic: "XEF", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xf0, Mnemonic: "BEQ", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow, Operator: Beq},
	{OpCode: 0xf1, Mnemonic: "SBC", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read, Operator: Sbc},
	{OpCode: 0xf2, Mnemonic: "XF2", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xf3, Mnemonic: "XF3", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xf4, Mnemonic: "XF4", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xf5, Mnemonic: "SBC", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read, Operator: Sbc},
	{OpCode: 0xf6, Mnemonic: "INC", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: RMW, Operator: Inc},
	{OpCode: 0xf7, Mnemonic: "XF2", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xf8, Mnemonic: "SED", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read, Operator: Sed},
	{OpCode: 0xf9, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, Effect: Read, Operator: Sbc},
	{OpCode: 0xfa, Mnemonic: "XFA", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xfb, Mnemonic: "XFB", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xfc, Mnemonic: "XFC", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
	{OpCode: 0xfd, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: Read, Operator: Sbc},
	{OpCode: 0xfe, Mnemonic: "INC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, Effect: RMW, Operator: Inc},
	{OpCode: 0xff, Mnemonic: "XF2", Bytes: 1, Cycles: 6, AddressingMode: FutureExpansion, Effect: Read, Operator: Future},
}
