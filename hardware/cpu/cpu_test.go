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

package cpu_test

import (
	"testing"

	"github.com/BillySpelchan/VM2600/curated"
	"github.com/BillySpelchan/VM2600/hardware/cpu"
	"github.com/BillySpelchan/VM2600/hardware/cpu/registers"
	"github.com/BillySpelchan/VM2600/logger"
	"github.com/BillySpelchan/VM2600/test"
)

// every instruction is disassembled at the address equal to its opcode in
// memory that returns the low byte of the address
var expectedDisassembly = [256]string{
	"BRK ", "ORA ($2, X)", "X02 FUTURE EXPANSION", "X03 FUTURE EXPANSION",
	"X04 FUTURE EXPANSION", "ORA $6", "ASL $7", "X07 FUTURE EXPANSION",
	"PHP ", "ORA #$A", "ASL A", "X0B FUTURE EXPANSION",
	"X0C FUTURE EXPANSION", "ORA $F0E", "ASL $100F", "X0F FUTURE EXPANSION",
	"BPL $23", "ORA (12), Y", "X12 FUTURE EXPANSION", "X13 FUTURE EXPANSION",
	"X14 FUTURE EXPANSION", "ORA $16, X", "ASL $17, X", "X17 FUTURE EXPANSION",
	"CLC ", "ORA $1B1A, Y", "X1A FUTURE EXPANSION", "X1B FUTURE EXPANSION",
	"X1C FUTURE EXPANSION", "ORA $1F1E, X", "ASL $201F, X", "X1F FUTURE EXPANSION",
	"JSR $2221", "AND ($22, X)", "X22 FUTURE EXPANSION", "X23 FUTURE EXPANSION",
	"BIT $25", "AND $26", "ROL $27", "X27 FUTURE EXPANSION",
	"PLP ", "AND #$2A", "ROL A", "X2B FUTURE EXPANSION",
	"BIT $2E2D", "AND $2F2E", "ROL $302F", "X2F FUTURE EXPANSION",
	"BMI $63", "AND (32), Y", "X32 FUTURE EXPANSION", "X33 FUTURE EXPANSION",
	"X34 FUTURE EXPANSION", "AND $36, X", "ROL $37, X", "X37 FUTURE EXPANSION",
	"SEC ", "AND $3B3A, Y", "X3A FUTURE EXPANSION", "X3B FUTURE EXPANSION",
	"X3C FUTURE EXPANSION", "AND $3F3E, X", "ROL $403F, X", "X3F FUTURE EXPANSION",
	"RTI ", "EOR ($42, X)", "X42 FUTURE EXPANSION", "X43 FUTURE EXPANSION",
	"X44 FUTURE EXPANSION", "EOR $46", "LSR $47", "X47 FUTURE EXPANSION",
	"PHA ", "EOR #$4A", "LSR A", "X4B FUTURE EXPANSION",
	"JMP $4E4D", "EOR $4F4E", "LSR $504F", "X42 FUTURE EXPANSION",
	"BVC $A3", "EOR (52), Y", "X52 FUTURE EXPANSION", "X53 FUTURE EXPANSION",
	"X54 FUTURE EXPANSION", "EOR $56, X", "LSR $57, X", "X57 FUTURE EXPANSION",
	"CLI ", "EOR $5B5A, Y", "X5A FUTURE EXPANSION", "X5B FUTURE EXPANSION",
	"X5C FUTURE EXPANSION", "EOR $5F5E, X", "LSR $605F, X", "X5F FUTURE EXPANSION",
	"RTS ", "ADC ($62, X)", "X62 FUTURE EXPANSION", "X63 FUTURE EXPANSION",
	"X64 FUTURE EXPANSION", "ADC $66", "ROR $67", "X67 FUTURE EXPANSION",
	"PLA ", "ADC #$6A", "ROR A", "X6B FUTURE EXPANSION",
	"JMP ($6E6D)", "ADC $6F6E", "ROR $706F", "X6F FUTURE EXPANSION",
	"BVS $E3", "ADC (72), Y", "X72 FUTURE EXPANSION", "X73 FUTURE EXPANSION",
	"X74 FUTURE EXPANSION", "ADC $76, X", "ROR $77, X", "X77 FUTURE EXPANSION",
	"SEI ", "ADC $7B7A, Y", "X7A FUTURE EXPANSION", "X7B FUTURE EXPANSION",
	"X7C FUTURE EXPANSION", "ADC $7F7E, X", "ROR $807F, X", "X7F FUTURE EXPANSION",
	"X80 FUTURE EXPANSION", "STA ($82, X)", "X82 FUTURE EXPANSION", "X83 FUTURE EXPANSION",
	"STY $85", "STA $86", "STX $87", "X87 FUTURE EXPANSION",
	"DEY ", "X89 FUTURE EXPANSION", "TXA ", "X8B FUTURE EXPANSION",
	"STY $8E8D", "STA $8F8E", "STX $908F", "X8F FUTURE EXPANSION",
	"BCC $23", "STA (92), Y", "X92 FUTURE EXPANSION", "X93 FUTURE EXPANSION",
	"STY $95, X", "STA $96, X", "STX $97, Y", "X97 FUTURE EXPANSION",
	"TYA ", "STA $9B9A, Y", "TXS ", "X9B FUTURE EXPANSION",
	"X9C FUTURE EXPANSION", "STA $9F9E, X", "X9E FUTURE EXPANSION", "X9F FUTURE EXPANSION",
	"LDY #$A1", "LDA ($A2, X)", "LDX #$A3", "XA3 FUTURE EXPANSION",
	"LDY $A5", "LDA $A6", "LDX $A7", "XA7 FUTURE EXPANSION",
	"TAY ", "LDA #$AA", "TAX ", "XAB FUTURE EXPANSION",
	"LDY $AEAD", "LDA $AFAE", "LDX $B0AF", "XAF FUTURE EXPANSION",
	"BCS $63", "LDA (B2), Y", "XB2 FUTURE EXPANSION", "XB3 FUTURE EXPANSION",
	"LDY $B5, X", "LDA $B6, X", "LDX $B7, Y", "XB7 FUTURE EXPANSION",
	"CLV ", "LDA $BBBA, Y", "TSX ", "XBB FUTURE EXPANSION",
	"LDY $BEBD, X", "LDA $BFBE, X", "LDX $C0BF, Y", "XBF FUTURE EXPANSION",
	"CPY #$C1", "CMP ($C2, X)", "XC2 FUTURE EXPANSION", "XC3 FUTURE EXPANSION",
	"CPY $C5", "CMP $C6", "DEC $C7", "XC7 FUTURE EXPANSION",
	"INY ", "CMP #$CA", "DEX ", "XCB FUTURE EXPANSION",
	"CPY $CECD", "CMP $CFCE", "DEC $D0CF", "XCF FUTURE EXPANSION",
	"BNE $A3", "CMP (D2), Y", "XD2 FUTURE EXPANSION", "XD3 FUTURE EXPANSION",
	"XD4 FUTURE EXPANSION", "CMP $D6, X", "DEC $D7, X", "XD7 FUTURE EXPANSION",
	"CLD ", "CMP $DBDA, Y", "XDA FUTURE EXPANSION", "XDB FUTURE EXPANSION",
	"XDC FUTURE EXPANSION", "CMP $DFDE, X", "DEC $E0DF, X", "XDF FUTURE EXPANSION",
	"CPX #$E1", "SBC ($E2, X)", "XE2 FUTURE EXPANSION", "XE3 FUTURE EXPANSION",
	"CPX $E5", "SBC $E6", "INC $E7", "XE7 FUTURE EXPANSION",
	"INX ", "SBC #$EA", "NOP ", "XEB FUTURE EXPANSION",
	"CPX $EEED", "SBC $EFEE", "INC $F0EF", "XEF FUTURE EXPANSION",
	"BEQ $E3", "SBC (F2), Y", "XF2 FUTURE EXPANSION", "XF3 FUTURE EXPANSION",
	"XF4 FUTURE EXPANSION", "SBC $F6, X", "INC $F7, X", "XF2 FUTURE EXPANSION",
	"SED ", "SBC $FBFA, Y", "XFA FUTURE EXPANSION", "XFB FUTURE EXPANSION",
	"XFC FUTURE EXPANSION", "SBC $FFFE, X", "INC $FF, X", "XF2 FUTURE EXPANSION",
}

func TestDisassembly(t *testing.T) {
	mc := cpu.NewCPU(lowByteMem{})
	for i := 0; i < 256; i++ {
		test.ExpectEquality(t, mc.Disassemble(uint16(i)), expectedDisassembly[i], i)
	}

	// disassembly does not change the state of the CPU
	test.ExpectEquality(t, mc.State, cpu.NewCPU(lowByteMem{}).State)
}

func TestReset(t *testing.T) {
	mc := cpu.NewCPU(&flatMem{})
	test.ExpectEquality(t, uint8(mc.State.Flags), 32)
	test.ExpectEquality(t, mc.State.SP, 0)
	test.ExpectEquality(t, mc.State.IP, 0)
	test.ExpectEquality(t, mc.StackPage, cpu.DefaultStackPage)
	test.ExpectEquality(t, mc.String(), "IP=0000 A=00 X=00 Y=00 SP=00 SR=sv-bdizc")

	mc.State.A = 10
	mc.State.Tick = 100
	mc.Reset()
	test.ExpectEquality(t, mc.State.A, 0)
	test.ExpectEquality(t, mc.State.Tick, 0)
}

func TestDefinitions(t *testing.T) {
	mc := cpu.NewCPU(&flatMem{})
	test.ExpectEquality(t, len(mc.Definitions()), 256)
	test.ExpectEquality(t, mc.Definition(0xea).Mnemonic, "NOP")
	test.ExpectEquality(t, mc.Definition(0x4f).Mnemonic, "X42")
}

func TestStepTiming(t *testing.T) {
	mem := &flatMem{}
	mc := cpu.NewCPU(mem)

	// LDA #1; LDX #$FF; LDA $1001,X; LDA $1000; STA $10FF,X
	mem.putInstructions(0, 0xa9, 0x01, 0xa2, 0xff, 0xbd, 0x01, 0x10, 0xad, 0x00, 0x10, 0x9d, 0xff, 0x10)
	mem.putInstructions(0x1000, 0x01)

	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.State.Tick, 2)
	test.ExpectEquality(t, mc.State.IP, 2)

	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.State.Tick, 4)

	// page penalty for indexed reads
	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.State.Tick, 9)
	test.ExpectEquality(t, mc.State.IP, 7)

	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.State.Tick, 13)

	// but not for writes
	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.State.Tick, 18)
	test.ExpectEquality(t, mc.State.IP, 13)
	test.ExpectEquality(t, mem.Read(0x11fe), 1)
}

func TestBranchTiming(t *testing.T) {
	mem := &flatMem{}
	mc := cpu.NewCPU(mem)

	// branch not taken
	mc.State.IP = 0x1000
	mem.putInstructions(0x1000, 0xd0, 0x10) // BNE +16
	mc.State.Flags.Set(registers.Zero, true)
	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.State.Tick, 2)
	test.ExpectEquality(t, mc.State.IP, 0x1002)

	// branch taken in the same page
	mc.Reset()
	mc.State.IP = 0x1000
	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.State.Tick, 3)
	test.ExpectEquality(t, mc.State.IP, 0x1012)

	// branch taken backwards into the previous page
	mc.Reset()
	mc.State.IP = 0x1000
	mem.putInstructions(0x1000, 0xd0, 0xf0) // BNE -16
	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.State.Tick, 4)
	test.ExpectEquality(t, mc.State.IP, 0x0ff2)
}

func TestJMPIndirect(t *testing.T) {
	mem := &flatMem{}
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0, 0x6c, 0x00, 0x02) // JMP ($0200)
	mem.putInstructions(0x0200, 0x34, 0x12)
	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.State.IP, 0x1234)
	test.ExpectEquality(t, mc.State.Tick, 5)

	// the high byte is read from the start of the same page
	mc.Reset()
	mem.putInstructions(0, 0x6c, 0xff, 0x02) // JMP ($02FF)
	mem.putInstructions(0x02ff, 0x78, 0x56)
	mem.putInstructions(0x0200, 0x34)
	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.State.IP, 0x3478)
}

func TestBRKAndRTI(t *testing.T) {
	mem := &flatMem{}
	mc := cpu.NewCPU(mem)
	mc.State.SP = 0xff

	mem.putInstructions(0xfffe, 0x00, 0x20) // IRQ vector $2000
	mem.putInstructions(0x1000, 0x00)       // BRK
	mem.putInstructions(0x2000, 0x40)       // RTI

	mc.State.IP = 0x1000
	mc.State.Flags.Set(registers.Carry, true)
	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.State.IP, 0x2000)
	test.ExpectEquality(t, mc.State.Tick, 7)
	test.ExpectSuccess(t, mc.State.Flags.Is(registers.InterruptDisable))
	test.ExpectEquality(t, mc.State.SP, 0xfc)
	test.ExpectEquality(t, mem.Read(0x1ff), 0x10)
	test.ExpectEquality(t, mem.Read(0x1fe), 0x02)
	test.ExpectEquality(t, registers.Status(mem.Read(0x1fd)).String(), "sv-BdizC")

	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.State.IP, 0x1002)
	test.ExpectEquality(t, mc.State.SP, 0xff)
	test.ExpectEquality(t, mc.State.Flags.String(), "sv-BdizC")
}

func TestStackPage(t *testing.T) {
	mem := &flatMem{}
	mc := cpu.NewCPU(mem)
	mc.StackPage = 0
	mc.State.SP = 0xff
	mc.State.A = 99

	mem.putInstructions(0, 0x48) // PHA
	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mem.Read(0x00ff), 99)
	test.ExpectEquality(t, mc.State.SP, 0xfe)
}

func TestRunToBreak(t *testing.T) {
	mem := &flatMem{}
	mc := cpu.NewCPU(mem)

	// INX; INX; BRK
	mem.putInstructions(0x100, 0xe8, 0xe8, 0x00)
	test.ExpectSuccess(t, mc.RunToBreak(0x100, 0))
	test.ExpectEquality(t, mc.State.X, 2)
	test.ExpectEquality(t, mc.State.IP, 0x102)
	test.ExpectEquality(t, mc.State.Tick, 4)

	// a negative start address continues from the current IP
	mem.putInstructions(0x102, 0xe8, 0x00)
	test.ExpectSuccess(t, mc.RunToBreak(-1, 0))
	test.ExpectEquality(t, mc.State.X, 3)
}

func TestStepLimit(t *testing.T) {
	mem := &flatMem{}
	mc := cpu.NewCPU(mem)

	// loop: JMP loop
	mem.putInstructions(0, 0x4c, 0x00, 0x00)
	err := mc.RunToBreak(0, 100)
	test.ExpectSuccess(t, curated.Is(err, cpu.StepLimit))
	test.ExpectEquality(t, mc.State.Tick, 300)
}

func TestFutureExpansion(t *testing.T) {
	logger.Clear()

	mem := &flatMem{}
	mc := cpu.NewCPU(mem)
	mc.State.A = 5

	mem.putInstructions(0, 0x02, 0xff)
	test.ExpectSuccess(t, mc.Step())
	test.ExpectEquality(t, mc.State.IP, 1)
	test.ExpectEquality(t, mc.State.Tick, 6)
	test.ExpectEquality(t, mc.State.A, 5)

	// execution of the opcode is logged
	test.ExpectEquality(t, len(logger.Entries()), 1)
	test.ExpectEquality(t, logger.Entries()[0].Tag, "cpu")
}

func TestCycleCallback(t *testing.T) {
	mem := &flatMem{}
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0, 0xee, 0x00, 0x10) // INC $1000
	var cycles int
	test.ExpectSuccess(t, mc.ExecuteInstruction(func(c int) error {
		cycles = c
		return nil
	}))
	test.ExpectEquality(t, cycles, 4)
}

func TestLookup(t *testing.T) {
	mc := cpu.NewCPU(lowByteMem{})
	mc.State.A = 7
	mc.State.Flags.Set(registers.Overflow, true)

	v, err := mc.State.Lookup("acc", nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 7)

	v, err = mc.State.Lookup("v", nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 1)

	v, err = mc.State.Lookup("M1234", lowByteMem{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x34)

	_, err = mc.State.Lookup("M10", nil)
	test.ExpectSuccess(t, curated.Is(err, cpu.NoMemory))

	_, err = mc.State.Lookup("Q", nil)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownRegister))
	test.ExpectFailure(t, mc.State.CheckState("Q", 0, nil))

	// flags compare any non-zero value as set
	test.ExpectSuccess(t, mc.State.CheckState("V", 64, nil))
	test.ExpectSuccess(t, mc.State.CheckState("C", 0, nil))
}
