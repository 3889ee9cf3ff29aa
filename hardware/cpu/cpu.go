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
	"github.com/BillySpelchan/VM2600/curated"
	"github.com/BillySpelchan/VM2600/hardware/cpu/instructions"
	"github.com/BillySpelchan/VM2600/hardware/cpu/registers"
	"github.com/BillySpelchan/VM2600/hardware/memory/cpubus"
)

// StepLimit is returned by RunToBreak() when the number of instructions
// executed reaches the limit without reaching a BRK instruction.
const StepLimit = "cpu: step limit (%d) reached at %#04x"

// DefaultStackPage is the page of memory used for the stack unless the
// StackPage field is changed.
const DefaultStackPage = 1

// CPU implements the 6502 microprocessor.
type CPU struct {
	State ProcessorState

	// the stack is located in this page of memory. the stack pointer is the
	// index into the page
	StackPage uint8

	mem          cpubus.Memory
	instructions []instructions.Definition

	// the executable effect of each opcode. created once in NewCPU()
	effects [256]effect
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		StackPage:    DefaultStackPage,
		mem:          mem,
		instructions: instructions.Definitions(),
	}

	for i, defn := range mc.instructions {
		mc.effects[i] = mc.bind(defn.Operator)
	}

	mc.Reset()

	return mc
}

func (mc *CPU) String() string {
	return mc.State.String()
}

// Reset reinitialises all registers. Does not load IP with the reset vector.
// Use LoadIPIndirect(cpubus.Reset) when appropriate.
func (mc *CPU) Reset() {
	mc.State = ProcessorState{
		Flags: registers.InitialStatus,
	}
}

// Snapshot returns a copy of the processor state.
func (mc *CPU) Snapshot() ProcessorState {
	return mc.State
}

// LoadIPIndirect loads the IP with the address stored at indirectAddress.
func (mc *CPU) LoadIPIndirect(indirectAddress uint16) {
	mc.State.IP = mc.read16Bit(indirectAddress)
}

// Definitions returns a copy of the instruction table used by the CPU.
func (mc *CPU) Definitions() []instructions.Definition {
	defs := make([]instructions.Definition, len(mc.instructions))
	copy(defs, mc.instructions)
	return defs
}

// Definition returns the instruction definition for the opcode.
func (mc *CPU) Definition(opcode uint8) instructions.Definition {
	return mc.instructions[opcode]
}

// Step executes the instruction at the IP.
func (mc *CPU) Step() error {
	return mc.ExecuteInstruction(nil)
}

// ExecuteInstruction executes the instruction at the IP. The cycleCallback
// function, if not nil, is called once the instruction has completed with
// the number of cycles the instruction took. An error from the callback is
// returned by ExecuteInstruction().
func (mc *CPU) ExecuteInstruction(cycleCallback func(cycles int) error) error {
	startTick := mc.State.Tick

	opcode := mc.mem.Read(mc.State.IP)
	defn := &mc.instructions[opcode]

	mc.State.IPNext = mc.State.IP + uint16(defn.Bytes)
	mc.State.Tick += uint64(defn.Cycles)

	opd := mc.resolve(defn)
	mc.effects[opcode](opd)

	mc.State.IP = mc.State.IPNext

	if cycleCallback != nil {
		return cycleCallback(int(mc.State.Tick - startTick))
	}
	return nil
}

// RunToBreak executes instructions until the opcode at the IP is BRK. The BRK
// instruction is not executed.
//
// If start is zero or more the IP is set to that address before the first
// instruction. If limit is greater than zero then the StepLimit error is
// returned after that number of instructions has been executed without
// reaching a BRK.
func (mc *CPU) RunToBreak(start int, limit int) error {
	if start >= 0 {
		mc.State.IP = uint16(start)
	}

	steps := 0
	for !mc.AtBreak() {
		if limit > 0 && steps >= limit {
			return curated.Errorf(StepLimit, limit, mc.State.IP)
		}
		if err := mc.Step(); err != nil {
			return err
		}
		steps++
	}

	return nil
}

// AtBreak returns true if the instruction at the IP is BRK.
func (mc *CPU) AtBreak() bool {
	return mc.mem.Read(mc.State.IP) == 0x00
}

// read16Bit returns the little-endian 16bit value at the address.
func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// read16BitZeroPage is like read16Bit but the high byte wraps around to the
// start of the zero page.
func (mc *CPU) read16BitZeroPage(address uint8) uint16 {
	lo := mc.mem.Read(uint16(address))
	hi := mc.mem.Read(uint16(address + 1))
	return (uint16(hi) << 8) | uint16(lo)
}

func (mc *CPU) push(v uint8) {
	mc.mem.Write(uint16(mc.StackPage)<<8|uint16(mc.State.SP), v)
	mc.State.SP--
}

func (mc *CPU) pull() uint8 {
	mc.State.SP++
	return mc.mem.Read(uint16(mc.StackPage)<<8 | uint16(mc.State.SP))
}

// pageCheck adds a cycle if the two addresses are in different pages.
func (mc *CPU) pageCheck(base uint16, target uint16) {
	if base&0xff00 != target&0xff00 {
		mc.State.Tick++
	}
}
