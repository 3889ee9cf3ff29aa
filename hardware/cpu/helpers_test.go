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

	"github.com/BillySpelchan/VM2600/assembler"
	"github.com/BillySpelchan/VM2600/hardware/cpu"
	"github.com/BillySpelchan/VM2600/hardware/cpu/instructions"
	"github.com/BillySpelchan/VM2600/hardware/memory/cartridge"
	"github.com/BillySpelchan/VM2600/test"
)

// lowByteMem returns the low byte of the address for every read. writes are
// ignored.
type lowByteMem struct{}

func (lowByteMem) Read(address uint16) uint8 {
	return uint8(address)
}

func (lowByteMem) Write(address uint16, data uint8) {}

// flatMem is 64K of memory initialised to zero.
type flatMem struct {
	data [0x10000]uint8
}

func (mem *flatMem) Read(address uint16) uint8 {
	return mem.data[address]
}

func (mem *flatMem) Write(address uint16, data uint8) {
	mem.data[address] = data
}

func (mem *flatMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

// check is a named value and its expected value, as accepted by
// ProcessorState.CheckState()
type check struct {
	name     string
	expected int
}

type snippet struct {
	name   string
	source []string
	checks []check
}

// assemble the source, load it into a cartridge and run it from address zero
// until the BRK instruction is reached.
func run(t *testing.T, source []string) (*cpu.CPU, *cartridge.Cartridge) {
	t.Helper()

	asm := assembler.NewAssembler(instructions.Definitions())
	test.DemandEquality(t, asm.AssembleProgram(source), assembler.Clean)

	cart := cartridge.NewCartridge()
	test.DemandSuccess(t, cart.Load(0, asm.CurrentBank().Bytes()))

	mc := cpu.NewCPU(cart)
	test.DemandSuccess(t, mc.RunToBreak(0, 10000))

	return mc, cart
}

func runSnippets(t *testing.T, snippets []snippet) {
	t.Helper()
	for _, s := range snippets {
		t.Run(s.name, func(t *testing.T) {
			mc, cart := run(t, s.source)
			for _, c := range s.checks {
				v, err := mc.State.Lookup(c.name, cart)
				test.ExpectSuccess(t, err)
				test.ExpectSuccess(t, mc.State.CheckState(c.name, c.expected, cart), c.name, v, c.expected)
			}
		})
	}
}
