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

// Package trace prints a line of output for every instruction executed by
// the CPU. Each line shows the disassembled instruction and the registers
// that were changed by it:
//
//	(0) 0:LDA #$80 ; A:$0 -> $80, Flags:sv-bdizc -> Sv-bdizc
//
// Registers that are not changed by the instruction are not shown.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/BillySpelchan/VM2600/curated"
	"github.com/BillySpelchan/VM2600/hardware/cpu"
)

// Tracer steps a CPU and writes a trace line for every instruction.
type Tracer struct {
	mc     *cpu.CPU
	output io.Writer
}

// NewTracer is the preferred method of initialisation for the Tracer type.
func NewTracer(mc *cpu.CPU, output io.Writer) *Tracer {
	return &Tracer{
		mc:     mc,
		output: output,
	}
}

// Step executes one instruction and writes the trace line.
func (trc *Tracer) Step() error {
	before := trc.mc.Snapshot()
	disasm := trc.mc.Disassemble(before.IP)

	if err := trc.mc.Step(); err != nil {
		return err
	}

	_, err := io.WriteString(trc.output, Line(before, trc.mc.State, disasm))
	return err
}

// RunToBreak is like cpu.RunToBreak() except that every instruction is
// traced. The IP is not changed before the first instruction.
func (trc *Tracer) RunToBreak(limit int) error {
	steps := 0
	for !trc.mc.AtBreak() {
		if limit > 0 && steps >= limit {
			return curated.Errorf(cpu.StepLimit, limit, trc.mc.State.IP)
		}
		if err := trc.Step(); err != nil {
			return err
		}
		steps++
	}
	return nil
}

// Line formats a single trace line. The tick is taken from the before state.
func Line(before cpu.ProcessorState, after cpu.ProcessorState, disasm string) string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "(%d) %x:%s", before.Tick, before.IP, disasm)

	sep := " ; "
	diff := func(label string, old, new string) {
		if old == new {
			return
		}
		fmt.Fprintf(&s, "%s%s:%s -> %s", sep, label, old, new)
		sep = ", "
	}

	diff("A", fmt.Sprintf("$%x", before.A), fmt.Sprintf("$%x", after.A))
	diff("X", fmt.Sprintf("$%x", before.X), fmt.Sprintf("$%x", after.X))
	diff("Y", fmt.Sprintf("$%x", before.Y), fmt.Sprintf("$%x", after.Y))
	diff("Flags", before.Flags.String(), after.Flags.String())

	s.WriteString("\n")
	return s.String()
}
