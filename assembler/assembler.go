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

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BillySpelchan/VM2600/hardware/cpu/instructions"
	"github.com/BillySpelchan/VM2600/logger"
)

// Status is the summary result of AssembleProgram().
type Status int

// List of valid Status values. LineErrors takes precedence over LinkErrors.
const (
	Clean Status = iota
	LinkErrors
	LineErrors
)

func (s Status) String() string {
	switch s {
	case Clean:
		return "clean"
	case LinkErrors:
		return "link errors"
	case LineErrors:
		return "line errors"
	}
	return "unknown status"
}

// Assembler converts 6502 source into bytes. The zero value is not usable,
// use NewAssembler().
type Assembler struct {
	// Verbose causes the address and bytes of every assembled line to be
	// logged
	Verbose bool

	// mnemonic to addressing mode to opcode
	opcodes map[string]map[instructions.AddressingMode]uint8

	banks   []*Bank
	current *Bank

	labels     map[string][]Label
	equates    map[string]int
	predefined map[string]int

	macros    map[string]*macro
	recording *macro

	// number of macro expansions so far and the current nesting depth
	expansions int
	depth      int

	errors   []string
	warnings []string
}

// NewAssembler is the preferred method of initialisation for the Assembler
// type. The definitions are normally those returned by
// instructions.Definitions().
func NewAssembler(defs []instructions.Definition) *Assembler {
	asm := &Assembler{
		opcodes:    make(map[string]map[instructions.AddressingMode]uint8),
		predefined: make(map[string]int),
	}

	for _, d := range defs {
		if d.IsFuture() {
			continue
		}
		m := strings.ToUpper(d.Mnemonic)
		if _, ok := asm.opcodes[m]; !ok {
			asm.opcodes[m] = make(map[instructions.AddressingMode]uint8)
		}
		asm.opcodes[m][d.AddressingMode] = d.OpCode
	}

	asm.Reset()

	return asm
}

// AllowLogging implements the logger.Permission interface.
func (asm *Assembler) AllowLogging() bool {
	return asm.Verbose
}

// Reset the assembler to the state it is in before any source is assembled.
// There is a single bank with an ID of zero, an origin of zero and the
// default size. Predefined symbols survive a reset.
func (asm *Assembler) Reset() {
	asm.banks = []*Bank{NewBank(0, 0, DefaultBankSize)}
	asm.current = asm.banks[0]
	asm.labels = make(map[string][]Label)
	asm.macros = make(map[string]*macro)
	asm.recording = nil
	asm.expansions = 0
	asm.depth = 0
	asm.errors = asm.errors[:0]
	asm.warnings = asm.warnings[:0]

	asm.equates = make(map[string]int)
	for k, v := range asm.predefined {
		asm.equates[k] = v
	}
}

// PredefineSymbols adds constants that are available to every program
// assembled subsequently, as though each had been defined with .EQU.
func (asm *Assembler) PredefineSymbols(symbols map[string]int) {
	for k, v := range symbols {
		asm.predefined[k] = v
		asm.equates[k] = v
	}
}

// AssembleProgram assembles and links every line of source. Any previous
// state is discarded first. The bytes are available through the Bank
// functions afterwards.
func (asm *Assembler) AssembleProgram(source []string) Status {
	asm.Reset()

	lineErrors := 0
	for i, line := range source {
		if err := asm.emit(asm.Tokenize(line, true)); err != nil {
			lineErrors++
			asm.errors = append(asm.errors, fmt.Sprintf("line %d: %v", i+1, err))
		}
	}

	if asm.recording != nil {
		asm.warn(fmt.Sprintf("macro %s not terminated with .MEND", asm.recording.name))
		asm.recording = nil
	}

	linkErrors, warnings := asm.Link()
	asm.errors = append(asm.errors, linkErrors...)
	for _, w := range warnings {
		asm.warn(w)
	}

	for _, e := range asm.errors {
		logger.Log(logger.Allow, "assembler", e)
	}

	if lineErrors > 0 {
		return LineErrors
	}
	if len(linkErrors) > 0 {
		return LinkErrors
	}
	return Clean
}

// emit parses the tokens and writes the result to the current bank. label
// references are only recorded if the write succeeds
func (asm *Assembler) emit(tokens []Token) error {
	data, fixups, err := asm.parse(tokens)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	address := asm.current.Address()
	if err := asm.current.Write(data...); err != nil {
		return err
	}
	asm.addLabels(fixups)

	logger.Logf(asm, "assembler", "%04x: % 02x", address, data)

	return nil
}

func (asm *Assembler) warn(w string) {
	asm.warnings = append(asm.warnings, w)
	logger.Log(logger.Allow, "assembler", w)
}

// Errors returns the line and link errors from the most recent call to
// AssembleProgram().
func (asm *Assembler) Errors() []string {
	return slices.Clone(asm.errors)
}

// Warnings returns the warnings from the most recent call to
// AssembleProgram().
func (asm *Assembler) Warnings() []string {
	return slices.Clone(asm.warnings)
}

// Banks returns all banks in the order they were created.
func (asm *Assembler) Banks() []*Bank {
	return slices.Clone(asm.banks)
}

// Bank returns the bank with the ID or nil if there is no such bank.
func (asm *Assembler) Bank(id int) *Bank {
	for _, b := range asm.banks {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// CurrentBank returns the bank that is currently being written to.
func (asm *Assembler) CurrentBank() *Bank {
	return asm.current
}
